package models

import (
	"time"
)

// Translation 翻译记录模型
//
// (source_text, source_lang, target_lang) 作为缓存查找键，读取时取首条匹配。
// 记录只增不删：创建于缓存未命中，之后仅由审核与质量复查修改。
type Translation struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	SourceText         string    `gorm:"type:text;not null;index" json:"source_text"`
	TargetText         string    `gorm:"type:text;not null" json:"target_text"`
	SourceLang         string    `gorm:"size:20;not null" json:"source_lang"`
	TargetLang         string    `gorm:"size:20;not null" json:"target_lang"`
	QualityScore       *float64  `json:"quality_score"`
	IsConfirmed        bool      `gorm:"default:false" json:"is_confirmed"`
	LastModifiedBy     *string   `gorm:"size:100" json:"last_modified_by"`
	ReviewerComments   *string   `gorm:"type:text" json:"reviewer_comments"`
	HumanModified      bool      `gorm:"default:false" json:"human_modified"`
	MachineTranslation *string   `gorm:"type:text" json:"machine_translation"`
	CreatedAt          time.Time `json:"created_at"`
	ModifiedAt         time.Time `json:"modified_at"`

	// 关联
	Feedbacks []TranslationFeedback `gorm:"foreignKey:TranslationID" json:"feedbacks,omitempty"`
}

// TableName 指定表名
func (Translation) TableName() string {
	return "translations"
}
