package models

import (
	"time"
)

// TranslationFeedback 翻译反馈模型，评分取值1-5，记录只增不改
type TranslationFeedback struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	TranslationID uint      `gorm:"not null;index" json:"translation_id"`
	UserID        string    `gorm:"size:100;index" json:"user_id"`
	Rating        int       `gorm:"not null" json:"rating"`
	Comment       *string   `gorm:"type:text" json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName 指定表名
func (TranslationFeedback) TableName() string {
	return "translation_feedbacks"
}
