package dto

import (
	"trans-go/internal/models"
)

// TimeFormat 响应中的时间格式
const TimeFormat = "2006-01-02 15:04:05"

// TranslationRequest 翻译请求
type TranslationRequest struct {
	Text       string `json:"text" binding:"required"`
	SourceLang string `json:"source_lang" binding:"required"`
	TargetLang string `json:"target_lang" binding:"required"`
}

// BatchTranslationRequest 批量翻译请求
type BatchTranslationRequest struct {
	Texts      []string `json:"texts" binding:"required,min=1,dive,required"`
	SourceLang string   `json:"source_lang" binding:"required"`
	TargetLang string   `json:"target_lang" binding:"required"`
}

// ReviewRequest 人工审核请求
type ReviewRequest struct {
	Reviewer     string  `json:"reviewer" binding:"required"`
	IsConfirmed  bool    `json:"is_confirmed"`
	Comments     *string `json:"comments"`
	ModifiedText *string `json:"modified_text"`
}

// TranslationResponse 翻译记录响应
type TranslationResponse struct {
	ID                 uint     `json:"id"`
	SourceText         string   `json:"source_text"`
	TargetText         string   `json:"target_text"`
	SourceLang         string   `json:"source_lang"`
	TargetLang         string   `json:"target_lang"`
	QualityScore       *float64 `json:"quality_score"`
	IsConfirmed        bool     `json:"is_confirmed"`
	LastModifiedBy     *string  `json:"last_modified_by"`
	ReviewerComments   *string  `json:"reviewer_comments"`
	HumanModified      bool     `json:"human_modified"`
	MachineTranslation string   `json:"machine_translation"`
	CreatedAt          string   `json:"created_at"`
	ModifiedAt         string   `json:"modified_at"`
	FromCache          bool     `json:"from_cache"`
}

// NewTranslationResponse 由翻译记录构造响应
func NewTranslationResponse(t *models.Translation, fromCache bool) TranslationResponse {
	// 机器译文未回填时以当前译文兜底
	machineTranslation := t.TargetText
	if t.MachineTranslation != nil {
		machineTranslation = *t.MachineTranslation
	}

	return TranslationResponse{
		ID:                 t.ID,
		SourceText:         t.SourceText,
		TargetText:         t.TargetText,
		SourceLang:         t.SourceLang,
		TargetLang:         t.TargetLang,
		QualityScore:       t.QualityScore,
		IsConfirmed:        t.IsConfirmed,
		LastModifiedBy:     t.LastModifiedBy,
		ReviewerComments:   t.ReviewerComments,
		HumanModified:      t.HumanModified,
		MachineTranslation: machineTranslation,
		CreatedAt:          t.CreatedAt.Format(TimeFormat),
		ModifiedAt:         t.ModifiedAt.Format(TimeFormat),
		FromCache:          fromCache,
	}
}

// BatchTranslationResponse 批量翻译响应
type BatchTranslationResponse struct {
	Translations []TranslationResponse `json:"translations"`
	TotalCount   int                   `json:"total_count"`
	CacheHits    int                   `json:"cache_hits"`
}

// TranslationListResponse 翻译记录列表响应
type TranslationListResponse struct {
	Success      bool                  `json:"success"`
	Translations []TranslationResponse `json:"translations"`
	Total        int64                 `json:"total"`
}

// QualityCheckResponse 质量复查响应
type QualityCheckResponse struct {
	TranslationID uint    `json:"translation_id"`
	QualityScore  float64 `json:"quality_score"`
}
