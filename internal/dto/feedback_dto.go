package dto

import (
	"trans-go/internal/models"
)

// FeedbackRequest 创建反馈请求，评分限定1-5星
type FeedbackRequest struct {
	UserID  string  `json:"user_id" binding:"required" validate:"required"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5" validate:"required,min=1,max=5"`
	Comment *string `json:"comment" validate:"-"`
}

// FeedbackResponse 反馈记录响应
type FeedbackResponse struct {
	ID            uint    `json:"id"`
	TranslationID uint    `json:"translation_id"`
	UserID        string  `json:"user_id"`
	Rating        int     `json:"rating"`
	Comment       *string `json:"comment"`
	CreatedAt     string  `json:"created_at"`
}

// NewFeedbackResponse 由反馈记录构造响应
func NewFeedbackResponse(f *models.TranslationFeedback) FeedbackResponse {
	return FeedbackResponse{
		ID:            f.ID,
		TranslationID: f.TranslationID,
		UserID:        f.UserID,
		Rating:        f.Rating,
		Comment:       f.Comment,
		CreatedAt:     f.CreatedAt.Format(TimeFormat),
	}
}

// FeedbackListResponse 反馈列表响应
type FeedbackListResponse struct {
	Success   bool               `json:"success"`
	Feedbacks []FeedbackResponse `json:"feedbacks"`
	Total     int64              `json:"total"`
}

// FeedbackStats 全局反馈统计
type FeedbackStats struct {
	TotalFeedbacks     int64            `json:"total_feedbacks"`
	AverageRating      float64          `json:"average_rating"`
	RatingDistribution map[string]int64 `json:"rating_distribution"`
}
