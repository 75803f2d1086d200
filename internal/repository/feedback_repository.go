package repository

import (
	"trans-go/internal/models"

	"gorm.io/gorm"
)

// FeedbackRepository 翻译反馈数据访问层
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository 创建反馈Repository
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create 创建反馈记录
func (r *FeedbackRepository) Create(f *models.TranslationFeedback) error {
	return r.db.Create(f).Error
}

// ListByTranslationID 获取指定翻译记录的全部反馈，按存储顺序返回
func (r *FeedbackRepository) ListByTranslationID(translationID uint) ([]models.TranslationFeedback, error) {
	var feedbacks []models.TranslationFeedback
	err := r.db.Where("translation_id = ?", translationID).Order("id ASC").Find(&feedbacks).Error
	return feedbacks, err
}

// ListAll 获取全部反馈记录
func (r *FeedbackRepository) ListAll() ([]models.TranslationFeedback, error) {
	var feedbacks []models.TranslationFeedback
	err := r.db.Order("id ASC").Find(&feedbacks).Error
	return feedbacks, err
}
