package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"trans-go/internal/dto"
	"trans-go/internal/models"
	"trans-go/internal/repository"
	"trans-go/internal/utils"

	"gorm.io/gorm"
)

// FeedbackService 翻译反馈服务
type FeedbackService struct {
	feedbackRepo    *repository.FeedbackRepository
	translationRepo *repository.TranslationRepository
}

// NewFeedbackService 创建反馈服务
func NewFeedbackService(
	feedbackRepo *repository.FeedbackRepository,
	translationRepo *repository.TranslationRepository,
) *FeedbackService {
	return &FeedbackService{
		feedbackRepo:    feedbackRepo,
		translationRepo: translationRepo,
	}
}

// Create 创建反馈记录
//
// 评分必须在1-5之间，校验在落库之前完成；翻译记录不存在时返回ErrTranslationNotFound。
func (s *FeedbackService) Create(translationID uint, req *dto.FeedbackRequest) (*models.TranslationFeedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	exists, err := s.translationRepo.ExistsByID(translationID)
	if err != nil {
		return nil, fmt.Errorf("查询翻译记录失败: %w", err)
	}
	if !exists {
		return nil, ErrTranslationNotFound
	}

	feedback := &models.TranslationFeedback{
		TranslationID: translationID,
		UserID:        req.UserID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, fmt.Errorf("保存反馈记录失败: %w", err)
	}

	return feedback, nil
}

// ListByTranslation 获取指定翻译记录的全部反馈
func (s *FeedbackService) ListByTranslation(translationID uint) ([]models.TranslationFeedback, error) {
	_, err := s.translationRepo.GetByID(translationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTranslationNotFound
		}
		return nil, fmt.Errorf("查询翻译记录失败: %w", err)
	}

	feedbacks, err := s.feedbackRepo.ListByTranslationID(translationID)
	if err != nil {
		return nil, fmt.Errorf("查询反馈记录失败: %w", err)
	}

	return feedbacks, nil
}

// Stats 全局反馈统计
//
// 平均评分保留两位小数，无反馈时为0；分布固定包含"1"到"5"五个键。
func (s *FeedbackService) Stats() (*dto.FeedbackStats, error) {
	feedbacks, err := s.feedbackRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("查询反馈记录失败: %w", err)
	}

	distribution := make(map[string]int64, 5)
	for i := 1; i <= 5; i++ {
		distribution[strconv.Itoa(i)] = 0
	}

	if len(feedbacks) == 0 {
		return &dto.FeedbackStats{
			TotalFeedbacks:     0,
			AverageRating:      0.0,
			RatingDistribution: distribution,
		}, nil
	}

	var sum int64
	for _, f := range feedbacks {
		sum += int64(f.Rating)
		distribution[strconv.Itoa(f.Rating)]++
	}

	avg := float64(sum) / float64(len(feedbacks))

	return &dto.FeedbackStats{
		TotalFeedbacks:     int64(len(feedbacks)),
		AverageRating:      math.Round(avg*100) / 100,
		RatingDistribution: distribution,
	}, nil
}
