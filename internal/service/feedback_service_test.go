package service

import (
	"context"
	"testing"

	"trans-go/internal/dto"
	"trans-go/internal/models"
	"trans-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFeedbackService(db *gorm.DB) *FeedbackService {
	return NewFeedbackService(
		repository.NewFeedbackRepository(db),
		repository.NewTranslationRepository(db),
	)
}

// seedTranslation 插入一条翻译记录供反馈测试引用
func seedTranslation(t *testing.T, db *gorm.DB) *models.Translation {
	t.Helper()

	svc := newTranslationService(db, &fakeGateway{})
	translation, _, err := svc.Translate(context.Background(), "Hello", "en", "fr")
	require.NoError(t, err)

	return translation
}

func TestCreateFeedbackRejectsInvalidRating(t *testing.T) {
	db := newTestDB(t)
	translation := seedTranslation(t, db)
	svc := newFeedbackService(db)

	for _, rating := range []int{-1, 0, 6, 100} {
		_, err := svc.Create(translation.ID, &dto.FeedbackRequest{UserID: "user-1", Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating=%d", rating)
	}

	// 校验失败时不落库
	var count int64
	require.NoError(t, db.Model(&models.TranslationFeedback{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateFeedbackAcceptsValidRatings(t *testing.T) {
	db := newTestDB(t)
	translation := seedTranslation(t, db)
	svc := newFeedbackService(db)

	for rating := 1; rating <= 5; rating++ {
		feedback, err := svc.Create(translation.ID, &dto.FeedbackRequest{UserID: "user-1", Rating: rating})
		require.NoError(t, err)
		assert.NotZero(t, feedback.ID)
		assert.Equal(t, rating, feedback.Rating)
		assert.Equal(t, translation.ID, feedback.TranslationID)
	}
}

func TestCreateFeedbackTranslationNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedbackService(db)

	_, err := svc.Create(12345, &dto.FeedbackRequest{UserID: "user-1", Rating: 3})
	assert.ErrorIs(t, err, ErrTranslationNotFound)
}

func TestCreateFeedbackRequiresUserID(t *testing.T) {
	db := newTestDB(t)
	translation := seedTranslation(t, db)
	svc := newFeedbackService(db)

	_, err := svc.Create(translation.ID, &dto.FeedbackRequest{Rating: 3})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListFeedbackByTranslation(t *testing.T) {
	db := newTestDB(t)
	translation := seedTranslation(t, db)
	svc := newFeedbackService(db)

	comment := "不错"
	_, err := svc.Create(translation.ID, &dto.FeedbackRequest{UserID: "user-1", Rating: 5, Comment: &comment})
	require.NoError(t, err)
	_, err = svc.Create(translation.ID, &dto.FeedbackRequest{UserID: "user-2", Rating: 3})
	require.NoError(t, err)

	feedbacks, err := svc.ListByTranslation(translation.ID)
	require.NoError(t, err)
	require.Len(t, feedbacks, 2)
	assert.Equal(t, "user-1", feedbacks[0].UserID)
	assert.Equal(t, "user-2", feedbacks[1].UserID)
}

func TestListFeedbackTranslationNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedbackService(db)

	_, err := svc.ListByTranslation(12345)
	assert.ErrorIs(t, err, ErrTranslationNotFound)
}

func TestFeedbackStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedbackService(db)

	stats, err := svc.Stats()
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalFeedbacks)
	assert.Equal(t, 0.0, stats.AverageRating)
	require.Len(t, stats.RatingDistribution, 5)
	for i := '1'; i <= '5'; i++ {
		assert.Equal(t, int64(0), stats.RatingDistribution[string(i)])
	}
}

func TestFeedbackStats(t *testing.T) {
	db := newTestDB(t)
	translation := seedTranslation(t, db)
	svc := newFeedbackService(db)

	for _, rating := range []int{5, 4, 4, 1} {
		_, err := svc.Create(translation.ID, &dto.FeedbackRequest{UserID: "user-1", Rating: rating})
		require.NoError(t, err)
	}

	stats, err := svc.Stats()
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalFeedbacks)
	// (5+4+4+1)/4 = 3.5
	assert.InDelta(t, 3.5, stats.AverageRating, 1e-9)
	assert.Equal(t, int64(1), stats.RatingDistribution["1"])
	assert.Equal(t, int64(0), stats.RatingDistribution["2"])
	assert.Equal(t, int64(0), stats.RatingDistribution["3"])
	assert.Equal(t, int64(2), stats.RatingDistribution["4"])
	assert.Equal(t, int64(1), stats.RatingDistribution["5"])
}

func TestFeedbackStatsRounding(t *testing.T) {
	db := newTestDB(t)
	translation := seedTranslation(t, db)
	svc := newFeedbackService(db)

	for _, rating := range []int{5, 4, 4} {
		_, err := svc.Create(translation.ID, &dto.FeedbackRequest{UserID: "user-1", Rating: rating})
		require.NoError(t, err)
	}

	stats, err := svc.Stats()
	require.NoError(t, err)

	// 13/3 = 4.333... 保留两位小数
	assert.InDelta(t, 4.33, stats.AverageRating, 1e-9)
}
