package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"trans-go/internal/models"
	"trans-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnalyticsService(db *gorm.DB) *AnalyticsService {
	return NewAnalyticsService(repository.NewTranslationRepository(db), nil)
}

func scorePtr(v float64) *float64 {
	return &v
}

// seedRecord 直接插入一条指定属性的翻译记录
func seedRecord(t *testing.T, db *gorm.DB, sourceText, sourceLang, targetLang string, score *float64, humanModified bool, createdAt time.Time) {
	t.Helper()

	record := &models.Translation{
		SourceText:    sourceText,
		TargetText:    sourceText + "-" + targetLang,
		SourceLang:    sourceLang,
		TargetLang:    targetLang,
		QualityScore:  score,
		HumanModified: humanModified,
		CreatedAt:     createdAt,
		ModifiedAt:    createdAt,
	}
	require.NoError(t, db.Create(record).Error)
}

func TestOverviewEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(db)

	analytics, err := svc.Overview(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, int64(0), analytics.TotalTranslations)
	assert.Equal(t, int64(0), analytics.TotalUniqueTexts)
	assert.Equal(t, 0.0, analytics.AvgQualityScore)
	assert.Equal(t, 0.0, analytics.HumanModifiedPercentage)
	assert.Equal(t, 0.0, analytics.CacheHitRate)
	assert.Equal(t, 0.0, analytics.RequestCacheHitRate)
	assert.Empty(t, analytics.TopLanguagePairs)
	assert.Empty(t, analytics.DailyStats)
}

func TestOverviewWindowFiltering(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(db)

	now := time.Now().UTC()
	seedRecord(t, db, "one", "en", "fr", scorePtr(0.8), false, now.Add(-time.Hour))
	seedRecord(t, db, "two", "en", "fr", scorePtr(0.6), false, now.AddDate(0, 0, -2))
	// 窗口外的旧记录不参与统计
	seedRecord(t, db, "old", "en", "fr", scorePtr(0.1), true, now.AddDate(0, 0, -40))

	analytics, err := svc.Overview(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, int64(2), analytics.TotalTranslations)
	assert.Equal(t, int64(2), analytics.TotalUniqueTexts)
	assert.InDelta(t, 0.7, analytics.AvgQualityScore, 1e-9)

	// 每日统计同样限定在窗口内
	require.Len(t, analytics.DailyStats, 2)
	assert.Less(t, analytics.DailyStats[0].Date, analytics.DailyStats[1].Date)
	for _, point := range analytics.DailyStats {
		assert.NotEqual(t, now.AddDate(0, 0, -40).Format("2006-01-02"), point.Date)
	}
}

func TestOverviewUniqueTexts(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(db)

	now := time.Now().UTC()
	seedRecord(t, db, "hello", "en", "fr", scorePtr(0.9), false, now.Add(-time.Hour))
	seedRecord(t, db, "hello", "en", "de", scorePtr(0.9), false, now.Add(-time.Hour))
	seedRecord(t, db, "world", "en", "fr", scorePtr(0.9), false, now.Add(-time.Hour))

	analytics, err := svc.Overview(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, int64(3), analytics.TotalTranslations)
	assert.Equal(t, int64(2), analytics.TotalUniqueTexts)
}

func TestOverviewHumanModifiedAndCacheHitRate(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(db)

	now := time.Now().UTC()
	seedRecord(t, db, "one", "en", "fr", scorePtr(0.8), true, now.Add(-time.Hour))
	seedRecord(t, db, "two", "en", "fr", scorePtr(0.8), false, now.Add(-time.Hour))
	seedRecord(t, db, "three", "en", "fr", scorePtr(0.8), false, now.Add(-time.Hour))
	seedRecord(t, db, "four", "en", "fr", scorePtr(0.8), false, now.Add(-time.Hour))

	analytics, err := svc.Overview(context.Background(), 30)
	require.NoError(t, err)

	assert.InDelta(t, 25.0, analytics.HumanModifiedPercentage, 1e-9)
	// 历史口径的命中率是human_modified=false的占比
	assert.InDelta(t, 75.0, analytics.CacheHitRate, 1e-9)
}

func TestOverviewQualityDistributionBuckets(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(db)

	now := time.Now().UTC()
	created := now.Add(-time.Hour)

	// 边界得分必须各自落入且仅落入一个区间
	scores := []float64{0.0, 0.19, 0.2, 0.4, 0.6, 0.8, 1.0}
	for i, score := range scores {
		seedRecord(t, db, fmt.Sprintf("text-%d", i), "en", "fr", scorePtr(score), false, created)
	}
	// 无得分的记录不参与分布
	seedRecord(t, db, "unscored", "en", "fr", nil, false, created)

	analytics, err := svc.Overview(context.Background(), 30)
	require.NoError(t, err)

	dist := analytics.QualityDistribution
	assert.Equal(t, int64(2), dist.Range0To20)
	assert.Equal(t, int64(1), dist.Range20To40)
	assert.Equal(t, int64(1), dist.Range40To60)
	assert.Equal(t, int64(1), dist.Range60To80)
	assert.Equal(t, int64(2), dist.Range80To100)

	total := dist.Range0To20 + dist.Range20To40 + dist.Range40To60 + dist.Range60To80 + dist.Range80To100
	assert.Equal(t, int64(len(scores)), total)
}

func TestOverviewTopLanguagePairsLimit(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(db)

	now := time.Now().UTC()
	created := now.Add(-time.Hour)

	targets := []string{"fr", "de", "es", "it", "ja", "ko"}
	for i, target := range targets {
		// 每个语言对的记录数递减，fr最多
		for j := 0; j <= len(targets)-i; j++ {
			seedRecord(t, db, fmt.Sprintf("text-%s-%d", target, j), "en", target, scorePtr(0.5), false, created)
		}
	}

	analytics, err := svc.Overview(context.Background(), 30)
	require.NoError(t, err)

	require.Len(t, analytics.TopLanguagePairs, 5)
	assert.Equal(t, "fr", analytics.TopLanguagePairs[0].TargetLang)
	for i := 1; i < len(analytics.TopLanguagePairs); i++ {
		assert.GreaterOrEqual(t,
			analytics.TopLanguagePairs[i-1].Count,
			analytics.TopLanguagePairs[i].Count,
		)
	}
}

func TestLanguagePairsMinCount(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(db)

	now := time.Now().UTC()
	created := now.Add(-time.Hour)

	seedRecord(t, db, "one", "en", "fr", scorePtr(0.8), false, created)
	seedRecord(t, db, "two", "en", "fr", scorePtr(0.6), true, created)
	seedRecord(t, db, "three", "en", "de", scorePtr(0.4), false, created)

	all, err := svc.LanguagePairs(1)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "fr", all[0].TargetLang)
	assert.Equal(t, int64(2), all[0].Count)
	assert.InDelta(t, 0.7, all[0].AvgQuality, 1e-9)
	assert.Equal(t, int64(1), all[0].HumanModifiedCount)

	filtered, err := svc.LanguagePairs(2)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "fr", filtered[0].TargetLang)
}

func TestLanguagePairsIgnoresWindow(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(db)

	now := time.Now().UTC()
	// 语言对统计不限时间窗口
	seedRecord(t, db, "old", "en", "fr", scorePtr(0.5), false, now.AddDate(0, 0, -400))

	pairs, err := svc.LanguagePairs(1)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, int64(1), pairs[0].Count)
}
