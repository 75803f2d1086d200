package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trans-go/internal/dto"
	"trans-go/internal/repository"

	"github.com/go-redis/redis/v8"
)

// AnalyticsService 翻译统计分析服务
type AnalyticsService struct {
	translationRepo *repository.TranslationRepository
	redisClient     *redis.Client
}

// NewAnalyticsService 创建统计分析服务
//
// redisClient 可以为nil，此时请求时命中率按0返回。
func NewAnalyticsService(translationRepo *repository.TranslationRepository, redisClient *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		translationRepo: translationRepo,
		redisClient:     redisClient,
	}
}

// Overview 统计最近days天内的翻译总览
//
// 所有聚合指标都限定在[now-days, now]窗口内。cache_hit_rate沿用历史口径
// （human_modified=false的占比），request_cache_hit_rate才是按请求计数的真实命中率。
func (s *AnalyticsService) Overview(ctx context.Context, days int) (*dto.TranslationAnalytics, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	total, err := s.translationRepo.CountInWindow(start, end)
	if err != nil {
		return nil, fmt.Errorf("统计翻译总数失败: %w", err)
	}

	uniqueTexts, err := s.translationRepo.CountUniqueTextsInWindow(start, end)
	if err != nil {
		return nil, fmt.Errorf("统计去重原文数失败: %w", err)
	}

	avgQuality, err := s.translationRepo.AvgQualityInWindow(start, end)
	if err != nil {
		return nil, fmt.Errorf("统计质量均值失败: %w", err)
	}

	humanModified, err := s.translationRepo.CountHumanModifiedInWindow(start, end)
	if err != nil {
		return nil, fmt.Errorf("统计人工修改数失败: %w", err)
	}

	var humanModifiedPct float64
	var cacheHitRate float64
	if total > 0 {
		humanModifiedPct = float64(humanModified) / float64(total) * 100
		cacheHitRate = float64(total-humanModified) / float64(total) * 100
	}

	pairAggs, err := s.translationRepo.LanguagePairAggs(&start, &end, 1, 5)
	if err != nil {
		return nil, fmt.Errorf("统计语言对失败: %w", err)
	}

	distAgg, err := s.translationRepo.QualityDistributionInWindow(start, end)
	if err != nil {
		return nil, fmt.Errorf("统计质量分布失败: %w", err)
	}

	dailyAggs, err := s.translationRepo.DailyStatsInWindow(start, end)
	if err != nil {
		return nil, fmt.Errorf("统计每日数据失败: %w", err)
	}

	dailyStats := make([]dto.TimeSeriesPoint, len(dailyAggs))
	for i, agg := range dailyAggs {
		dailyStats[i] = dto.TimeSeriesPoint{
			Date:       agg.Day,
			Count:      agg.Count,
			AvgQuality: agg.AvgQuality.Float64,
		}
	}

	return &dto.TranslationAnalytics{
		TotalTranslations:       total,
		TotalUniqueTexts:        uniqueTexts,
		AvgQualityScore:         avgQuality,
		HumanModifiedPercentage: humanModifiedPct,
		TopLanguagePairs:        toLanguagePairStats(pairAggs),
		QualityDistribution: dto.QualityDistribution{
			Range0To20:   distAgg.Range0To20,
			Range20To40:  distAgg.Range20To40,
			Range40To60:  distAgg.Range40To60,
			Range60To80:  distAgg.Range60To80,
			Range80To100: distAgg.Range80To100,
		},
		DailyStats:          dailyStats,
		CacheHitRate:        cacheHitRate,
		RequestCacheHitRate: s.requestCacheHitRate(ctx),
	}, nil
}

// LanguagePairs 不限时间窗口的语言对统计，按数量降序
func (s *AnalyticsService) LanguagePairs(minCount int) ([]dto.LanguagePairStats, error) {
	aggs, err := s.translationRepo.LanguagePairAggs(nil, nil, minCount, 0)
	if err != nil {
		return nil, fmt.Errorf("统计语言对失败: %w", err)
	}

	return toLanguagePairStats(aggs), nil
}

// requestCacheHitRate 从Redis计数器计算请求时命中率，计数不可用时返回0
func (s *AnalyticsService) requestCacheHitRate(ctx context.Context) float64 {
	if s.redisClient == nil {
		return 0
	}

	hits, err := s.redisClient.Get(ctx, CacheHitCounterKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0
	}

	misses, err := s.redisClient.Get(ctx, CacheMissCounterKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0
	}

	if hits+misses == 0 {
		return 0
	}

	return float64(hits) / float64(hits+misses) * 100
}

// toLanguagePairStats 聚合结果转响应结构
func toLanguagePairStats(aggs []repository.LanguagePairAgg) []dto.LanguagePairStats {
	stats := make([]dto.LanguagePairStats, len(aggs))
	for i, agg := range aggs {
		stats[i] = dto.LanguagePairStats{
			SourceLang:         agg.SourceLang,
			TargetLang:         agg.TargetLang,
			Count:              agg.Count,
			AvgQuality:         agg.AvgQuality.Float64,
			HumanModifiedCount: agg.HumanModifiedCount,
		}
	}
	return stats
}
