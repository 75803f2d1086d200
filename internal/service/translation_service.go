package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trans-go/internal/dto"
	"trans-go/internal/models"
	"trans-go/internal/repository"
	"trans-go/pkg/llm"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// 请求时缓存命中计数的Redis键
const (
	CacheHitCounterKey  = "translations:cache_hits"
	CacheMissCounterKey = "translations:cache_misses"
)

// TranslationService 翻译工作流服务
type TranslationService struct {
	translationRepo *repository.TranslationRepository
	gateway         llm.Gateway
	redisClient     *redis.Client
	logger          *logrus.Logger
}

// NewTranslationService 创建翻译工作流服务
//
// redisClient 可以为nil，此时不记录请求时命中计数。
func NewTranslationService(
	translationRepo *repository.TranslationRepository,
	gateway llm.Gateway,
	redisClient *redis.Client,
	logger *logrus.Logger,
) *TranslationService {
	return &TranslationService{
		translationRepo: translationRepo,
		gateway:         gateway,
		redisClient:     redisClient,
		logger:          logger,
	}
}

// Translate 翻译文本，优先走缓存
//
// 命中时原样返回已存记录，不改写、不重新评分；未命中时调用网关翻译并评分，
// 翻译和评分都成功后才落库，网关失败不会留下半写记录。
// 对同一(text, source_lang, target_lang)，网关至多被调用一次。
func (s *TranslationService) Translate(ctx context.Context, text, sourceLang, targetLang string) (*models.Translation, bool, error) {
	cached, err := s.translationRepo.FindByCacheKey(text, sourceLang, targetLang)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("查询翻译缓存失败: %w", err)
	}

	if cached != nil {
		s.incrCounter(ctx, CacheHitCounterKey)
		return cached, true, nil
	}

	translatedText, err := s.gateway.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return nil, false, fmt.Errorf("调用翻译服务失败: %w", err)
	}

	qualityScore, err := s.gateway.EvaluateQuality(ctx, text, translatedText, sourceLang, targetLang)
	if err != nil {
		return nil, false, fmt.Errorf("评估翻译质量失败: %w", err)
	}

	now := time.Now().UTC()
	machineTranslation := translatedText
	translation := &models.Translation{
		SourceText:         text,
		TargetText:         translatedText,
		SourceLang:         sourceLang,
		TargetLang:         targetLang,
		QualityScore:       &qualityScore,
		IsConfirmed:        false,
		HumanModified:      false,
		MachineTranslation: &machineTranslation,
		CreatedAt:          now,
		ModifiedAt:         now,
	}

	if err := s.translationRepo.Create(translation); err != nil {
		return nil, false, fmt.Errorf("保存翻译记录失败: %w", err)
	}

	s.incrCounter(ctx, CacheMissCounterKey)
	return translation, false, nil
}

// BatchTranslate 批量翻译
//
// 按输入顺序逐条处理，每条独立套用单条翻译的缓存逻辑。
// 任一条网关调用失败时整个请求失败，此前已落库的条目保留，不做补偿回滚。
func (s *TranslationService) BatchTranslate(ctx context.Context, texts []string, sourceLang, targetLang string) (*dto.BatchTranslationResponse, error) {
	results := make([]dto.TranslationResponse, 0, len(texts))
	cacheHits := 0

	for _, text := range texts {
		translation, fromCache, err := s.Translate(ctx, text, sourceLang, targetLang)
		if err != nil {
			return nil, err
		}

		if fromCache {
			cacheHits++
		}
		results = append(results, dto.NewTranslationResponse(translation, fromCache))
	}

	return &dto.BatchTranslationResponse{
		Translations: results,
		TotalCount:   len(texts),
		CacheHits:    cacheHits,
	}, nil
}

// Review 人工审核翻译记录
//
// 无条件更新确认状态、审核人和审核意见；提供修改译文时标记human_modified、
// 回填机器译文（仅首次）、替换译文并按新译文重新评分。
func (s *TranslationService) Review(ctx context.Context, id uint, req *dto.ReviewRequest) (*models.Translation, error) {
	translation, err := s.translationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTranslationNotFound
		}
		return nil, fmt.Errorf("查询翻译记录失败: %w", err)
	}

	translation.IsConfirmed = req.IsConfirmed
	translation.LastModifiedBy = &req.Reviewer
	translation.ReviewerComments = req.Comments

	if req.ModifiedText != nil && *req.ModifiedText != "" {
		translation.HumanModified = true

		// 机器译文只在首次人工修改时回填，保留修改前的机器原文
		if translation.MachineTranslation == nil {
			machineTranslation := translation.TargetText
			translation.MachineTranslation = &machineTranslation
		}

		translation.TargetText = *req.ModifiedText

		qualityScore, err := s.gateway.EvaluateQuality(
			ctx,
			translation.SourceText,
			translation.TargetText,
			translation.SourceLang,
			translation.TargetLang,
		)
		if err != nil {
			return nil, fmt.Errorf("评估翻译质量失败: %w", err)
		}
		translation.QualityScore = &qualityScore
	}

	translation.ModifiedAt = time.Now().UTC()

	if err := s.translationRepo.Update(translation); err != nil {
		return nil, fmt.Errorf("更新翻译记录失败: %w", err)
	}

	return translation, nil
}

// QualityCheck 按当前原文和译文重新评估质量得分并落库
//
// 不改动译文，也不改动human_modified和is_confirmed标记。
func (s *TranslationService) QualityCheck(ctx context.Context, id uint) (float64, error) {
	translation, err := s.translationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrTranslationNotFound
		}
		return 0, fmt.Errorf("查询翻译记录失败: %w", err)
	}

	qualityScore, err := s.gateway.EvaluateQuality(
		ctx,
		translation.SourceText,
		translation.TargetText,
		translation.SourceLang,
		translation.TargetLang,
	)
	if err != nil {
		return 0, fmt.Errorf("评估翻译质量失败: %w", err)
	}

	translation.QualityScore = &qualityScore
	translation.ModifiedAt = time.Now().UTC()

	if err := s.translationRepo.Update(translation); err != nil {
		return 0, fmt.Errorf("更新翻译记录失败: %w", err)
	}

	return qualityScore, nil
}

// List 获取全部翻译记录
func (s *TranslationService) List() (*dto.TranslationListResponse, error) {
	translations, total, err := s.translationRepo.List()
	if err != nil {
		return nil, fmt.Errorf("查询翻译记录失败: %w", err)
	}

	responses := make([]dto.TranslationResponse, len(translations))
	for i := range translations {
		responses[i] = dto.NewTranslationResponse(&translations[i], true)
	}

	return &dto.TranslationListResponse{
		Success:      true,
		Translations: responses,
		Total:        total,
	}, nil
}

// incrCounter 累加请求时命中计数，Redis不可用时只记日志不影响主流程
func (s *TranslationService) incrCounter(ctx context.Context, key string) {
	if s.redisClient == nil {
		return
	}

	if err := s.redisClient.Incr(ctx, key).Err(); err != nil && s.logger != nil {
		s.logger.Warnf("更新缓存命中计数失败: key=%s, err=%v", key, err)
	}
}
