package repository

import (
	"database/sql"
	"time"

	"trans-go/internal/models"

	"gorm.io/gorm"
)

// TranslationRepository 翻译记录数据访问层
type TranslationRepository struct {
	db *gorm.DB
}

// NewTranslationRepository 创建翻译记录Repository
func NewTranslationRepository(db *gorm.DB) *TranslationRepository {
	return &TranslationRepository{db: db}
}

// Create 创建翻译记录
func (r *TranslationRepository) Create(t *models.Translation) error {
	return r.db.Create(t).Error
}

// GetByID 根据ID获取翻译记录
func (r *TranslationRepository) GetByID(id uint) (*models.Translation, error) {
	var t models.Translation
	err := r.db.First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByCacheKey 根据缓存键(原文+语言对)查找翻译记录，取首条匹配
func (r *TranslationRepository) FindByCacheKey(sourceText, sourceLang, targetLang string) (*models.Translation, error) {
	var t models.Translation
	err := r.db.Where(
		"source_text = ? AND source_lang = ? AND target_lang = ?",
		sourceText, sourceLang, targetLang,
	).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update 更新翻译记录
func (r *TranslationRepository) Update(t *models.Translation) error {
	return r.db.Save(t).Error
}

// List 获取全部翻译记录
func (r *TranslationRepository) List() ([]models.Translation, int64, error) {
	var translations []models.Translation
	var total int64

	if err := r.db.Model(&models.Translation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("id ASC").Find(&translations).Error
	return translations, total, err
}

// ExistsByID 检查翻译记录是否存在
func (r *TranslationRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Translation{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CountInWindow 统计时间窗口内的记录数
func (r *TranslationRepository) CountInWindow(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Translation{}).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Count(&count).Error
	return count, err
}

// CountUniqueTextsInWindow 统计时间窗口内去重后的原文数
func (r *TranslationRepository) CountUniqueTextsInWindow(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Translation{}).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Distinct("source_text").
		Count(&count).Error
	return count, err
}

// CountHumanModifiedInWindow 统计时间窗口内人工修改过的记录数
func (r *TranslationRepository) CountHumanModifiedInWindow(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Translation{}).
		Where("created_at >= ? AND created_at <= ? AND human_modified = ?", start, end, true).
		Count(&count).Error
	return count, err
}

// AvgQualityInWindow 统计时间窗口内非空质量得分的均值，无数据时返回0
func (r *TranslationRepository) AvgQualityInWindow(start, end time.Time) (float64, error) {
	var avg sql.NullFloat64
	err := r.db.Model(&models.Translation{}).
		Where("created_at >= ? AND created_at <= ? AND quality_score IS NOT NULL", start, end).
		Select("AVG(quality_score)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

// LanguagePairAgg 语言对聚合结果
type LanguagePairAgg struct {
	SourceLang         string          `gorm:"column:source_lang"`
	TargetLang         string          `gorm:"column:target_lang"`
	Count              int64           `gorm:"column:count"`
	AvgQuality         sql.NullFloat64 `gorm:"column:avg_quality"`
	HumanModifiedCount int64           `gorm:"column:human_modified_count"`
}

// LanguagePairAggs 按语言对聚合统计
//
// start/end 为nil时不限定时间窗口；minCount<=1 时不过滤；limit<=0 时不限制条数。
// 排序为数量降序，数量相同按语言对字典序，保证结果稳定。
func (r *TranslationRepository) LanguagePairAggs(start, end *time.Time, minCount, limit int) ([]LanguagePairAgg, error) {
	query := r.db.Model(&models.Translation{}).
		Select(
			"source_lang, target_lang, COUNT(*) AS count, "+
				"AVG(quality_score) AS avg_quality, "+
				"SUM(CASE WHEN human_modified = ? THEN 1 ELSE 0 END) AS human_modified_count",
			true,
		).
		Group("source_lang, target_lang")

	if start != nil && end != nil {
		query = query.Where("created_at >= ? AND created_at <= ?", *start, *end)
	}
	if minCount > 1 {
		query = query.Having("COUNT(*) >= ?", minCount)
	}

	query = query.Order("count DESC, source_lang ASC, target_lang ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var aggs []LanguagePairAgg
	err := query.Scan(&aggs).Error
	return aggs, err
}

// QualityDistributionAgg 质量得分分布聚合结果
type QualityDistributionAgg struct {
	Range0To20   int64 `gorm:"column:range_0_20"`
	Range20To40  int64 `gorm:"column:range_20_40"`
	Range40To60  int64 `gorm:"column:range_40_60"`
	Range60To80  int64 `gorm:"column:range_60_80"`
	Range80To100 int64 `gorm:"column:range_80_100"`
}

// QualityDistributionInWindow 统计时间窗口内非空质量得分的区间分布
//
// 五个区间为 [0,0.2) [0.2,0.4) [0.4,0.6) [0.6,0.8) [0.8,1.0]，互不重叠且覆盖0-1。
func (r *TranslationRepository) QualityDistributionInWindow(start, end time.Time) (*QualityDistributionAgg, error) {
	var agg QualityDistributionAgg
	err := r.db.Model(&models.Translation{}).
		Select(
			"COALESCE(SUM(CASE WHEN quality_score < 0.2 THEN 1 ELSE 0 END), 0) AS range_0_20, " +
				"COALESCE(SUM(CASE WHEN quality_score >= 0.2 AND quality_score < 0.4 THEN 1 ELSE 0 END), 0) AS range_20_40, " +
				"COALESCE(SUM(CASE WHEN quality_score >= 0.4 AND quality_score < 0.6 THEN 1 ELSE 0 END), 0) AS range_40_60, " +
				"COALESCE(SUM(CASE WHEN quality_score >= 0.6 AND quality_score < 0.8 THEN 1 ELSE 0 END), 0) AS range_60_80, " +
				"COALESCE(SUM(CASE WHEN quality_score >= 0.8 THEN 1 ELSE 0 END), 0) AS range_80_100",
		).
		Where("created_at >= ? AND created_at <= ? AND quality_score IS NOT NULL", start, end).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

// DailyStatAgg 按天聚合结果
type DailyStatAgg struct {
	Day        string          `gorm:"column:day"`
	Count      int64           `gorm:"column:count"`
	AvgQuality sql.NullFloat64 `gorm:"column:avg_quality"`
}

// DailyStatsInWindow 统计时间窗口内按自然日聚合的数量与质量均值，按日期升序
func (r *TranslationRepository) DailyStatsInWindow(start, end time.Time) ([]DailyStatAgg, error) {
	var stats []DailyStatAgg
	err := r.db.Model(&models.Translation{}).
		Select("date(created_at) AS day, COUNT(*) AS count, AVG(quality_score) AS avg_quality").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Group("date(created_at)").
		Order("day ASC").
		Scan(&stats).Error
	return stats, err
}
