package dto

// LanguagePairStats 单个语言对的聚合统计
type LanguagePairStats struct {
	SourceLang         string  `json:"source_lang"`
	TargetLang         string  `json:"target_lang"`
	Count              int64   `json:"count"`
	AvgQuality         float64 `json:"avg_quality"`
	HumanModifiedCount int64   `json:"human_modified_count"`
}

// TimeSeriesPoint 按天统计的数据点
type TimeSeriesPoint struct {
	Date       string  `json:"date"`
	Count      int64   `json:"count"`
	AvgQuality float64 `json:"avg_quality"`
}

// QualityDistribution 质量得分分布，五个左闭右开区间覆盖0-1
type QualityDistribution struct {
	Range0To20   int64 `json:"range_0_20"`
	Range20To40  int64 `json:"range_20_40"`
	Range40To60  int64 `json:"range_40_60"`
	Range60To80  int64 `json:"range_60_80"`
	Range80To100 int64 `json:"range_80_100"`
}

// TranslationAnalytics 翻译统计总览
type TranslationAnalytics struct {
	TotalTranslations       int64               `json:"total_translations"`
	TotalUniqueTexts        int64               `json:"total_unique_texts"`
	AvgQualityScore         float64             `json:"avg_quality_score"`
	HumanModifiedPercentage float64             `json:"human_modified_percentage"`
	TopLanguagePairs        []LanguagePairStats `json:"top_language_pairs"`
	QualityDistribution     QualityDistribution `json:"quality_distribution"`
	DailyStats              []TimeSeriesPoint   `json:"daily_stats"`
	// CacheHitRate 沿用历史口径：按human_modified=false的占比估算
	CacheHitRate float64 `json:"cache_hit_rate"`
	// RequestCacheHitRate 按请求时命中计数统计的真实命中率
	RequestCacheHitRate float64 `json:"request_cache_hit_rate"`
}
