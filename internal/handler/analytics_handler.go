package handler

import (
	"strconv"

	"trans-go/internal/config"
	"trans-go/internal/service"
	"trans-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler 统计分析处理器
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	defaultDays      int
}

// NewAnalyticsHandler 创建统计分析处理器
func NewAnalyticsHandler(analyticsService *service.AnalyticsService, cfg *config.Config) *AnalyticsHandler {
	defaultDays := 30
	if cfg != nil && cfg.Analytics.DefaultDays > 0 {
		defaultDays = cfg.Analytics.DefaultDays
	}

	return &AnalyticsHandler{
		analyticsService: analyticsService,
		defaultDays:      defaultDays,
	}
}

// Overview 翻译统计总览
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(h.defaultDays)))
	if err != nil || days < 1 || days > 365 {
		utils.BadRequest(c, "days参数必须是1到365之间的整数")
		return
	}

	analytics, err := h.analyticsService.Overview(c.Request.Context(), days)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, analytics)
}

// LanguagePairs 语言对统计
func (h *AnalyticsHandler) LanguagePairs(c *gin.Context) {
	minCount, err := strconv.Atoi(c.DefaultQuery("min_count", "1"))
	if err != nil || minCount < 1 {
		utils.BadRequest(c, "min_count参数必须是不小于1的整数")
		return
	}

	stats, err := h.analyticsService.LanguagePairs(minCount)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, stats)
}
