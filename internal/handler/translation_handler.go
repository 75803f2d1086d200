package handler

import (
	"errors"
	"strconv"

	"trans-go/internal/dto"
	"trans-go/internal/service"
	"trans-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// TranslationHandler 翻译处理器
type TranslationHandler struct {
	translationService *service.TranslationService
}

// NewTranslationHandler 创建翻译处理器
func NewTranslationHandler(translationService *service.TranslationService) *TranslationHandler {
	return &TranslationHandler{translationService: translationService}
}

// Translate 翻译文本，优先返回缓存记录
func (h *TranslationHandler) Translate(c *gin.Context) {
	var req dto.TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	translation, fromCache, err := h.translationService.Translate(
		c.Request.Context(), req.Text, req.SourceLang, req.TargetLang,
	)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.NewTranslationResponse(translation, fromCache))
}

// BatchTranslate 批量翻译
func (h *TranslationHandler) BatchTranslate(c *gin.Context) {
	var req dto.BatchTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	result, err := h.translationService.BatchTranslate(
		c.Request.Context(), req.Texts, req.SourceLang, req.TargetLang,
	)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, result)
}

// ListTranslations 获取全部翻译记录
func (h *TranslationHandler) ListTranslations(c *gin.Context) {
	result, err := h.translationService.List()
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, result)
}

// Review 人工审核翻译记录
func (h *TranslationHandler) Review(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	translation, err := h.translationService.Review(c.Request.Context(), uint(id), &req)
	if err != nil {
		if errors.Is(err, service.ErrTranslationNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.NewTranslationResponse(translation, true))
}

// QualityCheck 重新评估翻译质量
func (h *TranslationHandler) QualityCheck(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	qualityScore, err := h.translationService.QualityCheck(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrTranslationNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, dto.QualityCheckResponse{
		TranslationID: uint(id),
		QualityScore:  qualityScore,
	})
}
