package handler

import (
	"errors"
	"strconv"

	"trans-go/internal/dto"
	"trans-go/internal/service"
	"trans-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler 翻译反馈处理器
type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

// NewFeedbackHandler 创建反馈处理器
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// CreateFeedback 创建反馈
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	feedback, err := h.feedbackService.Create(uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTranslationNotFound):
			utils.NotFound(c, err.Error())
		case errors.Is(err, service.ErrInvalidRating), errors.Is(err, service.ErrValidation):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalError(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, dto.NewFeedbackResponse(feedback))
}

// ListFeedback 获取指定翻译记录的全部反馈
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	feedbacks, err := h.feedbackService.ListByTranslation(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrTranslationNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	responses := make([]dto.FeedbackResponse, len(feedbacks))
	for i := range feedbacks {
		responses[i] = dto.NewFeedbackResponse(&feedbacks[i])
	}

	utils.SuccessResponse(c, dto.FeedbackListResponse{
		Success:   true,
		Feedbacks: responses,
		Total:     int64(len(responses)),
	})
}

// GetStats 全局反馈统计
func (h *FeedbackHandler) GetStats(c *gin.Context) {
	stats, err := h.feedbackService.Stats()
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, stats)
}
