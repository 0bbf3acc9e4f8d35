package handler

import (
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/middleware"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/service"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// EmotionHandler handles reaction HTTP requests
type EmotionHandler struct {
	service *service.EmotionService
}

// NewEmotionHandler creates a new EmotionHandler
func NewEmotionHandler(service *service.EmotionService) *EmotionHandler {
	return &EmotionHandler{service: service}
}

// React handles PUT /contents/:content_id/emotion
// @Summary 감정 표현
// @Description 같은 감정을 다시 보내면 취소된다
// @Tags emotions
// @Accept json
// @Produce json
// @Param content_id path int true "게시물 ID"
// @Param request body domain.EmotionRequest true "감정 (0-10)"
// @Success 200 {object} common.Result{data=domain.EmotionResult}
// @Failure 400 {object} common.Result
// @Router /contents/{content_id}/emotion [put]
func (h *EmotionHandler) React(c *gin.Context) {
	contentID, err := ginutil.ParamInt64(c, "content_id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	var req domain.EmotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BindError(c, err)
		return
	}

	result, err := h.service.React(c.Request.Context(), middleware.GetUserEmail(c), contentID, *req.EmotionStatus)
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, result)
}
