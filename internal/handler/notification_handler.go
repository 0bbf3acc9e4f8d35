package handler

import (
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/middleware"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/service"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// NotificationHandler handles notification requests
type NotificationHandler struct {
	service service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// GetList handles GET /users/me/notifications
// @Summary 내 알림 목록
// @Description 조회하면 새 알림 표시가 해제된다
// @Tags notifications
// @Produce json
// @Param page query int false "페이지 (기본 1)"
// @Success 200 {object} common.Result{data=common.Page}
// @Router /users/me/notifications [get]
func (h *NotificationHandler) GetList(c *gin.Context) {
	items, meta, err := h.service.List(c.Request.Context(), middleware.GetUserEmail(c), ginutil.QueryInt(c, "page", 1))
	if err != nil {
		common.Error(c, err)
		return
	}

	common.SuccessWithPage(c, items, meta)
}

// MarkAsRead handles PATCH /notifications/:id/read
// @Summary 알림 읽음 처리
// @Tags notifications
// @Produce json
// @Param id path int true "알림 ID"
// @Success 200 {object} common.Result
// @Failure 404 {object} common.Result
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), middleware.GetUserEmail(c), id); err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, nil)
}
