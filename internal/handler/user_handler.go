package handler

import (
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/middleware"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// UserHandler handles requests about the caller account
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetMe handles GET /users/me
// @Summary 내 정보
// @Tags users
// @Produce json
// @Success 200 {object} common.Result{data=domain.UserResponse}
// @Failure 404 {object} common.Result
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.service.GetMe(c.Request.Context(), middleware.GetUserEmail(c))
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, user.ToResponse())
}

// Withdraw handles DELETE /users/me
// @Summary 회원 탈퇴
// @Tags users
// @Produce json
// @Success 200 {object} common.Result
// @Router /users/me [delete]
func (h *UserHandler) Withdraw(c *gin.Context) {
	if err := h.service.Withdraw(c.Request.Context(), middleware.GetUserEmail(c)); err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, nil)
}
