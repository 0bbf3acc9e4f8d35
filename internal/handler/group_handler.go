package handler

import (
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/middleware"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/service"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// GroupHandler handles group HTTP requests
type GroupHandler struct {
	service service.GroupService
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(service service.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

// CreateGroup handles POST /groups
// @Summary 그룹 생성
// @Tags groups
// @Accept json
// @Produce json
// @Param request body domain.CreateGroupRequest true "그룹 정보"
// @Success 201 {object} common.Result{data=domain.GroupResponse}
// @Failure 400 {object} common.Result
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req domain.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BindError(c, err)
		return
	}

	group, err := h.service.CreateGroup(c.Request.Context(), middleware.GetUserEmail(c), &req)
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Created(c, group)
}

// JoinGroup handles POST /groups/:group_id/join
// @Summary 그룹 가입
// @Tags groups
// @Produce json
// @Param group_id path int true "그룹 ID"
// @Success 200 {object} common.Result{data=domain.GroupResponse}
// @Failure 404 {object} common.Result
// @Router /groups/{group_id}/join [post]
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	groupID, err := ginutil.ParamInt64(c, "group_id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	group, err := h.service.JoinGroup(c.Request.Context(), middleware.GetUserEmail(c), groupID)
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, group)
}

// GetGroup handles GET /groups/:group_id
// @Summary 그룹 상세
// @Tags groups
// @Produce json
// @Param group_id path int true "그룹 ID"
// @Success 200 {object} common.Result{data=domain.GroupDetailResponse}
// @Failure 404 {object} common.Result
// @Router /groups/{group_id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	groupID, err := ginutil.ParamInt64(c, "group_id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	detail, err := h.service.GetGroupDetail(c.Request.Context(), groupID)
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, detail)
}

// ListMyGroups handles GET /users/me/groups
// @Summary 내 그룹 목록
// @Tags groups
// @Produce json
// @Success 200 {object} common.Result{data=[]domain.GroupResponse}
// @Failure 404 {object} common.Result
// @Router /users/me/groups [get]
func (h *GroupHandler) ListMyGroups(c *gin.Context) {
	groups, err := h.service.ListMyGroups(c.Request.Context(), middleware.GetUserEmail(c))
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, groups)
}
