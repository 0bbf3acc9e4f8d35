package handler

import (
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/middleware"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/service"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	service service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// AddComment handles POST /contents/:content_id/comments
// @Summary 댓글 작성
// @Tags comments
// @Accept json
// @Produce json
// @Param content_id path int true "게시물 ID"
// @Param request body domain.CreateCommentRequest true "댓글"
// @Success 201 {object} common.Result{data=domain.CommentResponse}
// @Failure 404 {object} common.Result
// @Router /contents/{content_id}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	contentID, err := ginutil.ParamInt64(c, "content_id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	var req domain.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BindError(c, err)
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), middleware.GetUserEmail(c), contentID, &req)
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Created(c, comment)
}

// ListComments handles GET /contents/:content_id/comments
// @Summary 댓글 목록
// @Tags comments
// @Produce json
// @Param content_id path int true "게시물 ID"
// @Param page query int false "페이지 (기본 1)"
// @Success 200 {object} common.Result{data=domain.CommentPageResponse}
// @Router /contents/{content_id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	contentID, err := ginutil.ParamInt64(c, "content_id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	result, err := h.service.ListComments(c.Request.Context(), middleware.GetUserEmail(c), contentID, ginutil.QueryInt(c, "page", 1))
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, result)
}

// DeleteComment handles DELETE /comments/:comment_id
// @Summary 댓글 삭제
// @Tags comments
// @Produce json
// @Param comment_id path int true "댓글 ID"
// @Success 200 {object} common.Result
// @Failure 403 {object} common.Result
// @Router /comments/{comment_id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := ginutil.ParamInt64(c, "comment_id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), middleware.GetUserEmail(c), commentID); err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, nil)
}

// ToggleLike handles POST /comments/:comment_id/like
// @Summary 댓글 좋아요 토글
// @Tags comments
// @Produce json
// @Param comment_id path int true "댓글 ID"
// @Success 200 {object} common.Result{data=domain.CommentLikeResponse}
// @Router /comments/{comment_id}/like [post]
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	commentID, err := ginutil.ParamInt64(c, "comment_id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	result, err := h.service.ToggleCommentLike(c.Request.Context(), middleware.GetUserEmail(c), commentID)
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, result)
}
