package handler

import (
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/middleware"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/service"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// BookmarkHandler handles bookmark HTTP requests
type BookmarkHandler struct {
	service service.BookmarkService
}

// NewBookmarkHandler creates a new BookmarkHandler
func NewBookmarkHandler(service service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

// ToggleBookmark handles POST /contents/:content_id/bookmark
// @Summary 북마크 토글
// @Tags bookmarks
// @Produce json
// @Param content_id path int true "게시물 ID"
// @Success 200 {object} common.Result{data=domain.BookmarkToggleResponse}
// @Failure 404 {object} common.Result
// @Router /contents/{content_id}/bookmark [post]
func (h *BookmarkHandler) ToggleBookmark(c *gin.Context) {
	contentID, err := ginutil.ParamInt64(c, "content_id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	result, err := h.service.ToggleBookmark(c.Request.Context(), middleware.GetUserEmail(c), contentID)
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, result)
}

// ListBookmarks handles GET /users/me/bookmarks
// @Summary 내 북마크 목록
// @Tags bookmarks
// @Produce json
// @Success 200 {object} common.Result{data=domain.BookmarkListResponse}
// @Router /users/me/bookmarks [get]
func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	result, err := h.service.ListBookmarks(c.Request.Context(), middleware.GetUserEmail(c))
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, result)
}
