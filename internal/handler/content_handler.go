package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/middleware"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/service"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// ContentHandler handles content HTTP requests
type ContentHandler struct {
	service service.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// imageFiles returns the files sent under "images"; a non-multipart body has none
func imageFiles(c *gin.Context) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return form.File["images"], nil
}

// CreateContent handles POST /groups/:group_id/contents
// @Summary 게시물 작성
// @Tags contents
// @Accept multipart/form-data
// @Produce json
// @Param group_id path int true "그룹 ID"
// @Param content formData string false "본문"
// @Param latitude formData number false "위도"
// @Param longitude formData number false "경도"
// @Param content_link formData string false "링크"
// @Param images formData file false "이미지"
// @Success 201 {object} common.Result{data=domain.ContentResponse}
// @Failure 400 {object} common.Result
// @Router /groups/{group_id}/contents [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	groupID, err := ginutil.ParamInt64(c, "group_id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	var req domain.CreateContentRequest
	if err := c.ShouldBind(&req); err != nil {
		common.BindError(c, err)
		return
	}
	files, err := imageFiles(c)
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	content, err := h.service.CreateContent(c.Request.Context(), middleware.GetUserEmail(c), groupID, &req, files)
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Created(c, content)
}

// GetContent handles GET /contents/:content_id
// @Summary 게시물 상세
// @Description 조회할 때마다 조회수가 1 증가한다
// @Tags contents
// @Produce json
// @Param content_id path int true "게시물 ID"
// @Success 200 {object} common.Result{data=domain.ContentView}
// @Failure 404 {object} common.Result
// @Router /contents/{content_id} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	contentID, err := ginutil.ParamInt64(c, "content_id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	view, err := h.service.GetContentDetail(c.Request.Context(), middleware.GetUserEmail(c), contentID)
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, view)
}

// UpdateContent handles PUT /contents/:content_id
// @Summary 게시물 수정
// @Tags contents
// @Accept multipart/form-data
// @Produce json
// @Param content_id path int true "게시물 ID"
// @Param content formData string false "본문"
// @Param content_link formData string false "링크"
// @Param delete_image_names formData []string false "삭제할 이미지 이름"
// @Param images formData file false "추가 이미지"
// @Success 200 {object} common.Result{data=domain.ContentResponse}
// @Failure 403 {object} common.Result
// @Router /contents/{content_id} [put]
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	contentID, err := ginutil.ParamInt64(c, "content_id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	var req domain.UpdateContentRequest
	if err := c.ShouldBind(&req); err != nil {
		common.BindError(c, err)
		return
	}
	files, err := imageFiles(c)
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	content, err := h.service.UpdateContent(c.Request.Context(), middleware.GetUserEmail(c), contentID, &req, files)
	if err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, content)
}

// DeleteContent handles DELETE /contents/:content_id
// @Summary 게시물 삭제
// @Tags contents
// @Produce json
// @Param content_id path int true "게시물 ID"
// @Success 200 {object} common.Result
// @Failure 403 {object} common.Result
// @Router /contents/{content_id} [delete]
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	contentID, err := ginutil.ParamInt64(c, "content_id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	if err := h.service.DeleteContent(c.Request.Context(), middleware.GetUserEmail(c), contentID); err != nil {
		common.Error(c, err)
		return
	}

	common.Success(c, nil)
}

// ListGroupContents handles GET /groups/:group_id/contents
// @Summary 그룹 게시물 목록
// @Tags contents
// @Produce json
// @Param group_id path int true "그룹 ID"
// @Param page query int false "페이지 (기본 1)"
// @Success 200 {object} common.Result{data=common.Page}
// @Failure 404 {object} common.Result
// @Router /groups/{group_id}/contents [get]
func (h *ContentHandler) ListGroupContents(c *gin.Context) {
	groupID, err := ginutil.ParamInt64(c, "group_id")
	if err != nil {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	views, meta, err := h.service.ListGroupContents(c.Request.Context(), middleware.GetUserEmail(c), groupID, ginutil.QueryInt(c, "page", 1))
	if err != nil {
		common.Error(c, err)
		return
	}

	common.SuccessWithPage(c, views, meta)
}

// ListContents handles GET /contents?group_id=1&group_id=2
// @Summary 여러 그룹 게시물 목록
// @Tags contents
// @Produce json
// @Param group_id query []int true "그룹 ID" collectionFormat(multi)
// @Param page query int false "페이지 (기본 1)"
// @Success 200 {object} common.Result{data=common.Page}
// @Failure 404 {object} common.Result
// @Router /contents [get]
func (h *ContentHandler) ListContents(c *gin.Context) {
	groupIDs, err := ginutil.QueryInt64s(c, "group_id")
	if err != nil || len(groupIDs) == 0 {
		common.Fail(c, common.ResultInvalidInput)
		return
	}

	views, meta, err := h.service.ListGroupsContents(c.Request.Context(), middleware.GetUserEmail(c), groupIDs, ginutil.QueryInt(c, "page", 1))
	if err != nil {
		common.Error(c, err)
		return
	}

	common.SuccessWithPage(c, views, meta)
}
