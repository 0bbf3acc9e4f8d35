package common

import (
	"errors"
	"net/http"
	"strings"

	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/i18n"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/logger"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Result standard API response envelope
type Result struct {
	Code    ResultCode  `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageMeta pagination metadata of list payloads
type PageMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// Page list payload with pagination
type Page struct {
	Items interface{} `json:"items"`
	Meta  *PageMeta   `json:"meta"`
}

// NewPageMeta creates PageMeta with computed total_pages
func NewPageMeta(page, perPage int, total int64) *PageMeta {
	totalPages := total / int64(perPage)
	if total%int64(perPage) > 0 {
		totalPages++
	}
	return &PageMeta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Success returns a 200 OK envelope
func Success(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, ResultOK, data)
}

// Created returns a 201 Created envelope
func Created(c *gin.Context, data interface{}) {
	write(c, http.StatusCreated, ResultOK, data)
}

// SuccessWithPage returns a 200 OK envelope with a paginated payload
func SuccessWithPage(c *gin.Context, items interface{}, meta *PageMeta) {
	write(c, http.StatusOK, ResultOK, Page{Items: items, Meta: meta})
}

// Fail writes the envelope of code with a null payload
func Fail(c *gin.Context, code ResultCode) {
	write(c, code.HTTPStatus(), code, nil)
}

// Error maps err onto its result code and writes the envelope
func Error(c *gin.Context, err error) {
	code := ResultFromError(err)
	status := code.HTTPStatus()
	if errors.Is(err, storage.ErrInvalidFileExtension) {
		status = http.StatusBadRequest
	}

	if code == ResultFail {
		logger.GetLogger().Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("unhandled error")
	}

	write(c, status, code, nil)
}

// BindError answers a request binding failure with INVALID_INPUT, listing the failing fields
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		c.JSON(http.StatusBadRequest, Result{
			Code:    ResultInvalidInput,
			Message: ResultInvalidInput.LocalizedMessage(locale(c)) + ": " + strings.Join(fields, ", "),
		})
		return
	}
	write(c, http.StatusBadRequest, ResultInvalidInput, nil)
}

func write(c *gin.Context, status int, code ResultCode, data interface{}) {
	c.JSON(status, Result{
		Code:    code,
		Message: code.LocalizedMessage(locale(c)),
		Data:    data,
	})
}

func locale(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(i18n.ContextKey); ok {
		if l, ok := v.(i18n.Locale); ok {
			return l
		}
	}
	return i18n.LocaleKo
}
