package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/i18n"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestResultFromError(t *testing.T) {
	tests := []struct {
		err  error
		want ResultCode
	}{
		{nil, ResultOK},
		{ErrGroupNotFound, ResultNotFoundGroup},
		{fmt.Errorf("find content 3: %w", ErrContentNotFound), ResultNotFoundContent},
		{ErrContentNotMatched, ResultNotMatchedUserContent},
		{ErrGroupNameTooShort, ResultLowMinGroupNameLength},
		{ErrGroupNameTooLong, ResultHighMaxGroupNameLength},
		{ErrNoJoinedGroups, ResultNoUserGroupList},
		{storage.ErrInvalidFileExtension, ResultFailImageUpload},
		{ErrCommentNotMatched, ResultNotMatchedUserComment},
		{errors.New("boom"), ResultFail},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResultFromError(tt.err), "%v", tt.err)
	}
}

func TestSuccess(t *testing.T) {
	c, w := newContext()
	Success(c, gin.H{"id": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, 0, env.Code)
	assert.Equal(t, "성공", env.Message)
	assert.JSONEq(t, `{"id":1}`, string(env.Data))
}

func TestError_NotFoundHasNullPayload(t *testing.T) {
	c, w := newContext()
	Error(c, ErrContentNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w)
	assert.Equal(t, 2200, env.Code)
	assert.Equal(t, "null", string(env.Data))
}

func TestError_BadExtensionIs400(t *testing.T) {
	c, w := newContext()
	Error(c, fmt.Errorf("upload: %w", storage.ErrInvalidFileExtension))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 2000, decode(t, w).Code)
}

func TestError_UnknownIsFail(t *testing.T) {
	c, w := newContext()
	Error(c, errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, -1, decode(t, w).Code)
}

func TestError_Localized(t *testing.T) {
	c, w := newContext()
	c.Set(i18n.ContextKey, i18n.LocaleEn)
	Error(c, ErrGroupNotFound)

	assert.Equal(t, "Group not found", decode(t, w).Message)
}

func TestBindError_ValidationFields(t *testing.T) {
	type req struct {
		Name string `json:"name" binding:"required"`
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
	c.Request.Header.Set("Content-Type", "application/json")

	var r req
	err := c.ShouldBindJSON(&r)
	require.Error(t, err)
	BindError(c, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	assert.Equal(t, 1000, env.Code)
	assert.Contains(t, env.Message, "Name")
	assert.Equal(t, "null", string(env.Data))
}

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(2, 10, 21)
	assert.Equal(t, int64(3), meta.TotalPages)
	assert.Equal(t, int64(0), NewPageMeta(1, 10, 0).TotalPages)
}

func TestUnknownCodeMessage(t *testing.T) {
	assert.Equal(t, ResultFail.Message(), ResultCode(9999).Message())
}
