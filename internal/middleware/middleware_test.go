package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/i18n"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	_, r := gin.CreateTestContext(httptest.NewRecorder())
	r.Use(I18n(), JWTAuth(manager))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetUserEmail(c), "nickname": GetNickname(c)})
	})
	return r
}

func TestJWTAuth_Allowed(t *testing.T) {
	manager := jwt.NewManager("secret", 60, 120)
	token, err := manager.GenerateAccessToken("a@diary.com", "alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newAuthRouter(manager).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"a@diary.com","nickname":"alice"}`, w.Body.String())
}

func TestJWTAuth_Rejected(t *testing.T) {
	manager := jwt.NewManager("secret", 60, 120)
	foreign, err := jwt.NewManager("other", 60, 120).GenerateAccessToken("a@diary.com", "alice")
	require.NoError(t, err)
	expired, err := jwt.NewManager("secret", -60, 120).GenerateAccessToken("a@diary.com", "alice")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage", "Bearer abc.def.ghi"},
		{"wrong secret", "Bearer " + foreign},
		{"expired", "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			newAuthRouter(manager).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var body common.Result
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, common.ResultUnauthorized, body.Code)
			assert.Nil(t, body.Data)
		})
	}
}

func TestI18n_SetsLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, r := gin.CreateTestContext(httptest.NewRecorder())
	r.Use(I18n())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, string(GetLocale(c)))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	r.ServeHTTP(w, req)

	assert.Equal(t, string(i18n.LocaleEn), w.Body.String())
	assert.Equal(t, "en", w.Header().Get("Content-Language"))
}

func TestGetLocale_DefaultsToKorean(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, i18n.LocaleKo, GetLocale(c))
}

func TestRequestLogger_PropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, r := gin.CreateTestContext(httptest.NewRecorder())
	r.Use(RequestLogger(), Metrics())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc123", w.Body.String())
	assert.Equal(t, "abc123", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, req)
	assert.Len(t, w.Body.String(), 8)
}
