package ginutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestQueryInt(t *testing.T) {
	assert.Equal(t, 3, QueryInt(testContext("/?page=3"), "page", 1))
	assert.Equal(t, 1, QueryInt(testContext("/?page=x"), "page", 1))
	assert.Equal(t, 1, QueryInt(testContext("/"), "page", 1))
}

func TestQueryInt64s(t *testing.T) {
	ids, err := QueryInt64s(testContext("/?group_id=1&group_id=2,3"), "group_id")
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	ids, err = QueryInt64s(testContext("/"), "group_id")
	assert.NoError(t, err)
	assert.Empty(t, ids)

	_, err = QueryInt64s(testContext("/?group_id=a"), "group_id")
	assert.Error(t, err)
}

func TestParamInt64(t *testing.T) {
	c := testContext("/")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	v, err := ParamInt64(c, "id")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v)

	c.Params = gin.Params{{Key: "id", Value: "x"}}
	_, err = ParamInt64(c, "id")
	assert.Error(t, err)
}
