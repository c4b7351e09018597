package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, w := newContext()
	Success(c, []string{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":0,"message":"success","data":[]}`, w.Body.String())

	c, w = newContext()
	Created(c, map[string]string{"id": "1"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestError(t *testing.T) {
	t.Run("NotFound返回404", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		c, w := newContext()
		Error(c, apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decode(t, w)
		assert.Equal(t, apperrors.ErrCodeBookNotFound, resp.Code)
		assert.Empty(t, resp.Detail)
	})

	t.Run("参数错误带字段明细", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		c, w := newContext()
		Error(c, apperrors.Validation(apperrors.FieldError{Field: "title", Message: "必填"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "title", resp.Errors[0].Field)
	})

	t.Run("非debug模式不泄露内部错误", func(t *testing.T) {
		gin.SetMode(gin.ReleaseMode)
		defer gin.SetMode(gin.TestMode)

		c, w := newContext()
		Error(c, errors.New("dial tcp 10.0.0.1:3306: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode(t, w)
		assert.Equal(t, apperrors.ErrCodeInternal, resp.Code)
		assert.Empty(t, resp.Detail)
		assert.NotContains(t, w.Body.String(), "10.0.0.1")
	})

	t.Run("debug模式返回内部错误", func(t *testing.T) {
		gin.SetMode(gin.DebugMode)
		defer gin.SetMode(gin.TestMode)

		c, w := newContext()
		Error(c, apperrors.Wrap(errors.New("deadlock found"), "更新失败"))

		resp := decode(t, w)
		assert.Equal(t, "deadlock found", resp.Detail)
	})
}
