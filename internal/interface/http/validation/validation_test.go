package validation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookhub/pkg/errors"
	"github.com/xiebiao/bookhub/pkg/idcodec"
)

type sampleRequest struct {
	Title    string       `json:"title" binding:"required,min=3,max=255"`
	AuthorID idcodec.ID   `json:"authorId" binding:"required,min=1"`
	GenreIDs []idcodec.ID `json:"genreIds" binding:"omitempty,dive,min=1"`
	Cover    *string      `json:"coverImage" binding:"omitnil,url"`
	Lines    []string     `json:"paragraphs" binding:"omitempty,min=1,dive,min=10"`
}

func bind(t *testing.T, body string) *apperrors.AppError {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Register()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req sampleRequest
	err := c.ShouldBindJSON(&req)
	require.Error(t, err)
	return FromBindError(err)
}

func fieldNames(appErr *apperrors.AppError) []string {
	names := make([]string, len(appErr.Fields))
	for i, f := range appErr.Fields {
		names[i] = f.Field
	}
	return names
}

func TestFromBindError(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantCode   int
		wantFields []string
	}{
		{
			name:       "缺少必填字段",
			body:       `{}`,
			wantCode:   apperrors.ErrCodeInvalidParams,
			wantFields: []string{"title", "authorId"},
		},
		{
			name:       "长度和URL",
			body:       `{"title":"ab","authorId":"1","coverImage":"not a url"}`,
			wantCode:   apperrors.ErrCodeInvalidParams,
			wantFields: []string{"title", "coverImage"},
		},
		{
			name:       "数组元素",
			body:       `{"title":"Dune","authorId":1,"genreIds":["1","0"],"paragraphs":["too short"]}`,
			wantCode:   apperrors.ErrCodeInvalidParams,
			wantFields: []string{"genreIds[1]", "paragraphs[0]"},
		},
		{
			name:       "JSON语法错误",
			body:       `{"title":`,
			wantCode:   apperrors.ErrCodeInvalidParams,
			wantFields: []string{"body"},
		},
		{
			name:       "字段类型错误",
			body:       `{"title":123,"authorId":"1"}`,
			wantCode:   apperrors.ErrCodeInvalidParams,
			wantFields: []string{"title"},
		},
		{
			name:     "ID格式错误",
			body:     `{"title":"Dune","authorId":"-1"}`,
			wantCode: apperrors.ErrCodeInvalidIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := bind(t, tt.body)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus())
			if tt.wantFields != nil {
				assert.Equal(t, tt.wantFields, fieldNames(appErr))
			}
			for _, f := range appErr.Fields {
				assert.NotEmpty(t, f.Message)
			}
		})
	}
}

func TestInvalidIdentifier(t *testing.T) {
	appErr := InvalidIdentifier("bookId")
	assert.Equal(t, apperrors.ErrCodeInvalidIdentifier, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus())
	assert.Equal(t, []string{"bookId"}, fieldNames(appErr))
}
