package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/xiebiao/bookhub/pkg/errors"
	"github.com/xiebiao/bookhub/pkg/jwt"
	"github.com/xiebiao/bookhub/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestViewerID(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	auth := NewAuthMiddleware(manager)
	token, err := manager.GenerateToken(7)
	require.NoError(t, err)

	tests := []struct {
		name     string
		query    string
		header   string
		wantID   int64
		wantCode int
	}{
		{name: "匿名", wantID: 0},
		{name: "查询参数", query: "?userId=3", wantID: 3},
		{name: "Token优先", query: "?userId=3", header: "Bearer " + token, wantID: 7},
		{name: "无效Token回退到查询参数", query: "?userId=3", header: "Bearer broken", wantID: 3},
		{name: "非Bearer格式忽略", header: "Basic " + token, wantID: 0},
		{name: "查询参数格式错误", query: "?userId=abc", wantCode: apperrors.ErrCodeInvalidIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			var gotErr error

			r := gin.New()
			r.GET("/", auth.OptionalAuth(), func(c *gin.Context) {
				gotID, gotErr = ViewerID(c)
			})

			req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantCode != 0 {
				require.Error(t, gotErr)
				assert.Equal(t, tt.wantCode, apperrors.GetAppError(gotErr).Code)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.wantID, gotID)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	t.Run("沿用上游请求ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("X-Request-ID", "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	})

	t.Run("生成请求ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Len(t, w.Header().Get("X-Request-ID"), 36)
		logs.TakeAll()
	})

	t.Run("5xx记录为ERROR", func(t *testing.T) {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.EqualValues(t, http.StatusInternalServerError, entries[0].ContextMap()["status"])
	})
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		origin      string
		wantAllow   string
		wantCredent string
	}{
		{name: "白名单来源", origins: []string{"http://localhost:5173"}, origin: "http://localhost:5173", wantAllow: "http://localhost:5173", wantCredent: "true"},
		{name: "不在白名单", origins: []string{"http://localhost:5173"}, origin: "http://evil.example", wantAllow: ""},
		{name: "通配", origins: []string{"*"}, origin: "http://any.example", wantAllow: "*"},
		{name: "未配置", origin: "http://any.example", wantAllow: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORS(tt.origins))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantAllow, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredent, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestMetrics(t *testing.T) {
	metrics.InitMetrics()

	r := gin.New()
	r.Use(Metrics())
	r.GET("/api/v1/books/:bookId", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/books/:bookId", "200")
	before := testutil.ToFloat64(counter)
	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	beforeUnmatched := testutil.ToFloat64(unmatched)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/books/1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/books/2", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	// ID不进入标签,两次请求落在同一个时间序列
	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
}
