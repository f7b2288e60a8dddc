package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
}

func TestCorrelationID(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "generates an ID when none is sent", header: ""},
		{name: "keeps the caller's ID", header: "corr-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromGin, fromCtx string
			router := gin.New()
			router.Use(CorrelationID())
			router.GET("/test", func(c *gin.Context) {
				fromGin = GetCorrelationID(c)
				fromCtx = CorrelationIDFromContext(c.Request.Context())
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set(constants.CorrelationIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.NotEmpty(t, fromGin)
			assert.Equal(t, fromGin, fromCtx)
			assert.Equal(t, fromGin, w.Header().Get(constants.CorrelationIDHeader))
			if tt.header != "" {
				assert.Equal(t, tt.header, fromGin)
			}
		})
	}
}

func TestRequireUserID(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID int64
	}{
		{name: "valid", header: "42", wantStatus: http.StatusOK, wantUserID: 42},
		{name: "surrounding whitespace", header: " 7 ", wantStatus: http.StatusOK, wantUserID: 7},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not a number", header: "abc", wantStatus: http.StatusUnauthorized},
		{name: "zero", header: "0", wantStatus: http.StatusUnauthorized},
		{name: "negative", header: "-3", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got int64
			router := gin.New()
			router.Use(RequireUserID())
			router.GET("/test", func(c *gin.Context) {
				got, _ = UserID(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set(constants.UserIDHeader, tt.header)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantUserID, got)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), constants.MissingUserID)
			}
		})
	}
}

func TestUserID_NotSet(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := UserID(c)
	assert.False(t, ok)
}

func serveN(router *gin.Engine, userID string, n int) int {
	code := 0
	for i := 0; i < n; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(constants.UserIDHeader, userID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		code = w.Code
	}
	return code
}

func TestRateLimiter(t *testing.T) {
	newRouter := func(rl *RateLimiter) *gin.Engine {
		router := gin.New()
		router.Use(rl.Middleware())
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	t.Run("allows requests within the burst", func(t *testing.T) {
		router := newRouter(NewRateLimiter(1, 5))
		assert.Equal(t, http.StatusOK, serveN(router, "1", 5))
	})

	t.Run("rejects requests over the burst", func(t *testing.T) {
		router := newRouter(NewRateLimiter(1, 2))
		assert.Equal(t, http.StatusTooManyRequests, serveN(router, "2", 3))
	})

	t.Run("users have separate buckets", func(t *testing.T) {
		router := newRouter(NewRateLimiter(1, 1))
		assert.Equal(t, http.StatusOK, serveN(router, "3", 1))
		assert.Equal(t, http.StatusOK, serveN(router, "4", 1))
		assert.Equal(t, http.StatusTooManyRequests, serveN(router, "3", 1))
	})
}

func TestRateLimiter_Prune(t *testing.T) {
	now := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.limiter("user:1")
	now = now.Add(5 * time.Minute)
	rl.limiter("user:2")
	now = now.Add(6 * time.Minute)

	assert.Equal(t, 1, rl.Prune())
	_, kept := rl.limiters.Load("user:2")
	assert.True(t, kept)
	_, dropped := rl.limiters.Load("user:1")
	assert.False(t, dropped)
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	defer func() { logger.Log = previous }()

	router := gin.New()
	router.Use(CorrelationID(), RequireUserID(), RequestLogging())
	router.GET("/tax-returns/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/tax-returns/9", "/boom"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(constants.UserIDHeader, "42")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	entries := logs.All()
	require.Len(t, entries, 2)

	ok := entries[0].ContextMap()
	assert.Equal(t, "Request completed", entries[0].Message)
	assert.Equal(t, "/tax-returns/:id", ok["path"])
	assert.Equal(t, int64(42), ok["user_id"])
	assert.NotEmpty(t, ok["correlation_id"])

	assert.Equal(t, "Request failed", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
