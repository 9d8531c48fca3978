package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrms-http-service/config"
	"hrms-http-service/models"
	"hrms-http-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketAllow(t *testing.T) {
	tb := NewTokenBucket(1, 3)

	// The bucket starts full
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}

func TestTokenBucketRefills(t *testing.T) {
	tb := NewTokenBucket(100, 1)

	require.True(t, tb.Allow())
	require.False(t, tb.Allow())

	// At 100 tokens/s a short sleep is enough to earn one back
	time.Sleep(20 * time.Millisecond)
	assert.True(t, tb.Allow())
}

func TestRateLimitByIPBlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/limited", RateLimitByIP(0.001, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestExtractToken(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", extractToken("Bearer abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", extractToken("abc.def.ghi"))
	assert.Equal(t, "", extractToken(""))
}

func issueTestToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	admin := &models.Admin{Username: "admin"}
	admin.ID = 1
	token, err := services.NewJWTService(cfg).GenerateToken(admin)
	require.NoError(t, err)
	return token
}

func TestAuthenticateAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecretKey: "middleware-test-secret"}
	InitAuthMiddleware(cfg, nil)

	r := gin.New()
	r.GET("/protected", AuthenticateAdmin(), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issueTestToken(t, cfg))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestIsAuthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecretKey: "middleware-test-secret"}
	InitAuthMiddleware(cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	assert.False(t, IsAuthenticated(c))

	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, cfg))
	assert.True(t, IsAuthenticated(c))
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("client value echoed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "trace-1234")
		r.ServeHTTP(w, req)
		assert.Equal(t, "trace-1234", w.Header().Get(RequestIDHeader))
	})
}
