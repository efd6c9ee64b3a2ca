package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"campustasks/internal/core/domain"
)

func TestGinZapMiddleware_LogsAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := gin.New()
	router.Use(GinZapMiddleware(zap.New(core)))
	router.GET("/api/tasks", func(c *gin.Context) {
		c.Set(userContextKey, domain.User{ID: 42})
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, uint64(42), fields["user_id"])
	require.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestGinZapMiddleware_OmitsUserWhenUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := gin.New()
	router.Use(GinZapMiddleware(zap.New(core)))
	router.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.NotContains(t, entries[0].ContextMap(), "user_id")
}
