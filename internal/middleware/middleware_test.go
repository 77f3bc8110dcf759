package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(handlers...)
	router.GET(
		"/",
		func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString(KeyRequestID))
		},
	)

	return router
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(RequestID())

	t.Run(
		"1. assigned",
		func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, http.StatusOK, w.Code)
			require.NotEmpty(t, w.Header().Get(HeaderRequestID))
			require.Equal(t, w.Header().Get(HeaderRequestID), w.Body.String())
		},
	)

	t.Run(
		"2. propagated",
		func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(HeaderRequestID, "abc-123")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
			require.Equal(t, "abc-123", w.Body.String())
		},
	)
}

func TestRateLimit(t *testing.T) {
	router := newTestRouter(RequestID(), RateLimit(2, zap.NewNop()))

	codes := make([]int, 0, 3)

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		codes = append(codes, w.Code)
	}

	require.Equal(t,
		[]int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
		codes,
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "other client has its own bucket")
}

func TestRateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	router := newTestRouter(RequestID(), RateLimit(2, zap.NewNop()))

	codes := make([]int, 0, 5)

	for i := range 5 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("1.2.3.%d", i))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		codes = append(codes, w.Code)
	}

	require.Equal(t,
		[]int{
			http.StatusOK,
			http.StatusOK,
			http.StatusTooManyRequests,
			http.StatusTooManyRequests,
			http.StatusTooManyRequests,
		},
		codes,
	)
}

func TestRateLimiterStoreEviction(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	store := newRateLimiterStore(
		2,
		func() time.Time { return now },
	)

	first := store.getLimiter("10.0.0.1")
	store.getLimiter("10.0.0.2")
	require.Len(t, store.limiters, 2)

	require.Same(t, first, store.getLimiter("10.0.0.1"), "same client reuses its limiter")

	now = now.Add(_LimiterIdleTTL / 2)
	store.getLimiter("10.0.0.1")

	now = now.Add(_LimiterIdleTTL * 3 / 4)
	store.getLimiter("10.0.0.3")

	require.Len(t, store.limiters, 2, "idle client evicted")
	require.Contains(t, store.limiters, "10.0.0.1")
	require.Contains(t, store.limiters, "10.0.0.3")
	require.NotContains(t, store.limiters, "10.0.0.2")
}
