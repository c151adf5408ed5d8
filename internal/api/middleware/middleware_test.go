package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/api/shared"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddlewareSetsTraceIDAndLogger(t *testing.T) {
	t.Parallel()
	log, logBuf := logger.GetTestLogger(t)

	var traceID string
	handler := NewTraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContextOrDefault(r.Context(), nil).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, traceID, 32)
	logger.AssertLogContains(t, logBuf, "request started")
	logger.AssertLogContains(t, logBuf, traceID)
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	limited := NewRateLimitMiddleware(0.001, 2)(ok)
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	unlimited := NewRateLimitMiddleware(0, 0)(ok)
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		unlimited.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
