package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/audit_dashboard/internal/platform/metrics"
	"github.com/SscSPs/audit_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStructuredLoggingMiddleware_InjectsRequestScope(t *testing.T) {
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(discardLogger()))

	var requestID string
	var hasLogger bool
	r.GET("/ping", func(c *gin.Context) {
		requestID, _ = GetRequestIDFromCtx(c.Request.Context())
		hasLogger = GetLoggerFromCtx(c.Request.Context()) != slog.Default()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, requestID, w.Header().Get("X-Request-ID"))
	assert.True(t, hasLogger)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(context.Background()))
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(nil))
}

func TestGetOperatorID(t *testing.T) {
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(discardLogger()))

	var operator string
	r.GET("/who", func(c *gin.Context) {
		operator, _ = GetOperatorID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set(OperatorHeader, "auditor-7")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "auditor-7", operator)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/who", nil))
	assert.Equal(t, w.Header().Get("X-Request-ID"), operator)
}

func TestMetricsMiddleware_RecordsRoute(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	r := gin.New()
	r.Use(MetricsMiddleware(m))
	r.GET("/audits/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/audits/x", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/audits/:id", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestPosthogMiddleware_InertClientPassesThrough(t *testing.T) {
	client := utils.InitializePosthogClient("", "", discardLogger())
	require.False(t, client.IsInitialized())

	r := gin.New()
	r.Use(StructuredLoggingMiddleware(discardLogger()), PosthogMiddleware(client))
	r.GET("/audits", func(c *gin.Context) {
		PosthogEvent(c, client, "audits_listed", nil)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audits", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{name: "wildcard", allowed: nil, origin: "http://anything.test", want: "*"},
		{name: "listed origin", allowed: []string{"http://dash.test"}, origin: "http://dash.test", want: "http://dash.test"},
		{name: "unlisted origin", allowed: []string{"http://dash.test"}, origin: "http://evil.test", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORS(tt.allowed))
			r.GET("/audits", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/audits", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNewMemoryLimiter_InvalidRate(t *testing.T) {
	_, err := NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestRateLimit(t *testing.T) {
	lim, err := NewMemoryLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(RateLimit(lim))
	r.POST("/intake/submit", func(c *gin.Context) { c.Status(http.StatusCreated) })

	codes := make([]int, 0, 3)
	for n := 0; n < 3; n++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/intake/submit", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}
