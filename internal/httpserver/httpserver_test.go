package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-analyzer/internal/middleware"
	"smart-task-analyzer/pkg/response"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubAnalyzerHandler struct{}

func (stubAnalyzerHandler) Analyze(c *gin.Context)  { c.Status(http.StatusOK) }
func (stubAnalyzerHandler) Describe(c *gin.Context) { c.Status(http.StatusOK) }

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := noopLogger{}

	srv, err := New(l, Config{
		Logger:          l,
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     "development",
		Middleware:      middleware.New(l, middleware.Config{}),
		AnalyzerHandler: stubAnalyzerHandler{},
	})
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())
	return srv
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)
			srv.gin.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var resp response.Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			data, ok := resp.Data.(map[string]interface{})
			require.True(t, ok)

			assert.Equal(t, ServiceName, data["service"])
			assert.Equal(t, HealthVersion, data["version"])

			ts, ok := data["timestamp"].(string)
			require.True(t, ok, "timestamp must be present")
			_, err := time.ParseInLocation(response.DateTimeFormat, ts, time.Local)
			assert.NoError(t, err, "timestamp %q must use the envelope layout", ts)
		})
	}
}

func TestDomainRoutesRegistered(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/analyze", nil)
	srv.gin.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
