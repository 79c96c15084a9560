package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerRecordsRouteAndStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	r := chi.NewRouter()
	r.Use(InjectLogger(logger))
	r.Use(RequestLogger())
	r.Get("/blog/{slug}", func(w http.ResponseWriter, r *http.Request) {
		FromContext(r.Context()).Info("rendering post")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/blog/unknown", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	require.Equal(t, "rendering post", entries[0].Message)
	require.Equal(t, "/blog/unknown", entries[0].ContextMap()["path"])

	done := entries[1]
	require.Equal(t, "request completed", done.Message)
	require.Equal(t, zapcore.WarnLevel, done.Level)
	fields := done.ContextMap()
	require.Equal(t, "/blog/{slug}", fields["route"])
	require.EqualValues(t, http.StatusNotFound, fields["status"])
	require.EqualValues(t, 7, fields["bytes"])
}

func TestRecoveryRendersFallback(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	handler := Recovery(logger, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("something broke"))
	})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("template exploded")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "something broke", rr.Body.String())
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}
