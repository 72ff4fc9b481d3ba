package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationServesProbes(t *testing.T) {
	application, err := New(Config{
		DatabaseFile:        ":memory:",
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
		AssignMaxAttempts:   100,
		TraceExporter:       TraceExporterNone,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	require.Equal(t, 100, application.generator.MaxAttempts())

	for _, path := range []string{"/livez", "/readyz", "/v1/exchanges"} {
		rec := httptest.NewRecorder()
		application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestNewShutsDownTracingWhenDatabaseFails(t *testing.T) {
	var shutdowns int
	setupTracing = func(context.Context, Config) (func(context.Context) error, error) {
		return func(context.Context) error {
			shutdowns++
			return nil
		}, nil
	}
	t.Cleanup(func() { setupTracing = initTracing })

	_, err := New(Config{
		DatabaseFile:        filepath.Join(t.TempDir(), "missing", "giftexchange.db"),
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		ShutdownGracePeriod: time.Second,
		TraceExporter:       TraceExporterStdout,
	})
	require.Error(t, err)
	require.Equal(t, 1, shutdowns)
}
