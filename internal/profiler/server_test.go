package profiler

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, routes ...Route) *Server {
	t.Helper()

	server := New(0, routes...)
	require.NoError(t, server.Start(context.Background()), "Start() error")
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	})
	return server
}

func TestServer_StartAndShutdown(t *testing.T) {
	server := New(0)

	require.NoError(t, server.Start(context.Background()), "Start() error")
	assert.Contains(t, server.Addr(), "127.0.0.1:")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, server.Shutdown(shutdownCtx), "Shutdown() error")
}

func TestServer_Endpoints(t *testing.T) {
	extra := Route{
		Pattern: "/metrics",
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "passport_visited_countries 1\n")
		}),
	}
	server := startServer(t, extra)
	baseURL := "http://" + server.Addr()

	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{name: "index", endpoint: "/debug/pprof/"},
		{name: "cmdline", endpoint: "/debug/pprof/cmdline"},
		{name: "symbol", endpoint: "/debug/pprof/symbol"},
		{name: "extra route", endpoint: "/metrics", want: "passport_visited_countries 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(baseURL + tt.endpoint)
			require.NoError(t, err, "GET %s error", tt.endpoint)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusOK, resp.StatusCode, "GET %s", tt.endpoint)
			if tt.want != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Contains(t, string(body), tt.want)
			}
		})
	}
}
