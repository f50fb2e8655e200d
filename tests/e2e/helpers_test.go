//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/phonics-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/phonics-backend/internal/app"
	authpkg "github.com/heartmarshall/phonics-backend/internal/auth"
	"github.com/heartmarshall/phonics-backend/internal/config"
)

const (
	jwtSecret = "test-secret-at-least-32-chars-long!!"
	jwtIssuer = "test-issuer"
)

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
	srv    *app.Server
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer assembles the whole application against the shared test
// database and serves it on an httptest listener.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	yaml := fmt.Sprintf(`log:
  level: debug
database:
  dsn: %q
usage:
  flush_interval: 50ms
auth:
  jwt_secret: %q
  jwt_issuer: %q
`, testhelper.DSN(), jwtSecret, jwtIssuer)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	srv, err := app.Build(context.Background(), cfg, logger)
	require.NoError(t, err)

	hs := httptest.NewServer(srv.Handler)
	t.Cleanup(func() {
		hs.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Drain(ctx) //nolint:errcheck
		srv.Close()
	})

	return &testServer{
		URL:    hs.URL,
		Client: hs.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(jwtSecret, jwtIssuer, 15*time.Minute),
		srv:    srv,
	}
}

func (ts *testServer) token(t *testing.T, subject, role string) string {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(subject, role)
	require.NoError(t, err)
	return tok
}

// do sends a request with an optional JSON body and bearer token and decodes
// the JSON response.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func truncateUsage(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), "TRUNCATE usage_events")
	require.NoError(t, err)
}
