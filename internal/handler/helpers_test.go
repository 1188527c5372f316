package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"workhours/internal/accounting"
	"workhours/internal/config"
	"workhours/internal/domain"
	"workhours/internal/handler"
	"workhours/internal/repository/sqlite"
	"workhours/internal/services"
	"workhours/internal/session"
	"workhours/internal/validation"
)

// Monday 19 October 2026, 14:00 UTC.
var testNow = time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)

type testServer struct {
	*httptest.Server
	clock    *accounting.FixedClock
	services *services.ServiceContainer
	client   *http.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, nil)
}

// newTestServerWith lets a test wrap the SQLite store, e.g. to inject failures.
func newTestServerWith(t *testing.T, wrap func(domain.Store) domain.Store) *testServer {
	t.Helper()
	ctx := context.Background()

	clock := &accounting.FixedClock{Time: testNow}
	sqliteStore, err := sqlite.Open(ctx, ":memory:", sqlite.Options{Now: clock.Now})
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	var store domain.Store = sqliteStore
	if wrap != nil {
		store = wrap(sqliteStore)
	}

	sessions, err := session.NewMemoryStore(100, clock.Now)
	require.NoError(t, err)

	cfg := config.NewConfig()
	cfg.Auth.JWTSecret = "test-secret-test-secret-test-secret"
	cfg.Auth.BcryptCost = 4

	svc := services.NewServiceContainer(cfg, store, sessions, clock, zerolog.Nop())
	h := handler.New(handler.Options{
		Services:  svc,
		Store:     store,
		Limiter:   services.NewTokenBucket(0, 3, clock.Now),
		Logger:    zerolog.Nop(),
		TimerTick: 10 * time.Millisecond,
	})

	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testServer{
		Server:   srv,
		clock:    clock,
		services: svc,
		client:   &http.Client{Jar: jar},
	}
}

func (s *testServer) createUser(t *testing.T, username string, role domain.Role) *domain.Profile {
	t.Helper()
	p, err := s.services.Auth.CreateUser(context.Background(), &validation.Registration{
		Username:        username,
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}, role)
	require.NoError(t, err)
	return p
}

// login signs in through the API so the client's jar holds the cookie.
func (s *testServer) login(t *testing.T, username string) {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": "secret123",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func (s *testServer) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.client.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
