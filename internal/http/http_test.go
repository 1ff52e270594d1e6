package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/securenotes/internal/auth/domain"
	"github.com/allisson/securenotes/internal/config"
	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
	cryptoService "github.com/allisson/securenotes/internal/crypto/service"
	databaseMocks "github.com/allisson/securenotes/internal/database/mocks"
	"github.com/allisson/securenotes/internal/metrics"
	notesDomain "github.com/allisson/securenotes/internal/notes/domain"
	notesHTTP "github.com/allisson/securenotes/internal/notes/http"
	notesUseCase "github.com/allisson/securenotes/internal/notes/usecase"
	notesUseCaseMocks "github.com/allisson/securenotes/internal/notes/usecase/mocks"
)

const testToken = "s3cr3t-token"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:                "info",
		SecurityToken:           testToken,
		SecurityProtectedPrefix: "/notes",
		RateLimitEnabled:        false,
		MetricsNamespace:        "test_app",
	}
}

type routerFixture struct {
	server *Server
	repo   *notesUseCaseMocks.MockNoteRepository
	tx     *databaseMocks.MockTxManager
}

// newRouterFixture wires the full router with a real engine and use case over a
// mock repository.
func newRouterFixture(t *testing.T, db *sql.DB, cfg *config.Config) *routerFixture {
	t.Helper()

	key, err := cryptoDomain.GenerateKey(cryptoDomain.KeySize256)
	require.NoError(t, err)
	defer key.Close()
	engine, err := cryptoService.NewEngine(key, cryptoDomain.AESGCM, cryptoService.NewAEADManager())
	require.NoError(t, err)

	gate, err := authDomain.NewGate(cfg.SecurityProtectedPrefix, cfg.SecurityToken)
	require.NoError(t, err)

	repo := notesUseCaseMocks.NewMockNoteRepository(t)
	tx := databaseMocks.NewMockTxManager(t)
	uc := notesUseCase.NewNoteUseCase(tx, repo, engine)
	handler := notesHTTP.NewNoteHandler(uc, discardLogger())

	server := NewServer(db, "localhost", 0, discardLogger())
	server.SetupRouter(t.Context(), cfg, gate, handler, nil)

	return &routerFixture{server: server, repo: repo, tx: tx}
}

func serve(handler http.Handler, method, path, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	server := NewServer(nil, "localhost", 8080, discardLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Run("nil db", func(t *testing.T) {
		server := NewServer(nil, "localhost", 8080, discardLogger())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)
		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"not_ready","components":{"database":"error"}}`, w.Body.String())
	})

	t.Run("ping ok", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		mock.ExpectPing()

		server := NewServer(db, "localhost", 8080, discardLogger())
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)
		server.readinessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready","components":{"database":"ok"}}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ping fails", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		server := NewServer(db, "localhost", 8080, discardLogger())
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)
		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRouter_GateRejectsBeforeLifecycle(t *testing.T) {
	f := newRouterFixture(t, nil, testConfig())
	handler := f.server.GetHandler()

	requests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/notes", `{"title":"T","content":"C"}`},
		{http.MethodGet, "/notes", ""},
		{http.MethodGet, "/notes/1", ""},
		{http.MethodPut, "/notes/1", `{"title":"T","content":"C"}`},
		{http.MethodDelete, "/notes/1", ""},
		{http.MethodGet, "/notes/1/unknown", ""},
	}

	for _, auth := range []string{"", "wrong-token", testToken + " "} {
		for _, r := range requests {
			w := serve(handler, r.method, r.path, auth, r.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s with %q", r.method, r.path, auth)
			assert.JSONEq(
				t,
				`{"error":"unauthorized","message":"Authentication is required"}`,
				w.Body.String(),
			)
		}
	}

	f.repo.AssertNotCalled(t, "Create")
	f.repo.AssertNotCalled(t, "Get")
	f.repo.AssertNotCalled(t, "List")
	f.repo.AssertNotCalled(t, "Update")
	f.repo.AssertNotCalled(t, "Delete")
	f.tx.AssertNotCalled(t, "WithTx")
}

func TestRouter_AuthorizedRequestReachesRepository(t *testing.T) {
	f := newRouterFixture(t, nil, testConfig())
	f.repo.On("List", mock.Anything).Return([]*notesDomain.Note{}, nil).Once()

	w := serve(f.server.GetHandler(), http.MethodGet, "/notes", testToken, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestRouter_CreateStoresOnlyCiphertext(t *testing.T) {
	f := newRouterFixture(t, nil, testConfig())

	var storedEnvelope string
	var plaintextAtWrite []byte
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Note")).
		Run(func(args mock.Arguments) {
			note := args.Get(1).(*notesDomain.Note)
			note.ID = 1
			storedEnvelope = string(note.Content)
			plaintextAtWrite = note.Plaintext
		}).
		Return(nil).
		Once()

	w := serve(
		f.server.GetHandler(),
		http.MethodPost,
		"/notes",
		testToken,
		`{"title":"shopping","content":"correct horse battery staple"}`,
	)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"correct horse battery staple"`, mustField(t, w.Body.Bytes(), "content"))
	require.NotEmpty(t, storedEnvelope)
	assert.NotContains(t, storedEnvelope, "correct horse")
	assert.Nil(t, plaintextAtWrite)
}

func TestRouter_UnprotectedPaths(t *testing.T) {
	f := newRouterFixture(t, nil, testConfig())
	handler := f.server.GetHandler()

	w := serve(handler, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(handler, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = serve(handler, http.MethodGet, "/nonexistent", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(handler, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "metrics are served on the metrics server only")
}

func TestRouter_RateLimitOnProtectedPaths(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequestsPerSec = 0.001
	cfg.RateLimitBurst = 2
	f := newRouterFixture(t, nil, cfg)
	handler := f.server.GetHandler()

	for range 2 {
		w := serve(handler, http.MethodGet, "/notes", "wrong-token", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := serve(handler, http.MethodGet, "/notes", "wrong-token", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	w = serve(handler, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_HTTPMetricsRecorded(t *testing.T) {
	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	key, err := cryptoDomain.GenerateKey(cryptoDomain.KeySize128)
	require.NoError(t, err)
	defer key.Close()
	engine, err := cryptoService.NewEngine(key, cryptoDomain.AESGCM, cryptoService.NewAEADManager())
	require.NoError(t, err)
	gate, err := authDomain.NewGate("/notes", testToken)
	require.NoError(t, err)

	uc := notesUseCase.NewNoteUseCase(
		databaseMocks.NewMockTxManager(t),
		notesUseCaseMocks.NewMockNoteRepository(t),
		engine,
	)
	server := NewServer(nil, "localhost", 0, discardLogger())
	server.SetupRouter(t.Context(), testConfig(), gate, notesHTTP.NewNoteHandler(uc, discardLogger()), provider)

	w := serve(server.GetHandler(), http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	metricsServer := NewMetricsServer("localhost", 0, discardLogger(), provider)
	scrape := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, scrape.Code)
	assert.Contains(t, scrape.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, scrape.Body.String(), "test_app_http_requests_total")
}

func TestCustomLoggerMiddleware(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "test"})
	})

	w := serve(router, http.MethodGet, "/test", testToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/test", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, w.Header().Get("X-Request-Id"), entry["request_id"])
	assert.NotContains(t, buf.String(), testToken)
}

func TestCustomLoggerMiddleware_RecoversPanicsAsServerError(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := serve(router, http.MethodGet, "/panic", "", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_StartWithoutRouter(t *testing.T) {
	server := NewServer(nil, "localhost", 0, discardLogger())
	assert.Error(t, server.Start(context.Background()))
}

func TestServer_ShutdownGracefully(t *testing.T) {
	f := newRouterFixture(t, nil, testConfig())
	server := f.server

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(context.Background())
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(shutdownCtx))

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func mustField(t *testing.T, body []byte, field string) string {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &fields))
	raw, ok := fields[field]
	require.True(t, ok, "missing field %s", field)
	return string(raw)
}
