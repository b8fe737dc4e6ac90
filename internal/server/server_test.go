package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookvault/bookvault/internal/home"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRequiresHome(t *testing.T) {
	_, err := New(Config{Logger: testLogger()})
	if err == nil {
		t.Fatal("expected error when home directory is missing")
	}
}

func TestNewDefaults(t *testing.T) {
	h, err := home.New(t.TempDir())
	if err != nil {
		t.Fatalf("home.New: %v", err)
	}

	s, err := New(Config{Home: h, Logger: testLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Addr() != "127.0.0.1:8080" {
		t.Errorf("addr = %q", s.Addr())
	}
	if s.IsRunning() {
		t.Error("new server reports running")
	}
	if s.Store() != nil {
		t.Error("store set before Start")
	}
}

func TestRequireInitBeforeStart(t *testing.T) {
	h, err := home.New(t.TempDir())
	if err != nil {
		t.Fatalf("home.New: %v", err)
	}
	s, err := New(Config{Home: h, Logger: testLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	called := false
	handler := s.requireInit(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/api/books", nil))

	if called {
		t.Error("handler ran before store was open")
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not fully initialized") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHealthRouteSkipsInitCheck(t *testing.T) {
	h, err := home.New(t.TempDir())
	if err != nil {
		t.Fatalf("home.New: %v", err)
	}
	s, err := New(Config{Home: h, Logger: testLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("health before init = %d, want 200", rec.Code)
	}
}
