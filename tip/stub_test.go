package tip

import (
	"bytes"
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/service"
)

var _ service.Service = (*StubServer)(nil)

func TestStubHandler_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(NewStubHandler())
	defer srv.Close()

	c := NewHTTPClient(srv.URL+StubPath, "offline", "stub", time.Second)

	first, err := c.GetTip(context.Background(), GenericPrompt)
	if err != nil {
		t.Fatalf("GetTip against stub failed: %v", err)
	}
	second, err := c.GetTip(context.Background(), GenericPrompt)
	if err != nil {
		t.Fatalf("Second GetTip failed: %v", err)
	}
	if first == second {
		t.Errorf("Expected stub to rotate tips, got %q twice", first)
	}

	scored, err := c.GetTip(context.Background(), ScorePrompt(90))
	if err != nil {
		t.Fatalf("Score GetTip failed: %v", err)
	}
	if !strings.HasPrefix(scored, "90 points") {
		t.Errorf("Expected score-aware reply, got %q", scored)
	}
}

func TestStubHandler_Rejects(t *testing.T) {
	h := NewStubHandler()

	tests := []struct {
		name   string
		auth   string
		body   string
		status int
	}{
		{"no auth", "", `{"messages":[{"role":"user","content":"hi"}]}`, http.StatusUnauthorized},
		{"bad body", "Bearer x", `not json`, http.StatusBadRequest},
		{"no messages", "Bearer x", `{"messages":[]}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, StubPath, bytes.NewBufferString(tt.body))
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestStubHandler_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	NewStubHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Unexpected health body: %s", rec.Body.String())
	}
}

func TestStubServerLifecycle(t *testing.T) {
	s := NewStubServer("127.0.0.1:0")
	if s.URL() != "" {
		t.Error("Expected empty URL before Init")
	}
	if err := s.Start(); err == nil {
		t.Error("Expected Start before Init to fail")
	}

	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	url := s.URL()
	if !strings.HasSuffix(url, StubPath) {
		t.Errorf("Unexpected URL %q", url)
	}

	text, err := NewHTTPClient(url, "offline", "stub", time.Second).GetTip(context.Background(), GenericPrompt)
	if err != nil || text == "" {
		t.Errorf("GetTip against running stub: %q, %v", text, err)
	}

	if err := s.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Second Stop should be a no-op, got %v", err)
	}

	if _, err := NewHTTPClient(url, "offline", "stub", time.Second).GetTip(context.Background(), GenericPrompt); err == nil {
		t.Error("Expected request to fail after Stop")
	}
}

func TestStubServerStopWithoutStart(t *testing.T) {
	s := NewStubServer("127.0.0.1:0")
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	addr := s.listener.Addr().String()
	if err := s.Stop(); err != nil {
		t.Errorf("Stop after Init only: %v", err)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		t.Fatalf("Expected port released after Stop, got %v", err)
	}
	ln.Close()
}

func TestStubServerStopLogsCloseError(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(io.Discard) })

	s := NewStubServer("127.0.0.1:0")
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	s.listener.Close()

	if err := s.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if !strings.Contains(buf.String(), "close listener") {
		t.Errorf("Expected close failure logged, got %q", buf.String())
	}
}
