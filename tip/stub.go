package tip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// StubPath is the chat-completion route served by the stub
const StubPath = "/v1/chat/completions"

var stubTips = []string{
	"Hug the walls early on: it keeps the middle of the board free for later.",
	"Plan an escape route before you grab food near your own tail.",
	"Move in long zig-zag lanes once the snake gets long; it never traps itself.",
	"Don't chase food diagonally in a hurry. Two clean turns beat five twitchy ones.",
	"Leave a one-cell corridor along one edge so you always have a way back.",
}

var scorePattern = regexp.MustCompile(`scored (\d+) points`)

// NewStubHandler returns a chi router that answers chat-completion requests with canned tips
// Score-aware prompts get a reply that quotes the score back
func NewStubHandler() http.Handler {
	var next atomic.Uint64

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post(StubPath, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Messages) == 0 {
			respondError(w, http.StatusBadRequest, "no messages")
			return
		}

		prompt := req.Messages[len(req.Messages)-1].Content
		text := stubTips[(next.Add(1)-1)%uint64(len(stubTips))]
		if m := scorePattern.FindStringSubmatch(prompt); m != nil {
			text = fmt.Sprintf("%s points is a start! %s", m[1], text)
		}

		respondJSON(w, http.StatusOK, ChatResponse{
			Choices: []Choice{{Message: Message{Role: "assistant", Content: text}}},
		})
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Printf("stub: %s %s %d %v", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("stub: encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// StubServer runs the stub handler in-process as a service
// Lets the game show tips offline without an API key
type StubServer struct {
	addr string

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	done     chan struct{}
}

// NewStubServer creates a stub bound to addr; "127.0.0.1:0" picks a free port
func NewStubServer(addr string) *StubServer {
	return &StubServer{addr: addr}
}

// Name implements service.Service
func (s *StubServer) Name() string {
	return "tip-stub"
}

// Dependencies implements service.Service
func (s *StubServer) Dependencies() []string {
	return nil
}

// Init binds the listener so URL is known before Start
func (s *StubServer) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("tip stub listen on %s: %w", s.addr, err)
	}
	s.listener = ln
	s.server = &http.Server{
		Handler:           NewStubHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return nil
}

// Start serves on the bound listener in a goroutine
func (s *StubServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return errors.New("tip stub: Start before Init")
	}
	if s.done != nil {
		return nil
	}

	s.done = make(chan struct{})
	go func(srv *http.Server, ln net.Listener, done chan struct{}) {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("tip stub: serve: %v", err)
		}
	}(s.server, s.listener, s.done)
	return nil
}

// Stop shuts the server down; safe to call multiple times
func (s *StubServer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := s.server.Shutdown(ctx)
	if s.done == nil {
		// Never served: Shutdown does not close a listener it was not given
		if cerr := s.listener.Close(); cerr != nil {
			log.Printf("tip stub: close listener: %v", cerr)
		}
	} else {
		<-s.done
	}

	s.server = nil
	s.listener = nil
	s.done = nil
	return err
}

// URL returns the chat-completion endpoint, empty before Init
func (s *StubServer) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return "http://" + s.listener.Addr().String() + StubPath
}
