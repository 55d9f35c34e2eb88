package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/pokerhand/internal/batch"
)

// maxHTTPBody bounds POST /rank request bodies.
const maxHTTPBody = 1 << 20

// Server ranks hands over WebSocket and plain HTTP.
type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	connections map[*Connection]struct{}
	logger      *log.Logger
	clock       quartz.Clock
	ranker      *batch.Ranker
	mu          sync.RWMutex
	httpServer  *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithClock replaces the real clock, mainly for tests.
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// WithRanker sets the ranker used for batch requests.
func WithRanker(ranker *batch.Ranker) Option {
	return func(s *Server) {
		s.ranker = ranker
	}
}

// NewServer creates a server that will listen on addr.
func NewServer(addr string, logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]struct{}),
		logger:      logger.WithPrefix("server"),
		clock:       quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ranker == nil {
		s.ranker = batch.NewRanker(0, logger)
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes served by the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/rank", s.handleRank)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start listens on the configured address and blocks until Shutdown.
func (s *Server) Start() error {
	s.logger.Info("Starting ranking server", "addr", s.addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and closes open WebSocket connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	conns := make([]*Connection, 0, len(s.connections))
	for conn := range s.connections {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close() // Ignore close errors during shutdown
	}

	return s.httpServer.Shutdown(ctx)
}

// ConnectionCount returns the number of open WebSocket connections.
func (s *Server) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

func (s *Server) register(conn *Connection) {
	s.mu.Lock()
	s.connections[conn] = struct{}{}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "total", total)
}

func (s *Server) unregister(conn *Connection) {
	s.mu.Lock()
	delete(s.connections, conn)
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client disconnected", "total", total)
}

// handleWebSocket handles WebSocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	conn := NewConnection(ws, s.logger, s.clock, s.ranker)
	s.register(conn)
	conn.Start()

	go func() {
		<-conn.Done()
		s.unregister(conn)
	}()
}

// handleRank ranks a single hand from ?hand= (GET) or a list of hands from a
// JSON body (POST).
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		hand := r.URL.Query().Get("hand")
		s.logger.Debug("Rank request", "hand", hand)
		writeJSON(w, http.StatusOK, batch.Rank(hand))

	case http.MethodPost:
		var data RankHandsData
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxHTTPBody)).Decode(&data); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorData{
				Code:    ErrorCodeInvalidMessage,
				Message: "Failed to parse hands",
			})
			return
		}

		results, err := s.ranker.RankAll(r.Context(), data.Hands)
		if err != nil {
			writeJSON(w, http.StatusServiceUnavailable, ErrorData{
				Code:    ErrorCodeCancelled,
				Message: err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, HandsRankedData{Results: results})

	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
