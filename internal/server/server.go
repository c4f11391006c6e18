package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/thruflo/primespiral/internal/logging"
)

// FilesPrefix is the URL path under which source files are served.
const FilesPrefix = "/files/"

// PageFunc writes the gallery page. Image references must point below
// FilesPrefix.
type PageFunc func(w io.Writer) error

// Server serves the gallery page and the source images.
type Server struct {
	port    int
	dir     string
	page    PageFunc
	handler http.Handler

	mu       sync.RWMutex
	server   *http.Server
	listener net.Listener
	started  bool
}

// Config holds server configuration options.
type Config struct {
	Port int
	// Dir is the source directory served under FilesPrefix.
	Dir  string
	Page PageFunc
}

// NewServer creates a new Server instance.
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.Page == nil {
		return nil, errors.New("page function is required")
	}
	if cfg.Dir == "" {
		return nil, errors.New("source directory is required")
	}

	s := &Server{
		port: cfg.Port,
		dir:  cfg.Dir,
		page: cfg.Page,
	}
	mux := http.NewServeMux()
	s.setupRoutes(mux)
	s.handler = mux
	return s, nil
}

// Port returns the configured port.
func (s *Server) Port() int {
	return s.port
}

// Handler returns the server's routes, for use without a listener.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start starts the HTTP server.
// The server runs until ctx is cancelled or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return errors.New("server already started")
	}

	addr := fmt.Sprintf(":%d", s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	s.server = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		if err := s.Stop(); err != nil {
			logging.Warn("server shutdown failed", "error", err)
		}
	}()

	logging.Info("serving gallery", "addr", listener.Addr().String(), "dir", s.dir)

	// Run server (blocks until error or server closed)
	err = s.server.Serve(listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	s.started = false
	return nil
}

// ListenAddr returns the actual address the server is listening on.
// Useful when port 0 is used to get an available port.
// Returns empty string if not started.
func (s *Server) ListenAddr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) setupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET "+FilesPrefix, http.StripPrefix(FilesPrefix, http.FileServer(noDirFS{http.Dir(s.dir)})))
	mux.HandleFunc("GET /{$}", s.handlePage)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok\n")
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	// Render into a buffer first so a failure can still send a 500.
	var buf bytes.Buffer
	if err := s.page(&buf); err != nil {
		logging.Error("failed to render page", "error", err)
		http.Error(w, "failed to render gallery", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

// noDirFS hides directory listings.
type noDirFS struct {
	fs http.FileSystem
}

func (n noDirFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
