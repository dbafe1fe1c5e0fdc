package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"
)

const (
	// LeaderboardPath is where the server exposes the session log.
	LeaderboardPath = "/leaderboard.json"

	maxRecordBytes  = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// ServerOptions configures a session server.
type ServerOptions struct {
	Backend Backend
	Logger  *log.Logger
}

// Server serves a session log over HTTP in the shape the Client expects.
type Server struct {
	log     *Log
	logger  *log.Logger
	metrics *metrics
}

// NewServer creates a session server.
func NewServer(opts ServerOptions) (*Server, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("storage backend is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "serve: ", log.LstdFlags)
	}
	return &Server{
		log:     NewLog(opts.Backend),
		logger:  logger,
		metrics: newMetrics(),
	}, nil
}

// Handler returns the HTTP handler for the session log.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(LeaderboardPath, s.metrics.instrument(LeaderboardPath, s.handleLeaderboard))
	mux.HandleFunc("/healthz", s.metrics.instrument("/healthz", s.handleHealth))
	mux.Handle("/metrics", s.metrics.handler())
	return s.recoverHandler(mux)
}

// Serve runs the server on addr until it fails or the process is
// interrupted.
func (s *Server) Serve(addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ErrorLog:          s.logger,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listenErrs := make(chan error, 1)
	go func() {
		listenErrs <- server.ListenAndServe()
	}()
	s.logf("listening on %s", addr)

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	select {
	case err := <-listenErrs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logf("server stopped: %v", err)
			return errors.Join(err, s.log.Close())
		}
		return s.log.Close()
	case <-interrupts:
		s.logf("interrupt received, shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		shutdownErr := server.Shutdown(shutdownCtx)
		cancel()
		listenErr := <-listenErrs
		if errors.Is(listenErr, http.ErrServerClosed) {
			listenErr = nil
		}
		if errors.Is(shutdownErr, http.ErrServerClosed) {
			shutdownErr = nil
		}
		return errors.Join(shutdownErr, listenErr, s.log.Close())
	}
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		s.handleFetch(w, r)
	case http.MethodPost:
		s.handleAppend(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		s.writeError(w, r, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
	}
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	records, err := s.log.Snapshot(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.metrics.storedRecords.Set(float64(len(records)))
	if len(records) == 0 {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleAppend(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRecordBytes))
	if err != nil {
		s.metrics.rejected.Inc()
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.writeError(w, r, status, fmt.Errorf("read record: %w", err))
		return
	}

	id, err := s.log.AppendRaw(r.Context(), body)
	if err != nil {
		if errors.Is(err, ErrNotObject) {
			s.metrics.rejected.Inc()
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.metrics.appended.Inc()
	writeJSON(w, http.StatusOK, appendResponse{Name: id})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		s.writeError(w, r, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}
	if _, err := s.log.Snapshot(r.Context()); err != nil {
		s.writeError(w, r, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) recoverHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &responseTracker{ResponseWriter: w}
		defer func() {
			if recovered := recover(); recovered != nil {
				s.logf("panic handling request %s %s: %v\n%s", r.Method, r.URL.Path, recovered, debug.Stack())
				if writer.wroteHeader {
					return
				}
				writeJSON(writer, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			}
		}()
		next.ServeHTTP(writer, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logf("request %s %s failed (%d): %v", r.Method, r.URL.Path, status, err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) logf(format string, args ...any) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Printf(format, args...)
}

type responseTracker struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *responseTracker) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseTracker) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(data)
}
