// Package server implements the /todo HTTP resource on top of a
// domain.TaskRepository. It is the development backend for the board.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/runoshun/todoboard/internal/domain"
)

// shutdownTimeout bounds graceful shutdown once the context is done.
const shutdownTimeout = 5 * time.Second

// Server serves the /todo resource.
type Server struct {
	repo   domain.TaskRepository
	ids    domain.IDGenerator
	logger *slog.Logger
}

// New creates a Server. A nil logger discards request logs.
func New(repo domain.TaskRepository, ids domain.IDGenerator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{repo: repo, ids: ids, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /todo", s.handleList)
	mux.HandleFunc("POST /todo", s.handleCreate)
	mux.HandleFunc("PUT /todo/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /todo/{id}", s.handleDelete)
	return s.logRequests(mux)
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("serving", "addr", ln.Addr().String())
	err := server.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		return nil
	}
	close(stopped)
	<-done
	return err
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.repo.List(r.Context())
	if err != nil {
		s.writeErr(w, http.StatusInternalServerError, err)
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		s.writeErr(w, http.StatusBadRequest, err)
		return
	}
	task := payload.ToTask(s.ids.NewID())
	if err := s.repo.Create(r.Context(), task); err != nil {
		s.writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	payload, err := decodePayload(r)
	if err != nil {
		s.writeErr(w, http.StatusBadRequest, err)
		return
	}
	task := payload.ToTask(id)
	if err := s.repo.Update(r.Context(), task); err != nil {
		s.writeErr(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.repo.Delete(r.Context(), id); err != nil {
		s.writeErr(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}

func decodePayload(r *http.Request) (domain.TaskPayload, error) {
	var payload domain.TaskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return domain.TaskPayload{}, fmt.Errorf("invalid request body: %w", err)
	}
	return payload, nil
}

func statusFor(err error) int {
	if errors.Is(err, domain.ErrTaskNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeErr(w http.ResponseWriter, code int, err error) {
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
