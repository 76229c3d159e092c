// Package server exposes the placement engine over HTTP.
//
// The server owns no canvas state of its own: snapshots live in a
// session.Store, and every placement call is load → place → append →
// store. Ordering within one session is the transport's responsibility;
// sessions are independent and may be served concurrently.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cptiwari20/ai-learning-sub000/pkg/board"
	"github.com/cptiwari20/ai-learning-sub000/pkg/errors"
	"github.com/cptiwari20/ai-learning-sub000/pkg/observability"
	"github.com/cptiwari20/ai-learning-sub000/pkg/report"
	"github.com/cptiwari20/ai-learning-sub000/pkg/session"
)

// Server handles whiteboard API requests.
type Server struct {
	engine   *board.Engine
	reporter report.Reporter
	store    session.Store
	logger   *log.Logger
}

// New creates a server. A nil logger falls back to log.Default().
func New(engine *board.Engine, store session.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		engine:   engine,
		reporter: report.NewReporter(engine.Config()),
		store:    store,
		logger:   logger,
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/sessions/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetSession)
		r.Delete("/", s.handleClearSession)
		r.Post("/elements", s.handlePlace)
		r.Get("/report", s.handleReport)
	})
	return r
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePlace resolves one placement request against the stored snapshot.
// Soft failures (bad connect indices) are relayed with status 200 so the
// decision-making caller can react; malformed requests are 400s.
func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateSessionID(id); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req board.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeInvalidRequest, err, "decode request body"))
		return
	}

	snap, err := s.store.Get(r.Context(), id)
	if err == session.ErrNotFound {
		snap = session.NewSnapshot(id)
	} else if err != nil {
		writeError(w, http.StatusInternalServerError,
			errors.Wrap(errors.ErrCodeInternal, err, "load session %s", id))
		return
	}

	start := time.Now()
	observability.Placement().OnPlaceStart(r.Context(), string(req.Kind), len(snap.Elements))
	result, err := s.engine.Place(snap.Elements, req)
	observability.Placement().OnPlaceComplete(r.Context(), string(req.Kind),
		len(result.Elements), time.Since(start), err)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if result.OK && len(result.Elements) > 0 {
		next := snap.Append(result.Elements...)
		if err := s.store.Set(r.Context(), next); err != nil {
			writeError(w, http.StatusInternalServerError,
				errors.Wrap(errors.ErrCodeInternal, err, "store session %s", id))
			return
		}
		observability.Session().OnSessionSave(r.Context(), id, len(next.Elements))
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.reporter.Describe(snap.Elements))
}

// handleClearSession discards the whole snapshot; a cleared canvas is a
// full reset, not an edit.
func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateSessionID(id); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError,
			errors.Wrap(errors.ErrCodeInternal, err, "clear session %s", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadSession fetches the session named in the URL, writing the error
// response itself when the session is invalid or missing.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*session.Snapshot, bool) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateSessionID(id); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}

	snap, err := s.store.Get(r.Context(), id)
	if err == session.ErrNotFound {
		writeError(w, http.StatusNotFound,
			errors.New(errors.ErrCodeSessionNotFound, "session %s not found", id))
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError,
			errors.Wrap(errors.ErrCodeInternal, err, "load session %s", id))
		return nil, false
	}
	observability.Session().OnSessionLoad(r.Context(), id, len(snap.Elements))
	return snap, true
}

// =============================================================================
// Middleware & Responses
// =============================================================================

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

// errorResponse is the JSON error payload.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  errors.GetCode(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
