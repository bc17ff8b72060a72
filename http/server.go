package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ompkit/wikidoc"
)

// Server exposes the navigation protocol as a small JSON API.
type Server struct {
	router chi.Router
	nav    wikidoc.Navigator
	logger *slog.Logger
}

// NewServer creates a Server around the given navigator.
func NewServer(nav wikidoc.Navigator, logger *slog.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		nav:    nav,
		logger: logger,
	}

	s.router.Post("/search", s.handleSearch)
	s.router.Post("/select", s.handleSelect)
	s.router.Get("/healthz", s.handleHealth)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type searchRequest struct {
	OwnerID string `json:"owner_id"`
	Query   string `json:"query"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, wikidoc.Errorf(wikidoc.EINVALID, "Invalid request body."))
		return
	}

	results, err := s.nav.Search(r.Context(), req.OwnerID, req.Query)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, results)
}

type selectRequest struct {
	OwnerID string `json:"owner_id"`
	Data    string `json:"data"`
}

type selectResponse struct {
	Pages []wikidoc.PageMessage `json:"pages"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, wikidoc.Errorf(wikidoc.EINVALID, "Invalid request body."))
		return
	}

	pages, err := s.nav.Select(r.Context(), req.OwnerID, req.Data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, selectResponse{Pages: pages})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := wikidoc.ErrorCode(err)
	if code == wikidoc.EINTERNAL {
		s.logger.Error("internal error", "path", r.URL.Path, "err", err)
	}
	s.respondJSON(w, r, statusFromCode(code), errorResponse{Error: wikidoc.ErrorMessage(err)})
}

// respondJSON marshals the body before writing any headers so an
// encoding failure can still produce a well-formed error response.
func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		s.logger.Error("encoding response", "path", r.URL.Path, "err", err)
		http.Error(w, "Internal error.", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func statusFromCode(code string) int {
	switch code {
	case wikidoc.EINVALID:
		return http.StatusBadRequest
	case wikidoc.EUNAUTHORIZED:
		return http.StatusForbidden
	case wikidoc.ENOTFOUND:
		return http.StatusNotFound
	case wikidoc.EEXPIRED:
		return http.StatusGone
	case wikidoc.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
