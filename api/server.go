package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/poiesic/compsearch/core"
	"github.com/poiesic/compsearch/search"
)

// Server exposes the search pipeline over HTTP with JSON bodies.
type Server struct {
	searcher *search.Searcher
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewServer creates an HTTP server over the given searcher.
func NewServer(searcher *search.Searcher, opts ...Option) (*Server, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	s := &Server{
		searcher: searcher,
		logger:   slog.Default().With("component", "http-api"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Handler returns the route table for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /search", s.handleSearch)
	mux.HandleFunc("POST /search_ticker", s.handleSearchTicker)
	mux.HandleFunc("OPTIONS /", s.handlePreflight)
	return mux
}

type searchRequest struct {
	Description string   `json:"description"`
	Countries   []string `json:"countries"`
	Sectors     []string `json:"sectors"`
}

type searchTickerRequest struct {
	Ticker string `json:"ticker"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, core.ErrInvalidInput)
		return
	}

	results, err := s.searcher.Search(r.Context(), req.Description, req.Countries, req.Sectors)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("search complete", "results", len(results))
	s.writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleSearchTicker(w http.ResponseWriter, r *http.Request) {
	var req searchTickerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, core.ErrInvalidInput)
		return
	}

	results, err := s.searcher.SearchByTicker(r.Context(), req.Ticker)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("ticker search complete", "ticker", req.Ticker, "results", len(results))
	s.writeJSON(w, http.StatusOK, results)
}

// handlePreflight answers CORS preflight requests; the search frontend
// runs in a browser on a different origin.
func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps boundary error kinds to status codes. Anything that is
// not a client error counts as an upstream failure.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, core.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusBadGateway {
		s.logger.Error("request failed", "err", err)
	} else {
		s.logger.Debug("request rejected", "status", status, "err", err)
	}

	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	setCORS(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("error encoding response", "err", err)
	}
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
