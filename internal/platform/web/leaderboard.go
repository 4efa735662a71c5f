// Package web serves a read-only JSON leaderboard over HTTP so scores from
// the SSH server can be shown elsewhere.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// maxLimit is the largest ?limit= accepted on /scores.
const maxLimit = 100

// Store is the subset of storage.Store the leaderboard reads.
type Store interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	BestScore(gameID string) (int, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// Server bundles the router and the score store.
type Server struct {
	r      *chi.Mux
	store  Store
	logger *log.Logger

	mu     sync.Mutex
	srv    *http.Server
	closed bool
}

// New constructs a Server and registers routes. A nil logger discards.
func New(store Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{r: chi.NewRouter(), store: store, logger: logger}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(s.requestLogger)
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/scores", s.handleScores)
	s.r.Get("/best", s.handleBest)
	s.r.Get("/stats", s.handleStats)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.srv = srv
	s.mu.Unlock()

	s.logger.Info("starting leaderboard", "address", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web: %w", err)
	}
	return nil
}

// Shutdown stops the server and waits for in-flight requests. A later
// Start returns immediately.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.closed = true
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// scoreJSON is one row of GET /scores.
type scoreJSON struct {
	Rank      int       `json:"rank"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxLimit {
			writeError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		limit = n
	}

	entries, err := s.store.TopScores(flappy.ID, limit)
	if err != nil {
		s.storeError(w, err)
		return
	}

	out := make([]scoreJSON, len(entries))
	for i, e := range entries {
		out[i] = scoreJSON{Rank: i + 1, Score: e.Score, CreatedAt: e.CreatedAt}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleBest(w http.ResponseWriter, r *http.Request) {
	best, err := s.store.BestScore(flappy.ID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"best": best})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetGameStats(flappy.ID)
	if err != nil {
		s.storeError(w, err)
		return
	}

	resp := struct {
		Rounds     int        `json:"rounds"`
		HighScore  int        `json:"high_score"`
		AvgScore   float64    `json:"avg_score"`
		LastPlayed *time.Time `json:"last_played,omitempty"`
	}{
		Rounds:    stats.GamesCount,
		HighScore: stats.HighScore,
		AvgScore:  stats.AvgScore,
	}
	if !stats.LastPlayed.IsZero() {
		resp.LastPlayed = &stats.LastPlayed
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) storeError(w http.ResponseWriter, err error) {
	s.logger.Error("leaderboard query failed", "error", err)
	writeError(w, http.StatusInternalServerError, "store_unavailable")
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs each request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
