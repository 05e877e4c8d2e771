// internal/httpserver/server.go
//
// Read-only HTTP export of the local score board (the serve subcommand).
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Diagnostics: "/", "/health".
//   - Board endpoints: GET /api/scores/top, GET /api/scores/daily.
//
// Notes:
//   - This surface never mutates game state. Games are played in the
//     terminal; the API only publishes their recorded results, so there
//     are no sessions and nothing to authenticate.
//   - CORS is wide open: a public read-only board has no credentials.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/alivaezii/mastermindgame/internal/daily"
	"github.com/alivaezii/mastermindgame/internal/scoreboard"
)

// maxLimit bounds ?limit= so a single request cannot dump the table.
const maxLimit = 100

// Server bundles the router and the score store it publishes.
type Server struct {
	r      *chi.Mux
	scores scoreboard.Store
}

// New constructs a Server, installs middleware, and registers routes.
func New(scores scoreboard.Store) *Server {
	s := &Server{r: chi.NewRouter(), scores: scores}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsReadOnly)                    // any origin may read
	s.r.Use(requestLogger)                   // one debug line per request

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"mastermind-scores","endpoints":["/health","GET /api/scores/top","GET /api/scores/daily"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- board ---
	s.r.Route("/api/scores", func(r chi.Router) {
		r.Get("/top", s.handleTop)
		r.Get("/daily", s.handleDaily)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------- handlers ----------------------------------

// topRes is returned by /api/scores/top.
type topRes struct {
	Mode string             `json:"mode"` // "all" or the requested mode
	Top  []scoreboard.Entry `json:"top"`
}

// handleTop returns the best scores, optionally restricted to one mode.
func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r)
	mode := scoreboard.Mode(r.URL.Query().Get("mode"))

	var (
		rows []scoreboard.Entry
		err  error
	)
	switch mode {
	case "":
		rows, err = s.scores.Top(r.Context(), limit)
	case scoreboard.ModePvC, scoreboard.ModePvP, scoreboard.ModeDaily:
		rows, err = s.scores.TopByMode(r.Context(), mode, limit)
	default:
		http.Error(w, `{"error":"unknown_mode"}`, http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("top scores query")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}

	label := string(mode)
	if label == "" {
		label = "all"
	}
	_ = json.NewEncoder(w).Encode(topRes{Mode: label, Top: rows})
}

// dailyRes is returned by /api/scores/daily.
type dailyRes struct {
	Date string             `json:"date"`
	Top  []scoreboard.Entry `json:"top"`
}

// handleDaily returns the daily board for the given date (default today).
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(time.Now())
	}
	rows, err := s.scores.TopForDate(r.Context(), date, parseLimit(r))
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("daily scores query")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(dailyRes{Date: date, Top: rows})
}

// parseLimit reads ?limit=, tolerating junk. Values <= 0 fall back to
// the store default.
func parseLimit(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsReadOnly allows any origin to read the board.
func corsReadOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one line per request at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
