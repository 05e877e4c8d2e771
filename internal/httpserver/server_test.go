package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alivaezii/mastermindgame/internal/daily"
	"github.com/alivaezii/mastermindgame/internal/scoreboard"
)

func seedEntry(t *testing.T, st scoreboard.Store, name string, mode scoreboard.Mode, score int, dateKey string, at time.Time) {
	t.Helper()
	require.NoError(t, st.Save(context.Background(), &scoreboard.Entry{
		PlayerName:  name,
		Mode:        mode,
		Won:         score > 0,
		Attempts:    4,
		MaxAttempts: 10,
		Score:       score,
		DateKey:     dateKey,
		CreatedAt:   at,
	}))
}

func doGet(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := New(scoreboard.NewMemoryStore())

	rec := doGet(t, srv, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestServiceDescriptor(t *testing.T) {
	srv := New(scoreboard.NewMemoryStore())

	rec := doGet(t, srv, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mastermind-scores")
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestTopEndpoint(t *testing.T) {
	st := scoreboard.NewMemoryStore()
	srv := New(st)
	base := time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC)

	seedEntry(t, st, "alice", scoreboard.ModePvC, 170, "2026-08-21", base)
	seedEntry(t, st, "bob", scoreboard.ModePvP, 190, "2026-08-21", base.Add(time.Second))

	rec := doGet(t, srv, "/api/scores/top")
	require.Equal(t, http.StatusOK, rec.Code)

	var res topRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "all", res.Mode)
	require.Len(t, res.Top, 2)
	assert.Equal(t, "bob", res.Top[0].PlayerName)
	assert.Equal(t, "alice", res.Top[1].PlayerName)
}

func TestTopEndpointModeFilter(t *testing.T) {
	st := scoreboard.NewMemoryStore()
	srv := New(st)
	base := time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC)

	seedEntry(t, st, "alice", scoreboard.ModePvC, 170, "2026-08-21", base)
	seedEntry(t, st, "bob", scoreboard.ModePvP, 190, "2026-08-21", base.Add(time.Second))

	rec := doGet(t, srv, "/api/scores/top?mode=pvc")
	require.Equal(t, http.StatusOK, rec.Code)

	var res topRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "pvc", res.Mode)
	require.Len(t, res.Top, 1)
	assert.Equal(t, "alice", res.Top[0].PlayerName)
}

func TestTopEndpointUnknownMode(t *testing.T) {
	srv := New(scoreboard.NewMemoryStore())

	rec := doGet(t, srv, "/api/scores/top?mode=speedrun")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown_mode")
}

func TestTopEndpointLimit(t *testing.T) {
	st := scoreboard.NewMemoryStore()
	srv := New(st)
	base := time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		seedEntry(t, st, "p", scoreboard.ModePvC, 100+i, "2026-08-21", base.Add(time.Duration(i)*time.Second))
	}

	rec := doGet(t, srv, "/api/scores/top?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var res topRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res.Top, 2)

	// Junk limits fall back to the store default rather than erroring.
	rec = doGet(t, srv, "/api/scores/top?limit=banana")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res.Top, 5)
}

func TestDailyEndpoint(t *testing.T) {
	st := scoreboard.NewMemoryStore()
	srv := New(st)
	base := time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC)

	seedEntry(t, st, "alice", scoreboard.ModeDaily, 170, "2026-08-20", base)
	seedEntry(t, st, "bob", scoreboard.ModeDaily, 150, "2026-08-21", base.Add(time.Second))
	seedEntry(t, st, "carol", scoreboard.ModePvC, 200, "2026-08-21", base.Add(2*time.Second))

	rec := doGet(t, srv, "/api/scores/daily?date=2026-08-21")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dailyRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "2026-08-21", res.Date)
	require.Len(t, res.Top, 1)
	assert.Equal(t, "bob", res.Top[0].PlayerName)
}

func TestDailyEndpointDefaultsToToday(t *testing.T) {
	st := scoreboard.NewMemoryStore()
	srv := New(st)
	today := daily.DateKey(time.Now())

	seedEntry(t, st, "alice", scoreboard.ModeDaily, 170, today, time.Now().UTC())

	rec := doGet(t, srv, "/api/scores/daily")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dailyRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, today, res.Date)
	require.Len(t, res.Top, 1)
}

func TestNotFoundIsJSON(t *testing.T) {
	srv := New(scoreboard.NewMemoryStore())

	rec := doGet(t, srv, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
	assert.Contains(t, rec.Body.String(), "/nope")
}
