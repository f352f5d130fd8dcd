package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mshenoda/connect4/internal/domain"
	"github.com/mshenoda/connect4/internal/repository/sqlstore"
	"github.com/mshenoda/connect4/internal/service/arena"
	"github.com/mshenoda/connect4/internal/service/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "http://localhost:5173"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlstore.Open("sqlite3", filepath.Join(t.TempDir(), "reports.db"), 1, 1, 5)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	arenaSvc := arena.NewService(sqlstore.NewReportRepo(db), nil, time.Minute, 2, 20, 4)
	return NewRouter(
		[]string{testOrigin},
		NewGameHandler(game.NewSessionManager(), "easy"),
		NewArenaHandler(arenaSvc),
		nil,
	)
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHeuristics(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/api/heuristics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Heuristics   []string         `json:"heuristics"`
		Difficulties []presetResponse `json:"difficulties"`
	}](t, w)
	assert.Subset(t, body.Heuristics, []string{"threats", "defensive", "blocking_opponent", "random"})
	assert.Len(t, body.Difficulties, 3)
}

func TestGameLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/games", map[string]any{"difficulty": "hard"})
	require.Equal(t, http.StatusCreated, w.Code)
	snap := decode[game.Snapshot](t, w)
	require.NotEmpty(t, snap.GameID)
	assert.Equal(t, "hard", string(snap.Difficulty))
	assert.Equal(t, domain.StatusActive, snap.Status)

	w = do(t, r, http.MethodPost, "/api/games/"+snap.GameID+"/moves", map[string]any{"column": 0})
	require.Equal(t, http.StatusOK, w.Code)
	snap = decode[game.Snapshot](t, w)
	assert.Equal(t, 2, snap.MoveCount)
	assert.Equal(t, int(domain.Player1), snap.Board[domain.Rows-1][0])

	w = do(t, r, http.MethodGet, "/api/games/"+snap.GameID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[game.Snapshot](t, w).MoveCount)

	w = do(t, r, http.MethodDelete, "/api/games/"+snap.GameID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/api/games/"+snap.GameID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateGameWithoutBody(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/games", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "easy", string(decode[game.Snapshot](t, w).Difficulty))
}

func TestMoveErrors(t *testing.T) {
	r := newTestRouter(t)
	snap := decode[game.Snapshot](t, do(t, r, http.MethodPost, "/api/games", map[string]any{}))

	tests := []struct {
		name string
		path string
		body any
		code int
	}{
		{"unknown game", "/api/games/missing/moves", map[string]any{"column": 0}, http.StatusNotFound},
		{"missing column", "/api/games/" + snap.GameID + "/moves", map[string]any{}, http.StatusBadRequest},
		{"out of range", "/api/games/" + snap.GameID + "/moves", map[string]any{"column": 9}, http.StatusBadRequest},
		{"negative", "/api/games/" + snap.GameID + "/moves", map[string]any{"column": -1}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestArenaRunAndFetch(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/arena/runs", map[string]any{
		"games":   4,
		"seed":    7,
		"player1": map[string]any{"depth": 1, "heuristic": "threats"},
		"player2": map[string]any{"depth": 1, "heuristic": "random"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	report := decode[arena.Report](t, w)
	assert.NotZero(t, report.ID)
	assert.Equal(t, 4, report.Games)
	assert.Equal(t, 4, report.Player1Wins+report.Player2Wins+report.Draws)
	assert.Contains(t, report.Player1, "AI1")

	w = do(t, r, http.MethodGet, "/api/arena/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]arena.Report](t, w), 1)

	w = do(t, r, http.MethodGet, "/api/arena/reports/"+jsonID(report.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.ID, decode[arena.Report](t, w).ID)

	w = do(t, r, http.MethodGet, "/api/arena/reports/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/arena/reports/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArenaRunLimits(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/arena/runs", map[string]any{"games": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/arena/runs", map[string]any{"games": 21})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/arena/runs", map[string]any{
		"games":   1,
		"player1": map[string]any{"depth": 5, "heuristic": "threats"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/games", nil)
	req.Header.Set("Origin", testOrigin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/heuristics", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func jsonID(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
