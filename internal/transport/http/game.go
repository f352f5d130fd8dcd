package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mshenoda/connect4/internal/domain"
	"github.com/mshenoda/connect4/internal/service/bot"
	"github.com/mshenoda/connect4/internal/service/game"
)

type GameHandler struct {
	SessionManager    *game.SessionManager
	DefaultDifficulty string
}

func NewGameHandler(sm *game.SessionManager, defaultDifficulty string) *GameHandler {
	return &GameHandler{SessionManager: sm, DefaultDifficulty: defaultDifficulty}
}

type createGameRequest struct {
	Difficulty string `json:"difficulty"`
	HumanFirst *bool  `json:"humanFirst"`
}

type moveRequest struct {
	Column *int `json:"column" binding:"required"`
}

type presetResponse struct {
	Difficulty bot.Difficulty `json:"difficulty"`
	Depth      int            `json:"depth"`
	Heuristic  string         `json:"heuristic"`
}

// CreateGame starts a human vs engine session
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req createGameRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}
	if req.Difficulty == "" {
		req.Difficulty = h.DefaultDifficulty
	}
	humanFirst := true
	if req.HumanFirst != nil {
		humanFirst = *req.HumanFirst
	}

	snap := h.SessionManager.CreateSession(req.Difficulty, humanFirst)
	c.JSON(http.StatusCreated, snap)
}

func (h *GameHandler) GetGame(c *gin.Context) {
	snap, err := h.SessionManager.GetSnapshot(c.Param("id"))
	if err != nil {
		writeGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *GameHandler) PlayMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	snap, err := h.SessionManager.PlayMove(c.Param("id"), *req.Column)
	if err != nil {
		writeGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	if err := h.SessionManager.RemoveSession(c.Param("id")); err != nil {
		writeGameError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Heuristics lists the evaluator names and difficulty presets
func (h *GameHandler) Heuristics(c *gin.Context) {
	presets := make([]presetResponse, 0, len(bot.Difficulties))
	for _, d := range bot.Difficulties {
		p := d.Preset()
		presets = append(presets, presetResponse{Difficulty: d, Depth: p.Depth, Heuristic: p.Heuristic.String()})
	}
	c.JSON(http.StatusOK, gin.H{
		"heuristics":   bot.HeuristicNames,
		"difficulties": presets,
	})
}

func writeGameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidMove), errors.Is(err, domain.ErrColumnFull):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrGameOver), errors.Is(err, domain.ErrNotYourTurn):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
