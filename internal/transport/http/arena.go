package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mshenoda/connect4/internal/domain"
	"github.com/mshenoda/connect4/internal/service/arena"
)

type ArenaHandler struct {
	Service *arena.Service
}

func NewArenaHandler(s *arena.Service) *ArenaHandler {
	return &ArenaHandler{Service: s}
}

type runRequest struct {
	Games   int                  `json:"games" binding:"required,min=1"`
	Seed    int64                `json:"seed"`
	Player1 arena.PlayerSettings `json:"player1"`
	Player2 arena.PlayerSettings `json:"player2"`
}

// RunMatchup plays a matchup synchronously and returns the stored report
func (h *ArenaHandler) RunMatchup(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Player1.Name == "" {
		req.Player1.Name = "AI1"
	}
	if req.Player2.Name == "" {
		req.Player2.Name = "AI2"
	}

	report, err := h.Service.RunAndSave(c.Request.Context(), req.Games, req.Seed, req.Player1, req.Player2)
	if err != nil {
		log.Printf("[ARENA] Run failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *ArenaHandler) ListReports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reports, err := h.Service.ListReports(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[ARENA] List failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *ArenaHandler) GetReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id"})
		return
	}

	report, err := h.Service.GetReport(c.Request.Context(), id)
	if errors.Is(err, domain.ErrReportNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("[ARENA] Get report %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report"})
		return
	}
	c.JSON(http.StatusOK, report)
}
