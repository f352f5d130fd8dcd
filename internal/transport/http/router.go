package http

import (
	"github.com/gin-gonic/gin"
	"github.com/mshenoda/connect4/internal/transport/http/middleware"
)

// NewRouter wires the REST routes. ws is mounted at /ws when not nil.
func NewRouter(allowedOrigins []string, games *GameHandler, arenaHandler *ArenaHandler, ws gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	router.GET("/api/heuristics", games.Heuristics)

	router.POST("/api/games", games.CreateGame)
	router.GET("/api/games/:id", games.GetGame)
	router.POST("/api/games/:id/moves", games.PlayMove)
	router.DELETE("/api/games/:id", games.DeleteGame)

	if arenaHandler != nil {
		router.POST("/api/arena/runs", arenaHandler.RunMatchup)
		router.GET("/api/arena/reports", arenaHandler.ListReports)
		router.GET("/api/arena/reports/:id", arenaHandler.GetReport)
	}

	if ws != nil {
		router.GET("/ws", ws)
	}

	return router
}
