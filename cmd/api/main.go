package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mshenoda/connect4/internal/config"
	"github.com/mshenoda/connect4/internal/repository/redis"
	"github.com/mshenoda/connect4/internal/repository/sqlstore"
	"github.com/mshenoda/connect4/internal/service/arena"
	"github.com/mshenoda/connect4/internal/service/cleanup"
	"github.com/mshenoda/connect4/internal/service/game"
	transportHttp "github.com/mshenoda/connect4/internal/transport/http"
	"github.com/mshenoda/connect4/internal/transport/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := sqlstore.Open(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
	if err != nil {
		log.Fatalf("Failed to open report store: %v", err)
	}
	defer db.Close()

	if err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()

	var cache arena.ReportCache
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		cache = redis.NewRedisCache(redis.RedisClient)
	}

	arenaService := arena.NewService(sqlstore.NewReportRepo(db), cache, cfg.ReportCacheTTL,
		cfg.ArenaWorkers, cfg.ArenaMaxGames, cfg.MaxSearchDepth)
	sessionManager := game.NewSessionManager()
	connManager := websocket.NewConnectionManager()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	cleanup.NewWorker(sessionManager, cfg.CleanupInterval, cfg.SessionIdleTimeout).Start(ctx)

	gameHandler := transportHttp.NewGameHandler(sessionManager, cfg.DefaultDifficulty)
	arenaHandler := transportHttp.NewArenaHandler(arenaService)
	wsHandler := websocket.NewHandler(connManager, sessionManager, cfg.DefaultDifficulty, cfg.AllowedOrigins)

	router := transportHttp.NewRouter(cfg.AllowedOrigins, gameHandler, arenaHandler, wsHandler.Gin)
	serveStatic(router, "./static")

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

// serveStatic mounts a built frontend with SPA fallback when dir exists.
func serveStatic(router *gin.Engine, dir string) {
	if _, err := os.Stat(dir); err != nil {
		return
	}

	router.Static("/assets", dir+"/assets")
	router.GET("/", func(c *gin.Context) {
		c.File(dir + "/index.html")
	})

	router.NoRoute(func(c *gin.Context) {
		path := dir + c.Request.URL.Path
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/") || strings.HasPrefix(c.Request.URL.Path, "/assets/") {
			c.Status(http.StatusNotFound)
			return
		}

		c.File(dir + "/index.html")
	})
}
