package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	_ "github.com/yukikurage/taskmanager-api/docs"
	"github.com/yukikurage/taskmanager-api/internal/config"
	"github.com/yukikurage/taskmanager-api/internal/database"
	"github.com/yukikurage/taskmanager-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	log := mustMakeLogger(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Error("failed to connect to database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db, cfg.TaskSlugUnique); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	log.Info("database ready", "driver", cfg.DBDriver, "task_slug_unique", cfg.TaskSlugUnique)

	s := server.New(cfg, db, log)
	if err := s.Run(context.Background()); err != nil {
		log.Error("server stopped unexpectedly", "error", err)
		os.Exit(1)
	}
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
