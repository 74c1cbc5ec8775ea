package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/yukikurage/taskmanager-api/internal/config"
	"github.com/yukikurage/taskmanager-api/internal/constants"
	"github.com/yukikurage/taskmanager-api/internal/database"
	apierrors "github.com/yukikurage/taskmanager-api/internal/errors"
	"github.com/yukikurage/taskmanager-api/internal/handlers"
	"github.com/yukikurage/taskmanager-api/internal/middleware"
	"github.com/yukikurage/taskmanager-api/internal/repository"
	"github.com/yukikurage/taskmanager-api/internal/services"
	"gorm.io/gorm"
)

const readHeaderTimeout = 10 * time.Second

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Log    *slog.Logger
}

// New wires repositories, services and handlers onto a fresh gin engine.
// The caller owns db and must have migrated it.
func New(cfg *config.Config, db *gorm.DB, log *slog.Logger) *Server {
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	userService := services.NewUserService(userRepo, cfg.UserDeleteMode == config.DeleteModeLegacy)
	taskService := services.NewTaskService(taskRepo)

	userHandler := handlers.NewUserHandler(userService, log)
	taskHandler := handlers.NewTaskHandler(taskService)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log))

	requireID := middleware.RequireID(constants.ParamID)

	users := r.Group("/users")
	{
		users.GET("/", userHandler.ListUsers)
		users.GET("/:id", requireID, userHandler.GetUser)
		users.GET("/:id/tasks", requireID, userHandler.ListUserTasks)
		users.POST("/create", userHandler.CreateUser)
		users.PUT("/update/:id", requireID, userHandler.UpdateUser)
		users.DELETE("/delete/:id", requireID, userHandler.DeleteUser)
	}

	tasks := r.Group("/tasks")
	{
		tasks.GET("/", taskHandler.ListTasks)
		tasks.GET("/:id", requireID, taskHandler.GetTask)
		tasks.POST("/create", taskHandler.CreateTask)
		tasks.PUT("/update/:id", requireID, taskHandler.UpdateTask)
		tasks.DELETE("/delete/:id", requireID, taskHandler.DeleteTask)
	}

	r.GET("/health", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), db); err != nil {
			_ = c.Error(err)
			apierrors.ServiceUnavailable(c, "Database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		Log:    log,
	}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then drains
// in-flight requests for at most Config.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              s.Config.Address(),
		Handler:           s.Engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Log.Info("http server listening", "address", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.Log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.Log.Info("server exited")
	return nil
}
