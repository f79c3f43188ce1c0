package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kanbanTracker/internal/auth"
	"kanbanTracker/internal/config"
	"kanbanTracker/internal/handlers"
	"kanbanTracker/internal/logger"
	"kanbanTracker/internal/middleware"
	"kanbanTracker/internal/repository/inmemory"
	"kanbanTracker/internal/repository/postgres"
	"kanbanTracker/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("конфигурация: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Development)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		taskRepo service.TaskRepository
		userRepo service.UserRepository
		pg       *postgres.Storage
	)

	switch cfg.Repository.Type {
	case "inmemory":
		storage := inmemory.NewStorage()
		taskRepo, userRepo = storage, storage
		logger.Info("Репозиторий: inmemory")
	default:
		if err := postgres.Migrate(cfg.Postgres.URL); err != nil {
			logger.Error("Миграции не применились", err)
			os.Exit(1)
		}

		pg, err = postgres.New(ctx, cfg.Postgres)
		if err != nil {
			logger.Error("Подключение к postgres не удалось", err)
			os.Exit(1)
		}
		defer pg.Close()

		taskRepo, userRepo = pg, pg
		logger.Info("Репозиторий: postgres")
	}

	authManager := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	taskService := service.NewTaskService(taskRepo)
	userService := service.NewUserService(userRepo, authManager)

	taskHandler := handlers.NewTaskHandler(taskService)
	authHandler := handlers.NewAuthHandler(userService)
	settingHandler := handlers.NewSettingHandler(userService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.RateLimit(cfg.Server.RateLimitRPM))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register) // POST /auth/register
		r.Post("/login", authHandler.Login)       // POST /auth/login

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authManager))

			r.Get("/profile", authHandler.GetProfile)              // GET /auth/profile
			r.Put("/profile", authHandler.UpdateProfile)           // PUT /auth/profile
			r.Post("/change-password", authHandler.ChangePassword) // POST /auth/change-password
		})
	})

	r.Route("/settings", func(r chi.Router) {
		r.Use(middleware.Auth(authManager))

		r.Get("/", settingHandler.GetSettings)    // GET /settings
		r.Put("/", settingHandler.UpdateSettings) // PUT /settings
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Use(middleware.Auth(authManager))

		r.Get("/", taskHandler.GetTasks)      // GET /tasks
		r.Post("/", taskHandler.PostTask)     // POST /tasks
		r.Get("/stats", taskHandler.GetStats) // GET /tasks/stats

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTaskByID)       // GET /tasks/{id}
			r.Put("/", taskHandler.UpdateTaskByID)    // PUT /tasks/{id}
			r.Delete("/", taskHandler.DeleteTaskByID) // DELETE /tasks/{id}
		})
	})

	r.Get("/health", taskHandler.HealthCheck)

	server := &http.Server{
		Addr:    cfg.ServerAddr(),
		Handler: r,
	}

	go func() {
		logger.Info("Server started", zap.String("addr", cfg.ServerAddr()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Сервер остановился с ошибкой", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown не уложился в таймаут", err)
		return
	}
	logger.Info("Server stopped")
}
