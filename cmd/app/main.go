package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/BuzzLyutic/taskboard-api/internal/config"
	"github.com/BuzzLyutic/taskboard-api/internal/handler"
	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/repo"
	"github.com/BuzzLyutic/taskboard-api/internal/service"
	"github.com/BuzzLyutic/taskboard-api/internal/store"
	"go.uber.org/zap"
)

func main() {
	// Подключаем логгер
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Загрузка конфигурации
	cfg := config.Load()
	secret := []byte(cfg.JWTSecret)

	// Файловые коллекции — по одному JSON-файлу на ресурс
	users := store.NewCollection[model.User](filepath.Join(cfg.DataDir, "users.json"))
	projects := store.NewCollection[model.Project](filepath.Join(cfg.DataDir, "projects.json"))
	tasks := store.NewCollection[model.Task](filepath.Join(cfg.DataDir, "tasks.json"))

	userRepo := repo.NewUserRepo(users)
	projectRepo := repo.NewProjectRepo(projects)
	taskRepo := repo.NewTaskRepo(tasks)

	authService := service.NewAuthService(userRepo, secret, cfg.TokenTTL)

	authHandler := handler.NewAuthHandler(authService, logger)
	projectHandler := handler.NewProjectHandler(projectRepo, logger)
	taskHandler := handler.NewTaskHandler(taskRepo, logger)
	static := handler.NewStatic(cfg.PublicDir)

	r := handler.NewRouter(secret, authHandler, projectHandler, taskHandler, static)

	srv := http.Server{ // Создаем сервер
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() { // Запуск сервера и обработка ошибок
		logger.Info("Server started at ", zap.String("port", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed: ", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Shutdown error: ", zap.Error(err))
	}
	logger.Info("Server stopped succsessfully!")
}
