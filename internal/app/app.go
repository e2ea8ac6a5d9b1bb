package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/TaskFlow/internal/config"
	"github.com/GoArmGo/TaskFlow/internal/usecase"
	"github.com/jmoiron/sqlx"
)

// App — собранное приложение: конфигурация, зависимости и HTTP-сервер.
type App struct {
	Config      *config.Config
	logger      *slog.Logger
	db          *sqlx.DB
	authUseCase usecase.AuthUseCase
	taskUseCase usecase.TaskUseCase
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	db *sqlx.DB,
	authUseCase usecase.AuthUseCase,
	taskUseCase usecase.TaskUseCase,
) *App {
	return &App{
		Config:      cfg,
		logger:      logger,
		db:          db,
		authUseCase: authUseCase,
		taskUseCase: taskUseCase,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := runServer(ctx, a.Config, a.logger, a.authUseCase, a.taskUseCase)

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	return err
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}
	return nil
}
