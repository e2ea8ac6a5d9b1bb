package di

import (
	"github.com/GoArmGo/TaskFlow/internal/app"
	"github.com/GoArmGo/TaskFlow/internal/auth"
	"github.com/GoArmGo/TaskFlow/internal/config"
	"github.com/GoArmGo/TaskFlow/internal/database/client"
	"github.com/GoArmGo/TaskFlow/internal/database/storage"
	"github.com/GoArmGo/TaskFlow/internal/logger"
	"github.com/GoArmGo/TaskFlow/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации. Без JWT_SECRET и DATABASE_URL env.Parse
	// вернёт ошибку, и процесс не стартует.
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (подключение + миграции)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserStorage(dbClient.DB, slogger)
	taskStorage := storage.NewTaskStorage(dbClient.DB, slogger)

	// 4. Инициализация криптографии: хэшер паролей и менеджер токенов
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL)

	// 5. Инициализация бизнес-логики (usecases)
	authUseCase := usecase.NewAuthUseCase(userStorage, hasher, tokens)
	taskUseCase := usecase.NewTaskUseCase(taskStorage)

	// 6. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient.DB,
		authUseCase,
		taskUseCase,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
