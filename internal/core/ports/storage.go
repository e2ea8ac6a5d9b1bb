package ports

import (
	"context"

	"github.com/GoArmGo/TaskFlow/internal/domain"
	"github.com/google/uuid"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей.
type UserStorage interface {
	// CreateUser сохраняет нового пользователя.
	// Возвращает domain.ErrEmailTaken, если email уже занят.
	CreateUser(ctx context.Context, user *domain.User) error

	// GetUserByEmail получает пользователя по email.
	// Если пользователь не найден, возвращает (nil, nil).
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TaskStorage определяет методы для взаимодействия с хранилищем задач.
// Все операции чтения/изменения фильтруются по владельцу прямо в запросе к бд,
// проверка владельца в коде приложения не допускается.
type TaskStorage interface {
	// SaveTask сохраняет новую задачу.
	SaveTask(ctx context.Context, task *domain.Task) error

	// ListTasksByOwner возвращает все задачи владельца, новые первыми.
	ListTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error)

	// UpdateTaskStatus меняет статус задачи одним условным запросом (id + владелец).
	// Если задача не найдена или принадлежит другому пользователю, возвращает (nil, nil).
	UpdateTaskStatus(ctx context.Context, ownerID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error)

	// DeleteTask удаляет задачу одним условным запросом (id + владелец).
	// Возвращает true, если строка действительно была удалена.
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) (bool, error)
}
