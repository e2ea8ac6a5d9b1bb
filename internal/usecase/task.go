package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/GoArmGo/TaskFlow/internal/core/ports"
	"github.com/GoArmGo/TaskFlow/internal/domain"
	"github.com/google/uuid"
)

// TaskUseCase определяет интерфейс бизнес-логики работы с задачами.
// Все операции принимают ownerID, уже извлечённый из токена шлюзом авторизации.
type TaskUseCase interface {
	// ListTasks возвращает все задачи владельца, новые первыми.
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error)

	// CreateTask создаёт задачу со статусом pending.
	// Пустой заголовок — domain.ErrInvalidInput.
	CreateTask(ctx context.Context, ownerID uuid.UUID, title, description string) (*domain.Task, error)

	// UpdateTaskStatus меняет статус задачи владельца.
	// Если задача не найдена или чужая, возвращает (nil, nil).
	UpdateTaskStatus(ctx context.Context, ownerID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error)

	// DeleteTask удаляет задачу владельца. Повторное удаление — no-op.
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
}

// taskUseCase implements TaskUseCase
type taskUseCase struct {
	taskStorage ports.TaskStorage
}

// NewTaskUseCase создает новый экземпляр TaskUseCase
func NewTaskUseCase(taskStorage ports.TaskStorage) TaskUseCase {
	return &taskUseCase{taskStorage: taskStorage}
}

func (uc *taskUseCase) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	return uc.taskStorage.ListTasksByOwner(ctx, ownerID)
}

func (uc *taskUseCase) CreateTask(ctx context.Context, ownerID uuid.UUID, title, description string) (*domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title: %w", domain.ErrInvalidInput)
	}

	task := &domain.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      domain.StatusPending,
		UserID:      ownerID,
	}

	if err := uc.taskStorage.SaveTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (uc *taskUseCase) UpdateTaskStatus(ctx context.Context, ownerID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("status %q: %w", status, domain.ErrInvalidInput)
	}

	return uc.taskStorage.UpdateTaskStatus(ctx, ownerID, taskID, status)
}

func (uc *taskUseCase) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	// Удаление идемпотентно: отсутствие строки не считается ошибкой.
	_, err := uc.taskStorage.DeleteTask(ctx, ownerID, taskID)
	return err
}
