package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/TaskFlow/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// TaskStorage реализует интерфейс ports.TaskStorage поверх PostgreSQL.
// Условие по владельцу входит в каждый запрос: чужая задача неотличима
// от несуществующей уже на уровне SQL.
type TaskStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewTaskStorage создает новый экземпляр TaskStorage
func NewTaskStorage(db *sqlx.DB, logger *slog.Logger) *TaskStorage {
	return &TaskStorage{db: db, logger: logger}
}

// SaveTask сохраняет новую задачу в бд.
func (s *TaskStorage) SaveTask(ctx context.Context, task *domain.Task) error {
	start := time.Now()

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	now := time.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = now
	}

	query := `
	INSERT INTO tasks (id, title, description, status, user_id, created_at, updated_at)
	VALUES (:id, :title, :description, :status, :user_id, :created_at, :updated_at)
	`

	_, err := s.db.NamedExecContext(ctx, query, task)
	if err != nil {
		s.logger.Error("failed to save task", "task_id", task.ID, "user_id", task.UserID, "error", err)
		return fmt.Errorf("ошибка при сохранении задачи: %w", err)
	}

	s.logger.Info("task saved successfully",
		"task_id", task.ID,
		"user_id", task.UserID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// ListTasksByOwner получает все задачи владельца, новые первыми.
func (s *TaskStorage) ListTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	start := time.Now()

	q := `
	SELECT * FROM tasks
	WHERE user_id = $1
	ORDER BY created_at DESC
	`

	var tasks []domain.Task
	if err := s.db.SelectContext(ctx, &tasks, q, ownerID); err != nil {
		s.logger.Error("failed to list tasks", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("ошибка при получении списка задач: %w", err)
	}

	s.logger.Info("listed tasks successfully",
		"user_id", ownerID,
		"count", len(tasks),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return tasks, nil
}

// UpdateTaskStatus меняет статус задачи одним условным запросом по id и владельцу.
func (s *TaskStorage) UpdateTaskStatus(ctx context.Context, ownerID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error) {
	start := time.Now()

	var task domain.Task
	query := `
	UPDATE tasks
	SET status = $1, updated_at = now()
	WHERE id = $2 AND user_id = $3
	RETURNING *
	`

	err := s.db.GetContext(ctx, &task, query, status, taskID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("task not found or not owned", "task_id", taskID, "user_id", ownerID)
			return nil, nil
		}
		s.logger.Error("failed to update task status", "task_id", taskID, "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("ошибка при обновлении статуса задачи: %w", err)
	}

	s.logger.Info("task status updated",
		"task_id", taskID,
		"user_id", ownerID,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &task, nil
}

// DeleteTask удаляет задачу одним условным запросом по id и владельцу.
func (s *TaskStorage) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) (bool, error) {
	start := time.Now()

	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, taskID, ownerID)
	if err != nil {
		s.logger.Error("failed to delete task", "task_id", taskID, "user_id", ownerID, "error", err)
		return false, fmt.Errorf("ошибка при удалении задачи: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ошибка при получении числа удалённых строк: %w", err)
	}

	s.logger.Info("task delete completed",
		"task_id", taskID,
		"user_id", ownerID,
		"deleted", affected > 0,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return affected > 0, nil
}
