package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus — статус задачи. Хранится в бд как строка.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// Valid проверяет, что статус входит в допустимое множество значений.
func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Task представляет модель задачи пользователя,
// соответствует таблице tasks в бд.
// Каждая задача принадлежит ровно одному пользователю (UserID).
type Task struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Status      TaskStatus `json:"status" db:"status"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
