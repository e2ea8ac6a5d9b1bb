package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/TaskFlow/internal/domain"
	"github.com/GoArmGo/TaskFlow/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TaskHandler — обработчик HTTP-запросов для работы с задачами.
// Все маршруты защищены: ID владельца берётся из контекста запроса,
// куда его кладёт Authenticator.
type TaskHandler struct {
	taskUseCase usecase.TaskUseCase
	logger      *slog.Logger
}

// NewTaskHandler создаёт новый экземпляр TaskHandler.
func NewTaskHandler(uc usecase.TaskUseCase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{taskUseCase: uc, logger: logger}
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateStatusRequest struct {
	Status domain.TaskStatus `json:"status"`
}

// ListTasks — возвращает все задачи текущего пользователя, новые первыми.
// GET /tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.", h.logger)
		return
	}

	tasks, err := h.taskUseCase.ListTasks(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("failed to list tasks", "user_id", ownerID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Could not fetch tasks.", h.logger)
		return
	}

	// Пустой список сериализуем как [], а не null
	if tasks == nil {
		tasks = []domain.Task{}
	}

	respondWithJSON(w, http.StatusOK, tasks, h.logger)
}

// CreateTask — создаёт задачу текущего пользователя со статусом pending.
// POST /tasks, тело {title, description}, успех — 201 Task.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.", h.logger)
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode create task request", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body.", h.logger)
		return
	}

	task, err := h.taskUseCase.CreateTask(r.Context(), ownerID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, "Title must not be empty.", h.logger)
			return
		}
		h.logger.Error("failed to create task", "user_id", ownerID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Could not create task.", h.logger)
		return
	}

	h.logger.Info("task created", "task_id", task.ID, "user_id", ownerID)
	respondWithJSON(w, http.StatusCreated, task, h.logger)
}

// UpdateTaskStatus — меняет статус задачи текущего пользователя.
// PUT /tasks/{id}, тело {status}. Для чужой или несуществующей задачи
// возвращает 200 с телом null — как и исходная версия сервиса.
func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.", h.logger)
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Warn("invalid task id parameter", "id", chi.URLParam(r, "id"), "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid task id.", h.logger)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode update status request", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body.", h.logger)
		return
	}

	task, err := h.taskUseCase.UpdateTaskStatus(r.Context(), ownerID, taskID, req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, "Status must be 'pending' or 'completed'.", h.logger)
			return
		}
		h.logger.Error("failed to update task status", "task_id", taskID, "user_id", ownerID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Could not update task.", h.logger)
		return
	}
	if task == nil {
		respondWithJSON(w, http.StatusOK, nil, h.logger)
		return
	}

	h.logger.Info("task status updated", "task_id", task.ID, "user_id", ownerID, "status", task.Status)
	respondWithJSON(w, http.StatusOK, task, h.logger)
}

// DeleteTask — удаляет задачу текущего пользователя.
// DELETE /tasks/{id}. Повторное удаление — no-op, ответ тот же.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.", h.logger)
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Warn("invalid task id parameter", "id", chi.URLParam(r, "id"), "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid task id.", h.logger)
		return
	}

	if err := h.taskUseCase.DeleteTask(r.Context(), ownerID, taskID); err != nil {
		h.logger.Error("failed to delete task", "task_id", taskID, "user_id", ownerID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Could not delete task.", h.logger)
		return
	}

	h.logger.Info("task deleted", "task_id", taskID, "user_id", ownerID)
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"}, h.logger)
}
