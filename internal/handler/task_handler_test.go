package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/TaskFlow/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// stubTaskUseCase — заглушка usecase.TaskUseCase; счётчик calls позволяет
// проверить, что отклонённые шлюзом запросы не доходят до бизнес-логики.
type stubTaskUseCase struct {
	calls int

	tasks   []domain.Task
	listErr error

	created   *domain.Task
	createErr error

	updated   *domain.Task
	updateErr error

	deleteErr error
}

func (s *stubTaskUseCase) ListTasks(_ context.Context, _ uuid.UUID) ([]domain.Task, error) {
	s.calls++
	return s.tasks, s.listErr
}

func (s *stubTaskUseCase) CreateTask(_ context.Context, _ uuid.UUID, _, _ string) (*domain.Task, error) {
	s.calls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubTaskUseCase) UpdateTaskStatus(_ context.Context, _, _ uuid.UUID, _ domain.TaskStatus) (*domain.Task, error) {
	s.calls++
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.updated, nil
}

func (s *stubTaskUseCase) DeleteTask(_ context.Context, _, _ uuid.UUID) error {
	s.calls++
	return s.deleteErr
}

// newTasksRouter собирает маршруты /tasks так же, как их монтирует сервер.
func newTasksRouter(auth *stubAuthUseCase, tasks *stubTaskUseCase) http.Handler {
	logger := testLogger()
	taskHandler := NewTaskHandler(tasks, logger)

	r := chi.NewRouter()
	r.Route("/tasks", func(r chi.Router) {
		r.Use(Authenticator(auth, logger))
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Put("/{id}", taskHandler.UpdateTaskStatus)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})
	return r
}

func TestListTasks_EmptyListSerializesAsArray(t *testing.T) {
	auth := &stubAuthUseCase{verifyUserID: uuid.New()}
	tasks := &stubTaskUseCase{}
	router := newTasksRouter(auth, tasks)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty array body, got %q", body)
	}
}

func TestListTasks_ReturnsOwnerTasks(t *testing.T) {
	owner := uuid.New()
	task := domain.Task{
		ID:        uuid.New(),
		Title:     "Buy milk",
		Status:    domain.StatusPending,
		UserID:    owner,
		CreatedAt: time.Now(),
	}
	auth := &stubAuthUseCase{verifyUserID: owner}
	tasks := &stubTaskUseCase{tasks: []domain.Task{task}}
	router := newTasksRouter(auth, tasks)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var got []domain.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].ID != task.ID {
		t.Errorf("expected task %s in response, got %+v", task.ID, got)
	}
}

func TestTasks_RejectedBeforeBusinessLogic(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		verifyErr  error
		wantStatus int
	}{
		{name: "no token", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "expired token", authHeader: "Bearer expired", verifyErr: domain.ErrInvalidToken, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &stubAuthUseCase{verifyErr: tt.verifyErr}
			tasks := &stubTaskUseCase{}
			router := newTasksRouter(auth, tasks)

			for _, req := range []*http.Request{
				httptest.NewRequest(http.MethodGet, "/tasks", nil),
				httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"x"}`)),
				httptest.NewRequest(http.MethodPut, "/tasks/"+uuid.NewString(), strings.NewReader(`{"status":"completed"}`)),
				httptest.NewRequest(http.MethodDelete, "/tasks/"+uuid.NewString(), nil),
			} {
				if tt.authHeader != "" {
					req.Header.Set("Authorization", tt.authHeader)
				}
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, req)

				if rec.Code != tt.wantStatus {
					t.Errorf("%s %s: expected status %d, got %d", req.Method, req.URL.Path, tt.wantStatus, rec.Code)
				}
			}

			if tasks.calls != 0 {
				t.Errorf("business logic reached %d times for rejected requests", tasks.calls)
			}
		})
	}
}

func TestCreateTask_Success(t *testing.T) {
	owner := uuid.New()
	created := &domain.Task{
		ID:     uuid.New(),
		Title:  "Buy milk",
		Status: domain.StatusPending,
		UserID: owner,
	}
	auth := &stubAuthUseCase{verifyUserID: owner}
	tasks := &stubTaskUseCase{created: created}
	router := newTasksRouter(auth, tasks)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"Buy milk"}`))
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var got domain.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Status != domain.StatusPending {
		t.Errorf("expected status pending, got %s", got.Status)
	}
}

func TestCreateTask_EmptyTitle(t *testing.T) {
	auth := &stubAuthUseCase{verifyUserID: uuid.New()}
	tasks := &stubTaskUseCase{createErr: fmt.Errorf("title: %w", domain.ErrInvalidInput)}
	router := newTasksRouter(auth, tasks)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":""}`))
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestUpdateTaskStatus_NotOwnedReturnsNull(t *testing.T) {
	auth := &stubAuthUseCase{verifyUserID: uuid.New()}
	tasks := &stubTaskUseCase{updated: nil}
	router := newTasksRouter(auth, tasks)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/tasks/"+uuid.NewString(),
		strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "null" {
		t.Errorf("expected null body for foreign task, got %q", body)
	}
}

func TestUpdateTaskStatus_InvalidID(t *testing.T) {
	auth := &stubAuthUseCase{verifyUserID: uuid.New()}
	tasks := &stubTaskUseCase{}
	router := newTasksRouter(auth, tasks)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/tasks/not-a-uuid",
		strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if tasks.calls != 0 {
		t.Error("business logic must not be reached for an invalid id")
	}
}

func TestDeleteTask_ReturnsConfirmation(t *testing.T) {
	auth := &stubAuthUseCase{verifyUserID: uuid.New()}
	tasks := &stubTaskUseCase{}
	router := newTasksRouter(auth, tasks)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/tasks/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["message"] != "Task deleted successfully" {
		t.Errorf("unexpected confirmation message: %q", resp["message"])
	}
}

func TestListTasks_StoreFailure(t *testing.T) {
	auth := &stubAuthUseCase{verifyUserID: uuid.New()}
	tasks := &stubTaskUseCase{listErr: fmt.Errorf("ошибка при получении списка задач: connection refused")}
	router := newTasksRouter(auth, tasks)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	// Детали ошибки хранилища не уходят клиенту
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("store error details must not leak to the client")
	}
}
