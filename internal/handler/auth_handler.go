package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/TaskFlow/internal/domain"
	"github.com/GoArmGo/TaskFlow/internal/usecase"
	"github.com/google/uuid"
)

// AuthHandler — обработчик HTTP-запросов регистрации и входа.
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler создаёт новый экземпляр AuthHandler.
func NewAuthHandler(uc usecase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authUseCase: uc, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type userView struct {
	Email string `json:"email"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

// Register — регистрирует нового пользователя.
// POST /auth/register, тело {email, password}, успех — 201 {id, email}.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode register request", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body.", h.logger)
		return
	}

	user, err := h.authUseCase.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			respondWithError(w, http.StatusBadRequest, "User already exists.", h.logger)
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, "Invalid email or password.", h.logger)
		default:
			h.logger.Error("failed to register user", "error", err)
			respondWithError(w, http.StatusInternalServerError, "Registration error.", h.logger)
		}
		return
	}

	h.logger.Info("user registered", "user_id", user.ID)
	respondWithJSON(w, http.StatusCreated, registerResponse{ID: user.ID, Email: user.Email}, h.logger)
}

// Login — проверяет учётные данные и возвращает токен сессии.
// POST /auth/login, тело {email, password}, успех — 200 {token, user:{email}}.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode login request", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body.", h.logger)
		return
	}

	token, user, err := h.authUseCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "User not found", h.logger)
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondWithError(w, http.StatusUnauthorized, "Invalid password", h.logger)
		default:
			h.logger.Error("failed to login user", "error", err)
			respondWithError(w, http.StatusInternalServerError, "Login error", h.logger)
		}
		return
	}

	h.logger.Info("user logged in", "user_id", user.ID)
	respondWithJSON(w, http.StatusOK, loginResponse{Token: token, User: userView{Email: user.Email}}, h.logger)
}
