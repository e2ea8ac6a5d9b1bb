package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/GoArmGo/TaskFlow/internal/usecase"
	"github.com/google/uuid"
)

type contextKey string

// userIDKey — ключ, под которым Authenticator кладёт ID пользователя в контекст.
const userIDKey contextKey = "user_id"

// UserIDFromContext возвращает ID пользователя, положенный в контекст Authenticator-ом.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

// Authenticator — middleware-шлюз авторизации для защищённых маршрутов.
// Без заголовка Authorization — 401, с невалидным или истёкшим токеном — 403.
// До бизнес-логики и хранилища такие запросы не доходят.
func Authenticator(auth usecase.AuthUseCase, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.", logger)
				return
			}

			// Принимаем и "Bearer <token>", и голый токен
			token := strings.TrimPrefix(header, "Bearer ")

			userID, err := auth.VerifyToken(token)
			if err != nil {
				logger.Warn("token verification failed", "path", r.URL.Path, "error", err)
				respondWithError(w, http.StatusForbidden, "Invalid or expired token.", logger)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogger — middleware для логирования HTTP-запросов.
func RequestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Оборачиваем ResponseWriter, чтобы знать статус
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}

// responseWriter нужен, чтобы перехватывать код ответа
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
