package usecase

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/GoArmGo/TaskFlow/internal/auth"
	"github.com/GoArmGo/TaskFlow/internal/core/ports"
	"github.com/GoArmGo/TaskFlow/internal/domain"
	"github.com/google/uuid"
)

// bcrypt обрезает пароли длиннее 72 байт, такие отклоняем сразу.
const maxPasswordLength = 72

// AuthUseCase определяет интерфейс бизнес-логики аутентификации.
type AuthUseCase interface {
	// Register создаёт нового пользователя с солёным хэшом пароля.
	// Возвращает domain.ErrInvalidInput или domain.ErrEmailTaken.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// Login проверяет учётные данные и выпускает токен сессии.
	// Возвращает domain.ErrUserNotFound или domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// VerifyToken проверяет токен и возвращает ID пользователя.
	// Работает без обращения к хранилищу — только проверка подписи.
	VerifyToken(token string) (uuid.UUID, error)
}

// authUseCase implements AuthUseCase
type authUseCase struct {
	userStorage ports.UserStorage
	hasher      *auth.PasswordHasher
	tokens      *auth.TokenManager
}

// NewAuthUseCase создает новый экземпляр AuthUseCase
func NewAuthUseCase(
	userStorage ports.UserStorage,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
) AuthUseCase {
	return &authUseCase{
		userStorage: userStorage,
		hasher:      hasher,
		tokens:      tokens,
	}
}

// Register валидирует email и пароль, хэширует пароль и сохраняет пользователя.
// Открытый пароль не сохраняется и не логируется.
func (uc *authUseCase) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("email: %w", domain.ErrInvalidInput)
	}
	if password == "" || len(password) > maxPasswordLength {
		return nil, fmt.Errorf("password: %w", domain.ErrInvalidInput)
	}

	passwordHash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при хэшировании пароля: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := uc.userStorage.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login ищет пользователя по email и сверяет пароль с хэшом.
// На успех выпускает подписанный токен с ID пользователя и сроком действия.
func (uc *authUseCase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := uc.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("usecase: ошибка при поиске пользователя: %w", err)
	}
	if user == nil {
		return "", nil, domain.ErrUserNotFound
	}

	if !uc.hasher.Verify(user.PasswordHash, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("usecase: ошибка при выпуске токена: %w", err)
	}

	return token, user, nil
}

// VerifyToken делегирует проверку TokenManager.
func (uc *authUseCase) VerifyToken(token string) (uuid.UUID, error) {
	return uc.tokens.Verify(token)
}
