package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher инкапсулирует хэширование паролей через bcrypt.
// bcrypt — адаптивная функция с настраиваемой стоимостью: перебор хэшей
// остаётся дорогим, а сравнение не зависит от содержимого пароля.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher создаёт PasswordHasher с заданной стоимостью.
// При значении вне допустимого диапазона bcrypt использует DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash возвращает солёный bcrypt-хэш пароля. Хэш необратим,
// исходный пароль нигде не сохраняется.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Verify проверяет пароль против сохранённого хэша.
func (h *PasswordHasher) Verify(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
