package auth

import (
	"time"

	"github.com/GoArmGo/TaskFlow/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims — утверждения токена: стандартный набор плюс ID пользователя.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет JWT-токены сессий (HS256).
// Проверка не обращается к бд: достаточно подписи и срока действия.
type TokenManager struct {
	secretKey []byte
	tokenTTL  time.Duration
}

// NewTokenManager создаёт TokenManager с процессным секретом и временем жизни токена.
func NewTokenManager(secretKey []byte, tokenTTL time.Duration) *TokenManager {
	return &TokenManager{secretKey: secretKey, tokenTTL: tokenTTL}
}

// Issue выпускает подписанный токен для пользователя со сроком действия tokenTTL.
func (m *TokenManager) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Verify проверяет подпись и срок действия токена и возвращает ID пользователя.
// Любая ошибка разбора сводится к domain.ErrInvalidToken — детали
// клиенту не раскрываются.
func (m *TokenManager) Verify(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return m.secretKey, nil
	})
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	if !token.Valid {
		return uuid.Nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	return userID, nil
}
