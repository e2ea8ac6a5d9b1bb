package domain

import "errors"

// Ошибки доменного уровня. Обработчики HTTP сопоставляют их со статус-кодами
// через errors.Is, хранилища и usecase-слой только оборачивают их контекстом.
var (
	// ErrInvalidInput — некорректные входные данные (пустой email/пароль/заголовок задачи).
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmailTaken — попытка регистрации с уже занятым email.
	ErrEmailTaken = errors.New("email already taken")

	// ErrUserNotFound — пользователь с таким email не найден.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials — пароль не совпал с сохранённым хэшом.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен повреждён, подпись не сходится или срок действия истёк.
	ErrInvalidToken = errors.New("invalid or expired token")
)
