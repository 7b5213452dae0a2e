package user

import "time"

// RegisterRequest описывает тело запроса регистрации пользователя.
// Содержательная валидация (формат email, длина пароля, совпадение паролей)
// выполняется стадией валидации конвейера, binding здесь только про
// присутствие полей.
type RegisterRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// LoginRequest описывает тело запроса логина.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse — ответ при успешной аутентификации.
type LoginResponse struct {
	TokenType string    `json:"tokenType"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SendVerificationEmailRequest описывает тело запроса повторной отправки
// письма подтверждения.
type SendVerificationEmailRequest struct {
	Email string `json:"email" binding:"required"`
}
