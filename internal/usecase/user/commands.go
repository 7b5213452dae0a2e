// Package user содержит команды и обработчики, связанные с пользователем:
// регистрация, логин, подтверждение email и повторная отправка письма
// подтверждения.
package user

import (
	"context"

	userdomain "strength-api/internal/domain/user"
	"strength-api/pkg/token"
)

// CreateUserCommand — команда регистрации пользователя.
// Команды создаются на границе (HTTP) и не мутируются.
type CreateUserCommand struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginUserCommand — команда входа по email/паролю.
type LoginUserCommand struct {
	Email    string
	Password string
}

// VerifyUserCommand — команда подтверждения email по токену из письма.
type VerifyUserCommand struct {
	VerificationToken string
}

// SendVerificationEmailCommand — команда повторной отправки письма
// подтверждения.
type SendVerificationEmailCommand struct {
	Email string
}

// EmailSender описывает контракт отправки письма подтверждения со ссылкой,
// содержащей токен.
type EmailSender interface {
	SendVerificationEmail(ctx context.Context, email, verificationToken string) error
}

// TokenIssuer описывает контракт выдачи подписанного токена для
// пользователя с загруженными ролями.
type TokenIssuer interface {
	Create(u *userdomain.User) (*token.AuthToken, error)
}
