package user

import (
	"context"
	"errors"
	"net/http"

	"strength-api/internal/domain/apperror"
	"strength-api/internal/domain/shared"
	"strength-api/internal/repository/interfaces"
	"strength-api/pkg/password"
	"strength-api/pkg/token"
)

// LoginUserHandler выполняет вход по email/паролю и выдаёт подписанный токен.
type LoginUserHandler struct {
	users  interfaces.UserRepository
	tokens TokenIssuer
}

// NewLoginUserHandler создаёт обработчик логина.
func NewLoginUserHandler(users interfaces.UserRepository, tokens TokenIssuer) *LoginUserHandler {
	return &LoginUserHandler{users: users, tokens: tokens}
}

// Handle выполняет вход.
//
// Пароль проверяется до статуса подтверждения email: без верного пароля
// нельзя узнать, подтверждён ли аккаунт.
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) shared.Result[token.AuthToken] {
	u, err := h.users.GetWithRolesByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return shared.WithErrorsFor[token.AuthToken](http.StatusNotFound, apperror.UserNotFound)
		}
		return shared.WithErrorsFor[token.AuthToken](http.StatusInternalServerError, apperror.InternalError)
	}

	if !password.Verify(cmd.Password, u.PasswordHash, u.PasswordSalt) {
		return shared.WithErrorsFor[token.AuthToken](http.StatusUnauthorized, apperror.UserInvalidPassword)
	}

	if !u.IsVerified() {
		return shared.WithErrorsFor[token.AuthToken](http.StatusUnauthorized, apperror.UserNotVerified)
	}

	authToken, err := h.tokens.Create(u)
	if err != nil {
		return shared.WithErrorsFor[token.AuthToken](http.StatusInternalServerError, apperror.InternalError)
	}

	return shared.SuccessWith(*authToken)
}
