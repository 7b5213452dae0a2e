package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"strength-api/internal/domain/apperror"
	"strength-api/internal/domain/shared"
	"strength-api/internal/repository/interfaces"
)

// VerifyUserHandler подтверждает email пользователя по токену из письма.
type VerifyUserHandler struct {
	users interfaces.UserRepository
	uow   interfaces.UnitOfWork
}

// NewVerifyUserHandler создаёт обработчик подтверждения email.
func NewVerifyUserHandler(users interfaces.UserRepository, uow interfaces.UnitOfWork) *VerifyUserHandler {
	return &VerifyUserHandler{users: users, uow: uow}
}

// Handle подтверждает email.
//
// Токен после подтверждения не ротируется: повторный вызов с тем же
// токеном упирается в проверку «уже подтверждён» и возвращает Conflict.
func (h *VerifyUserHandler) Handle(ctx context.Context, cmd VerifyUserCommand) shared.Result[shared.Unit] {
	u, err := h.users.GetByVerificationToken(ctx, cmd.VerificationToken)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return shared.WithErrors(http.StatusBadRequest, apperror.UserInvalidVerificationToken)
		}
		return shared.WithErrors(http.StatusInternalServerError, apperror.InternalError)
	}

	if u.IsVerified() {
		return shared.WithErrors(http.StatusConflict, apperror.UserAlreadyVerified)
	}

	u.MarkVerified(time.Now().UTC())

	return h.uow.BeginTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) shared.Result[shared.Unit] {
		if err := repos.Users().Update(ctx, u); err != nil {
			return shared.WithErrors(http.StatusInternalServerError, apperror.InternalError)
		}
		return shared.Success()
	})
}
