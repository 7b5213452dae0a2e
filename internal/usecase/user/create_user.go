package user

import (
	"context"
	"errors"
	"net/http"

	"strength-api/internal/domain/apperror"
	"strength-api/internal/domain/shared"
	userdomain "strength-api/internal/domain/user"
	"strength-api/internal/repository/interfaces"
	"strength-api/pkg/password"
	"strength-api/pkg/verification"
)

// CreateUserHandler регистрирует нового пользователя: хеширует пароль,
// создаёт пользователя, назначает роль "user" и отправляет письмо
// подтверждения — всё в одной транзакции.
type CreateUserHandler struct {
	uow         interfaces.UnitOfWork
	emailSender EmailSender
}

// NewCreateUserHandler создаёт обработчик регистрации.
func NewCreateUserHandler(uow interfaces.UnitOfWork, emailSender EmailSender) *CreateUserHandler {
	return &CreateUserHandler{uow: uow, emailSender: emailSender}
}

// Handle выполняет регистрацию.
//
// Отправка письма участвует в транзакции: сбой отправки откатывает уже
// подготовленные записи пользователя и роли, полузарегистрированных
// пользователей не бывает. Обратная сторона: успешно отправленное письмо
// осталось бы «осиротевшим», если бы более поздний шаг цепочки упал.
func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) shared.Result[shared.Unit] {
	hash, salt, err := password.Hash(cmd.Password)
	if err != nil {
		return shared.WithErrors(http.StatusInternalServerError, apperror.InternalError)
	}

	verificationToken, err := verification.GenerateToken()
	if err != nil {
		return shared.WithErrors(http.StatusInternalServerError, apperror.InternalError)
	}

	u := userdomain.NewUser(cmd.Email, hash, salt, verificationToken)

	return h.uow.BeginTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) shared.Result[shared.Unit] {
		if err := repos.Users().Create(ctx, u); err != nil {
			if errors.Is(err, interfaces.ErrEmailExists) {
				return shared.WithErrors(http.StatusBadRequest, apperror.UserAlreadyExists)
			}
			return shared.WithErrors(http.StatusInternalServerError, apperror.UserNotCreated)
		}

		role, err := repos.Roles().GetByName(ctx, userdomain.RoleUser)
		if err != nil {
			return shared.WithErrors(http.StatusInternalServerError, apperror.RoleNotFound)
		}

		if err := repos.UserRoles().Create(ctx, userdomain.NewUserRole(u.ID, *role)); err != nil {
			return shared.WithErrors(http.StatusInternalServerError, apperror.UserRoleNotCreated)
		}

		if err := h.emailSender.SendVerificationEmail(ctx, u.Email, u.VerificationToken); err != nil {
			return shared.WithErrors(http.StatusInternalServerError, apperror.UserVerificationEmailNotSent)
		}

		return shared.Success()
	})
}
