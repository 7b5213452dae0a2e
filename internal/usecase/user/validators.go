package user

import (
	"context"
	"errors"

	"strength-api/internal/domain/apperror"
	"strength-api/internal/domain/shared"
	"strength-api/internal/repository/interfaces"
	"strength-api/internal/usecase/pipeline"
)

// CreateUserValidator — набор правил регистрации: формат и уникальность
// email, минимальная длина пароля, совпадение паролей.
type CreateUserValidator struct {
	users interfaces.UserRepository
}

var _ pipeline.Validator[CreateUserCommand] = (*CreateUserValidator)(nil)

// NewCreateUserValidator создаёт валидатор регистрации.
// Репозиторий нужен для асинхронной проверки уникальности email.
func NewCreateUserValidator(users interfaces.UserRepository) *CreateUserValidator {
	return &CreateUserValidator{users: users}
}

// Validate выполняет правила. Проверка уникальности email обращается к БД
// прямо в стадии валидации; гонка с конкурентной регистрацией того же
// email допустима — жёсткой гарантией остаётся уникальный индекс.
func (v *CreateUserValidator) Validate(ctx context.Context, cmd CreateUserCommand) []shared.CustomError {
	var errs []shared.CustomError

	errs = pipeline.Append(errs, pipeline.Required("Email", cmd.Email))
	if cmd.Email != "" {
		errs = pipeline.Append(errs, pipeline.Email("Email", cmd.Email))
	}

	errs = pipeline.Append(errs, pipeline.MinLen("Password", cmd.Password, 8))
	errs = pipeline.Append(errs, pipeline.Equal(
		"ConfirmPassword", cmd.ConfirmPassword, cmd.Password, apperror.UserInvalidConfirmPassword.Description))

	if cmd.Email != "" {
		if _, err := v.users.GetByEmail(ctx, cmd.Email); err == nil {
			errs = append(errs, shared.CustomError{Code: "Email", Description: apperror.UserAlreadyExists.Description})
		} else if !errors.Is(err, interfaces.ErrNotFound) {
			errs = append(errs, shared.CustomError{Code: "Email", Description: apperror.InternalError.Description})
		}
	}

	return errs
}

// LoginUserValidator проверяет формат email команды логина.
type LoginUserValidator struct{}

var _ pipeline.Validator[LoginUserCommand] = (*LoginUserValidator)(nil)

// NewLoginUserValidator создаёт валидатор логина.
func NewLoginUserValidator() *LoginUserValidator {
	return &LoginUserValidator{}
}

// Validate выполняет правила.
func (v *LoginUserValidator) Validate(_ context.Context, cmd LoginUserCommand) []shared.CustomError {
	var errs []shared.CustomError
	errs = pipeline.Append(errs, pipeline.Email("Email", cmd.Email))
	return errs
}

// VerifyUserValidator проверяет наличие токена подтверждения.
type VerifyUserValidator struct{}

var _ pipeline.Validator[VerifyUserCommand] = (*VerifyUserValidator)(nil)

// NewVerifyUserValidator создаёт валидатор подтверждения email.
func NewVerifyUserValidator() *VerifyUserValidator {
	return &VerifyUserValidator{}
}

// Validate выполняет правила.
func (v *VerifyUserValidator) Validate(_ context.Context, cmd VerifyUserCommand) []shared.CustomError {
	var errs []shared.CustomError
	errs = pipeline.Append(errs, pipeline.Required("VerificationToken", cmd.VerificationToken))
	return errs
}

// SendVerificationEmailValidator проверяет email команды повторной отправки.
type SendVerificationEmailValidator struct{}

var _ pipeline.Validator[SendVerificationEmailCommand] = (*SendVerificationEmailValidator)(nil)

// NewSendVerificationEmailValidator создаёт валидатор повторной отправки.
func NewSendVerificationEmailValidator() *SendVerificationEmailValidator {
	return &SendVerificationEmailValidator{}
}

// Validate выполняет правила.
func (v *SendVerificationEmailValidator) Validate(_ context.Context, cmd SendVerificationEmailCommand) []shared.CustomError {
	var errs []shared.CustomError
	errs = pipeline.Append(errs, pipeline.Required("Email", cmd.Email))
	if cmd.Email != "" {
		errs = pipeline.Append(errs, pipeline.Email("Email", cmd.Email))
	}
	return errs
}
