package user

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"strength-api/internal/cache"
	"strength-api/internal/domain/apperror"
	"strength-api/internal/domain/shared"
	"strength-api/internal/repository/interfaces"
)

// SendVerificationEmailHandler повторно отправляет письмо подтверждения
// с троттлингом по email: в пределах окна повторное письмо не уходит,
// вместо него возвращается сообщение с оставшимся временем.
type SendVerificationEmailHandler struct {
	users       interfaces.UserRepository
	emailSender EmailSender
	store       cache.Store
	throttle    time.Duration
}

// NewSendVerificationEmailHandler создаёт обработчик повторной отправки.
// store — процессный синглтон, передаётся явно.
func NewSendVerificationEmailHandler(
	users interfaces.UserRepository,
	emailSender EmailSender,
	store cache.Store,
	throttle time.Duration,
) *SendVerificationEmailHandler {
	return &SendVerificationEmailHandler{
		users:       users,
		emailSender: emailSender,
		store:       store,
		throttle:    throttle,
	}
}

// Handle отправляет письмо подтверждения либо сообщает, через сколько минут
// можно повторить. Запись в кэше делается только после успешной отправки.
func (h *SendVerificationEmailHandler) Handle(ctx context.Context, cmd SendVerificationEmailCommand) shared.Result[string] {
	if sentAt, ok := h.store.Get(cmd.Email); ok {
		remaining := h.throttle.Minutes() - time.Since(sentAt).Minutes()
		return shared.SuccessWith(fmt.Sprintf(
			"Email is already sent. Try again after %v minutes.", math.Round(remaining*100)/100))
	}

	u, err := h.users.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return shared.WithErrorsFor[string](http.StatusNotFound, apperror.UserNotFound)
		}
		return shared.WithErrorsFor[string](http.StatusInternalServerError, apperror.InternalError)
	}

	if u.IsVerified() {
		return shared.WithErrorsFor[string](http.StatusConflict, apperror.UserAlreadyVerified)
	}

	if err := h.emailSender.SendVerificationEmail(ctx, u.Email, u.VerificationToken); err != nil {
		return shared.WithErrorsFor[string](http.StatusInternalServerError, apperror.UserVerificationEmailNotSent)
	}

	h.store.Set(cmd.Email, time.Now().UTC(), h.throttle)

	return shared.SuccessWith("An email with a verification link was sent!")
}
