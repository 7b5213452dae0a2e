package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"strength-api/internal/domain/shared"
	"strength-api/internal/handler/response"
	"strength-api/internal/usecase/pipeline"
	useruc "strength-api/internal/usecase/user"
	"strength-api/pkg/token"
)

// Handler обрабатывает HTTP-запросы, связанные с пользователем:
// регистрация, вход, подтверждение email и повторная отправка письма.
type Handler struct {
	register *pipeline.Pipeline[useruc.CreateUserCommand, shared.Unit]
	login    *pipeline.Pipeline[useruc.LoginUserCommand, token.AuthToken]
	verify   *pipeline.Pipeline[useruc.VerifyUserCommand, shared.Unit]
	resend   *pipeline.Pipeline[useruc.SendVerificationEmailCommand, string]
}

// NewHandler создаёт новый UserHandler поверх конвейеров команд.
func NewHandler(
	register *pipeline.Pipeline[useruc.CreateUserCommand, shared.Unit],
	login *pipeline.Pipeline[useruc.LoginUserCommand, token.AuthToken],
	verify *pipeline.Pipeline[useruc.VerifyUserCommand, shared.Unit],
	resend *pipeline.Pipeline[useruc.SendVerificationEmailCommand, string],
) *Handler {
	return &Handler{
		register: register,
		login:    login,
		verify:   verify,
		resend:   resend,
	}
}

// Register обрабатывает регистрацию пользователя.
//
//	@Summary	Регистрация пользователя
//	@Tags		user
//	@Accept		json
//	@Produce	json
//	@Param		request	body		RegisterRequest	true	"Данные регистрации"
//	@Success	200		{object}	response.MessageResponse
//	@Failure	400		{object}	response.ErrorDetails
//	@Failure	500		{object}	response.ErrorDetails
//	@Router		/api/user/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	cmd := useruc.CreateUserCommand{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}

	result := h.register.Execute(c.Request.Context(), cmd)
	if result.IsFailure() {
		response.FromResult(c, result)
		return
	}

	response.Message(c, http.StatusOK, "A verification link was sent to your email.")
}

// Login обрабатывает вход пользователя по email/паролю.
//
//	@Summary	Вход по email и паролю
//	@Tags		user
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginRequest	true	"Учётные данные"
//	@Success	200		{object}	LoginResponse
//	@Failure	400		{object}	response.ErrorDetails
//	@Failure	401		{object}	response.ErrorDetails
//	@Failure	404		{object}	response.ErrorDetails
//	@Router		/api/user/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	cmd := useruc.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result := h.login.Execute(c.Request.Context(), cmd)
	if result.IsFailure() {
		response.FromResult(c, result)
		return
	}

	authToken := result.Value()
	c.JSON(http.StatusOK, LoginResponse{
		TokenType: authToken.TokenType,
		Token:     authToken.Token,
		ExpiresAt: authToken.ExpiresAt,
	})
}

// Verify обрабатывает подтверждение email по токену из письма.
// Токен приходит query-параметром, потому что ссылка открывается из письма.
//
//	@Summary	Подтверждение email
//	@Tags		user
//	@Produce	json
//	@Param		verificationToken	query		string	true	"Токен подтверждения"
//	@Success	200					{object}	response.MessageResponse
//	@Failure	400					{object}	response.ErrorDetails
//	@Failure	409					{object}	response.ErrorDetails
//	@Router		/api/user/verify [get]
func (h *Handler) Verify(c *gin.Context) {
	cmd := useruc.VerifyUserCommand{
		VerificationToken: c.Query("verificationToken"),
	}

	result := h.verify.Execute(c.Request.Context(), cmd)
	if result.IsFailure() {
		response.FromResult(c, result)
		return
	}

	response.Message(c, http.StatusOK, "User successfully verified. You can now log in!")
}

// SendVerificationEmail обрабатывает повторную отправку письма подтверждения.
//
//	@Summary	Повторная отправка письма подтверждения
//	@Tags		user
//	@Accept		json
//	@Produce	json
//	@Param		request	body		SendVerificationEmailRequest	true	"Email пользователя"
//	@Success	200		{object}	response.MessageResponse
//	@Failure	400		{object}	response.ErrorDetails
//	@Failure	404		{object}	response.ErrorDetails
//	@Failure	409		{object}	response.ErrorDetails
//	@Router		/api/user/send-verification-email [post]
func (h *Handler) SendVerificationEmail(c *gin.Context) {
	var req SendVerificationEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	cmd := useruc.SendVerificationEmailCommand{Email: req.Email}

	result := h.resend.Execute(c.Request.Context(), cmd)
	if result.IsFailure() {
		response.FromResult(c, result)
		return
	}

	response.Message(c, http.StatusOK, result.Value())
}
