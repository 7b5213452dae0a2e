package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"net/url"
	"strings"

	"strength-api/internal/config"
	"strength-api/pkg/logger"
)

// SMTPSender реализует отправку писем через стандартную библиотеку net/smtp.
// Используется для отправки ссылки подтверждения email.
type SMTPSender struct {
	cfg    *config.EmailConfig
	logger logger.Logger
}

// NewSMTPSender создаёт новый SMTP-отправитель на основе EmailConfig.
func NewSMTPSender(cfg *config.EmailConfig, logger logger.Logger) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendVerificationEmail отправляет письмо со ссылкой подтверждения email.
func (s *SMTPSender) SendVerificationEmail(ctx context.Context, email, verificationToken string) error {
	link := fmt.Sprintf("%s/api/user/verify?verificationToken=%s",
		strings.TrimRight(s.cfg.BaseURL, "/"), url.QueryEscape(verificationToken))

	subject := "Verify your email"
	body := fmt.Sprintf("Welcome!\n\nPlease verify your email by following the link:\n%s\n", link)

	msg := buildMessage(s.cfg.FromEmail, email, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)

	// Контекст используется только для логгирования;
	// net/smtp не поддерживает контекст из коробки.
	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{email}, []byte(msg)); err != nil {
		s.logger.Error("failed to send verification email", map[string]any{
			"email": email,
			"err":   err.Error(),
		})
		return err
	}

	s.logger.Info("verification email sent", map[string]any{
		"email": email,
	})
	return nil
}

func buildMessage(from, to, subject, body string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}
