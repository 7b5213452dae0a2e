package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"strength-api/internal/config"
	userdomain "strength-api/internal/domain/user"
)

// ErrNoRoles возвращается при попытке выдать токен пользователю без ролей.
var ErrNoRoles = errors.New("user must contain at least one role in order to generate a token")

// AuthToken — выданный подписанный токен с типом и временем истечения.
type AuthToken struct {
	TokenType string
	Token     string
	ExpiresAt time.Time
}

// Claims описывает JWT-пейлоад access-токена.
type Claims struct {
	Email    string   `json:"email,omitempty"`
	Verified string   `json:"verified,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Service инкапсулирует выдачу и валидацию JWT-токенов.
type Service interface {
	// Create выдаёт токен для пользователя с загруженными ролями.
	// Возвращает ErrNoRoles, если у пользователя нет ни одной роли.
	Create(u *userdomain.User) (*AuthToken, error)

	// Parse парсит и валидирует access-токен.
	Parse(tokenString string) (*Claims, error)
}

type service struct {
	cfg *config.JWTConfig
}

// NewService создаёт JWT-сервис на основе конфигурации.
func NewService(cfg *config.JWTConfig) Service {
	return &service{cfg: cfg}
}

// Create выдаёт подписанный HS256-токен: subject — идентификатор
// пользователя, плюс email, время подтверждения и по одному role-клейму
// на каждую назначенную роль.
func (s *service) Create(u *userdomain.User) (*AuthToken, error) {
	if len(u.Roles) == 0 {
		return nil, ErrNoRoles
	}

	verified := ""
	if u.VerifiedAt != nil {
		verified = u.VerifiedAt.UTC().Format(time.RFC3339)
	}

	roles := make([]string, 0, len(u.Roles))
	for _, ur := range u.Roles {
		roles = append(roles, string(ur.Role.Name))
	}

	now := time.Now().UTC()
	expiresAt := now.Add(time.Duration(s.cfg.ExpirationMinutes) * time.Minute)

	claims := &Claims{
		Email:    u.Email,
		Verified: verified,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, err
	}

	return &AuthToken{
		TokenType: "Bearer",
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// Parse парсит и валидирует токен.
func (s *service) Parse(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Убеждаемся, что метод подписи ожидаемый
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.Issuer != "" && s.cfg.Issuer != "" && claims.Issuer != s.cfg.Issuer {
		return nil, jwt.ErrTokenInvalidIssuer
	}

	return claims, nil
}
