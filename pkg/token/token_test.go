package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"strength-api/internal/config"
	userdomain "strength-api/internal/domain/user"
	"strength-api/pkg/token"
)

func testConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:            "test-secret-key",
		Issuer:            "strength-api",
		Audience:          "strength-api",
		ExpirationMinutes: 60,
	}
}

func userWithRoles(roles ...userdomain.RoleName) *userdomain.User {
	u := userdomain.NewUser("user@example.com", []byte("hash"), []byte("salt"), "token-123")
	now := time.Now().UTC()
	u.MarkVerified(now)
	for _, name := range roles {
		u.Roles = append(u.Roles,
			*userdomain.NewUserRole(u.ID, userdomain.Role{ID: uuid.New(), Name: name}))
	}
	return u
}

func TestCreate_NoRoles_Error(t *testing.T) {
	svc := token.NewService(testConfig())
	u := userdomain.NewUser("user@example.com", []byte("hash"), []byte("salt"), "token-123")

	_, err := svc.Create(u)
	require.ErrorIs(t, err, token.ErrNoRoles)
}

func TestCreate_RoundTripClaims(t *testing.T) {
	svc := token.NewService(testConfig())
	u := userWithRoles(userdomain.RoleUser, userdomain.RoleAdmin)

	authToken, err := svc.Create(u)
	require.NoError(t, err)
	require.Equal(t, "Bearer", authToken.TokenType)
	require.NotEmpty(t, authToken.Token)
	require.True(t, authToken.ExpiresAt.After(time.Now()))

	claims, err := svc.Parse(authToken.Token)
	require.NoError(t, err)
	require.Equal(t, u.ID.String(), claims.Subject)
	require.Equal(t, u.Email, claims.Email)
	require.Equal(t, []string{"user", "admin"}, claims.Roles)
	require.Equal(t, u.VerifiedAt.UTC().Format(time.RFC3339), claims.Verified)
}

func TestParse_WrongSecret_Error(t *testing.T) {
	svc := token.NewService(testConfig())
	u := userWithRoles(userdomain.RoleUser)

	authToken, err := svc.Create(u)
	require.NoError(t, err)

	other := token.NewService(&config.JWTConfig{
		Secret:            "different-secret",
		Issuer:            "strength-api",
		Audience:          "strength-api",
		ExpirationMinutes: 60,
	})

	_, err = other.Parse(authToken.Token)
	require.Error(t, err)
}

func TestParse_WrongIssuer_Error(t *testing.T) {
	issuing := token.NewService(&config.JWTConfig{
		Secret:            "test-secret-key",
		Issuer:            "someone-else",
		Audience:          "strength-api",
		ExpirationMinutes: 60,
	})
	u := userWithRoles(userdomain.RoleUser)

	authToken, err := issuing.Create(u)
	require.NoError(t, err)

	svc := token.NewService(testConfig())
	_, err = svc.Parse(authToken.Token)
	require.Error(t, err)
}

func TestParse_Garbage_Error(t *testing.T) {
	svc := token.NewService(testConfig())

	_, err := svc.Parse("not-a-jwt")
	require.Error(t, err)
}
