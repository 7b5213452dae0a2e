package user_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"strength-api/internal/domain/apperror"
	"strength-api/internal/domain/shared"
	userdomain "strength-api/internal/domain/user"
	repo "strength-api/internal/repository/interfaces"
	useruc "strength-api/internal/usecase/user"
	"strength-api/pkg/password"
)

func newCreateUserFixture() (*useruc.CreateUserHandler, *fakeRepos, *fakeUnitOfWork, *fakeEmailSender) {
	repos := &fakeRepos{
		users: &fakeUserRepo{},
		roles: &fakeRoleRepo{
			role: &userdomain.Role{ID: uuid.New(), Name: userdomain.RoleUser},
		},
		userRoles: &fakeUserRoleRepo{},
	}
	uow := &fakeUnitOfWork{repos: repos}
	sender := &fakeEmailSender{}
	return useruc.NewCreateUserHandler(uow, sender), repos, uow, sender
}

func TestCreateUser_Success(t *testing.T) {
	handler, repos, uow, sender := newCreateUserFixture()

	cmd := useruc.CreateUserCommand{
		Email:           "new@example.com",
		Password:        "secret-password",
		ConfirmPassword: "secret-password",
	}

	result := handler.Handle(context.Background(), cmd)

	require.True(t, result.IsSuccess())
	require.Equal(t, 1, uow.begun)

	created := repos.users.created
	require.NotNil(t, created)
	require.Equal(t, "new@example.com", created.Email)
	require.NotEmpty(t, created.VerificationToken)
	require.Nil(t, created.VerifiedAt)

	// пароль не хранится открытым текстом, но проверяется под сохранённой солью
	require.NotContains(t, string(created.PasswordHash), "secret-password")
	require.True(t, password.Verify("secret-password", created.PasswordHash, created.PasswordSalt))
	require.False(t, password.Verify("wrong-password", created.PasswordHash, created.PasswordSalt))

	userRole := repos.userRoles.created
	require.NotNil(t, userRole)
	require.Equal(t, created.ID, userRole.UserID)
	require.Equal(t, userdomain.RoleUser, userRole.Role.Name)

	require.Equal(t, "new@example.com", sender.sentTo)
	require.Equal(t, created.VerificationToken, sender.sentToken)
}

func TestCreateUser_EmailExists_BadRequest(t *testing.T) {
	handler, repos, _, sender := newCreateUserFixture()
	repos.users.createErr = repo.ErrEmailExists

	result := handler.Handle(context.Background(), useruc.CreateUserCommand{
		Email: "taken@example.com", Password: "secret-password", ConfirmPassword: "secret-password",
	})

	require.True(t, result.IsFailure())
	require.Equal(t, http.StatusBadRequest, result.StatusCode())
	require.Equal(t, []shared.CustomError{apperror.UserAlreadyExists}, result.Errors())
	require.Equal(t, 0, sender.sendCalls)
}

func TestCreateUser_CreateFails_InternalError(t *testing.T) {
	handler, repos, _, _ := newCreateUserFixture()
	repos.users.createErr = errors.New("insert failed")

	result := handler.Handle(context.Background(), useruc.CreateUserCommand{
		Email: "new@example.com", Password: "secret-password", ConfirmPassword: "secret-password",
	})

	require.True(t, result.IsFailure())
	require.Equal(t, http.StatusInternalServerError, result.StatusCode())
	require.Equal(t, []shared.CustomError{apperror.UserNotCreated}, result.Errors())
}

func TestCreateUser_RoleMissing_InternalError(t *testing.T) {
	handler, repos, _, _ := newCreateUserFixture()
	repos.roles.err = repo.ErrNotFound

	result := handler.Handle(context.Background(), useruc.CreateUserCommand{
		Email: "new@example.com", Password: "secret-password", ConfirmPassword: "secret-password",
	})

	require.True(t, result.IsFailure())
	require.Equal(t, http.StatusInternalServerError, result.StatusCode())
	require.Equal(t, []shared.CustomError{apperror.RoleNotFound}, result.Errors())
}

func TestCreateUser_UserRoleFails_InternalError(t *testing.T) {
	handler, repos, _, _ := newCreateUserFixture()
	repos.userRoles.err = errors.New("insert failed")

	result := handler.Handle(context.Background(), useruc.CreateUserCommand{
		Email: "new@example.com", Password: "secret-password", ConfirmPassword: "secret-password",
	})

	require.True(t, result.IsFailure())
	require.Equal(t, http.StatusInternalServerError, result.StatusCode())
	require.Equal(t, []shared.CustomError{apperror.UserRoleNotCreated}, result.Errors())
}

func TestCreateUser_EmailSendFails_InternalError(t *testing.T) {
	handler, _, _, sender := newCreateUserFixture()
	sender.err = errors.New("smtp unavailable")

	result := handler.Handle(context.Background(), useruc.CreateUserCommand{
		Email: "new@example.com", Password: "secret-password", ConfirmPassword: "secret-password",
	})

	require.True(t, result.IsFailure())
	require.Equal(t, http.StatusInternalServerError, result.StatusCode())
	require.Equal(t, []shared.CustomError{apperror.UserVerificationEmailNotSent}, result.Errors())
}
