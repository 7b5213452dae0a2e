package user_test

import (
	"context"
	"sync"
	"time"

	"strength-api/internal/domain/shared"
	userdomain "strength-api/internal/domain/user"
	repo "strength-api/internal/repository/interfaces"
	"strength-api/pkg/token"
)

// ==== Fakes for repositories and services ====

type fakeUserRepo struct {
	usersByEmail map[string]*userdomain.User
	usersByToken map[string]*userdomain.User

	created   *userdomain.User
	createErr error

	updated   *userdomain.User
	updateErr error

	getErr error
}

func (r *fakeUserRepo) Create(_ context.Context, u *userdomain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*userdomain.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.usersByEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByVerificationToken(_ context.Context, t string) (*userdomain.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.usersByToken[t]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetWithRolesByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	return r.GetByEmail(ctx, email)
}

func (r *fakeUserRepo) Update(_ context.Context, u *userdomain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = u
	return nil
}

type fakeRoleRepo struct {
	role *userdomain.Role
	err  error
}

func (r *fakeRoleRepo) GetByName(context.Context, userdomain.RoleName) (*userdomain.Role, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.role, nil
}

type fakeUserRoleRepo struct {
	created *userdomain.UserRole
	err     error
}

func (r *fakeUserRoleRepo) Create(_ context.Context, ur *userdomain.UserRole) error {
	if r.err != nil {
		return r.err
	}
	r.created = ur
	return nil
}

// fakeRepos связывает фейковые репозитории в набор для транзакции.
type fakeRepos struct {
	users     *fakeUserRepo
	roles     *fakeRoleRepo
	userRoles *fakeUserRoleRepo
}

func (r *fakeRepos) Users() repo.UserRepository                     { return r.users }
func (r *fakeRepos) Roles() repo.RoleRepository                     { return r.roles }
func (r *fakeRepos) UserRoles() repo.UserRoleRepository             { return r.userRoles }
func (r *fakeRepos) Muscles() repo.MuscleRepository                 { return nil }
func (r *fakeRepos) MuscleExercises() repo.MuscleExerciseRepository { return nil }

var _ repo.Repositories = (*fakeRepos)(nil)

// fakeUnitOfWork выполняет действие напрямую, без настоящей транзакции.
type fakeUnitOfWork struct {
	repos repo.Repositories
	begun int
}

func (u *fakeUnitOfWork) BeginTransaction(ctx context.Context, action repo.TransactionalAction) shared.Result[shared.Unit] {
	u.begun++
	return action(ctx, u.repos)
}

type fakeEmailSender struct {
	sentTo    string
	sentToken string
	sendCalls int
	err       error
}

func (s *fakeEmailSender) SendVerificationEmail(_ context.Context, email, verificationToken string) error {
	s.sendCalls++
	if s.err != nil {
		return s.err
	}
	s.sentTo = email
	s.sentToken = verificationToken
	return nil
}

type fakeTokenIssuer struct {
	token *token.AuthToken
	err   error
}

func (f *fakeTokenIssuer) Create(*userdomain.User) (*token.AuthToken, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.token, nil
}

// fakeStore — простое хранилище для проверки троттлинга.
type fakeStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: make(map[string]time.Time)}
}

func (s *fakeStore) Get(key string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *fakeStore) Set(key string, value time.Time, _ time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}
