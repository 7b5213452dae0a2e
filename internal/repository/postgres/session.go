package postgres

import (
	"context"

	"gorm.io/gorm"

	repo "strength-api/internal/repository/interfaces"
)

// gormRepositories — набор репозиториев, привязанных к одному *gorm.DB
// (обычному соединению или открытой транзакции).
type gormRepositories struct {
	users           *UserRepository
	roles           *RoleRepository
	userRoles       *UserRoleRepository
	muscles         *MuscleRepository
	muscleExercises *MuscleExerciseRepository
}

var _ repo.Repositories = (*gormRepositories)(nil)

// NewRepositories создает набор репозиториев поверх переданного подключения.
func NewRepositories(db *gorm.DB) repo.Repositories {
	return &gormRepositories{
		users:           NewUserRepository(db),
		roles:           NewRoleRepository(db),
		userRoles:       NewUserRoleRepository(db),
		muscles:         NewMuscleRepository(db),
		muscleExercises: NewMuscleExerciseRepository(db),
	}
}

func (r *gormRepositories) Users() repo.UserRepository                     { return r.users }
func (r *gormRepositories) Roles() repo.RoleRepository                     { return r.roles }
func (r *gormRepositories) UserRoles() repo.UserRoleRepository             { return r.userRoles }
func (r *gormRepositories) Muscles() repo.MuscleRepository                 { return r.muscles }
func (r *gormRepositories) MuscleExercises() repo.MuscleExerciseRepository { return r.muscleExercises }

// gormSession — сессия поверх открытой транзакции GORM.
type gormSession struct {
	tx    *gorm.DB
	repos repo.Repositories
}

var _ repo.Session = (*gormSession)(nil)

func newGormSession(tx *gorm.DB) *gormSession {
	return &gormSession{
		tx:    tx,
		repos: NewRepositories(tx),
	}
}

// Repositories возвращает репозитории, работающие внутри транзакции.
func (s *gormSession) Repositories() repo.Repositories {
	return s.repos
}

// SaveChanges — точка фиксации накопленных изменений перед коммитом.
// GORM выполняет операторы немедленно, поэтому здесь ничего сбрасывать
// не нужно; метод остаётся в контракте сессии.
func (s *gormSession) SaveChanges(ctx context.Context) error {
	return nil
}

// Commit фиксирует транзакцию.
func (s *gormSession) Commit(ctx context.Context) error {
	return s.tx.WithContext(ctx).Commit().Error
}

// Rollback откатывает транзакцию.
func (s *gormSession) Rollback(ctx context.Context) error {
	return s.tx.WithContext(ctx).Rollback().Error
}
