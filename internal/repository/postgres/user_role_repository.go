package postgres

import (
	"context"

	"gorm.io/gorm"

	userdomain "strength-api/internal/domain/user"
	repo "strength-api/internal/repository/interfaces"
)

// pgUserRole представляет собой ORM-модель для таблицы user_roles.
type pgUserRole struct {
	ID     string `gorm:"column:id;type:uuid;primaryKey"`
	UserID string `gorm:"column:user_id;type:uuid;not null"`
	RoleID string `gorm:"column:role_id;type:uuid;not null"`
}

func (pgUserRole) TableName() string {
	return "user_roles"
}

// UserRoleRepository реализует repo.UserRoleRepository с использованием GORM.
type UserRoleRepository struct {
	db *gorm.DB
}

var _ repo.UserRoleRepository = (*UserRoleRepository)(nil)

// NewUserRoleRepository создает новый репозиторий связей пользователь-роль.
func NewUserRoleRepository(db *gorm.DB) *UserRoleRepository {
	return &UserRoleRepository{db: db}
}

// Create назначает пользователю роль.
func (r *UserRoleRepository) Create(ctx context.Context, ur *userdomain.UserRole) error {
	model := pgUserRole{
		ID:     ur.ID.String(),
		UserID: ur.UserID.String(),
		RoleID: ur.Role.ID.String(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return repo.ErrDuplicate
		}
		return err
	}
	return nil
}
