package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userdomain "strength-api/internal/domain/user"
	repo "strength-api/internal/repository/interfaces"
)

// pgRole представляет собой ORM-модель для таблицы roles.
type pgRole struct {
	ID   string `gorm:"column:id;type:uuid;primaryKey"`
	Name string `gorm:"column:name;type:varchar(64);not null"`
}

func (pgRole) TableName() string {
	return "roles"
}

// RoleRepository реализует repo.RoleRepository с использованием GORM.
type RoleRepository struct {
	db *gorm.DB
}

var _ repo.RoleRepository = (*RoleRepository)(nil)

// NewRoleRepository создает новый репозиторий ролей.
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetByName возвращает роль по имени.
func (r *RoleRepository) GetByName(ctx context.Context, name userdomain.RoleName) (*userdomain.Role, error) {
	var model pgRole
	err := r.db.WithContext(ctx).
		Where("name = ?", string(name)).
		Take(&model).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}
	return &userdomain.Role{ID: id, Name: userdomain.RoleName(model.Name)}, nil
}
