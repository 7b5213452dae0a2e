package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	userdomain "strength-api/internal/domain/user"
	repo "strength-api/internal/repository/interfaces"
)

// pgUser представляет собой ORM-модель для таблицы users.
// Она максимально близко отражает схему БД и маппится в доменную модель.
type pgUser struct {
	ID                 string     `gorm:"column:id;type:uuid;primaryKey"`
	Email              string     `gorm:"column:email;type:varchar(255);not null"`
	PasswordHash       []byte     `gorm:"column:password_hash;type:bytea;not null"`
	PasswordSalt       []byte     `gorm:"column:password_salt;type:bytea;not null"`
	VerificationToken  string     `gorm:"column:verification_token;type:text;not null"`
	VerifiedAt         *time.Time `gorm:"column:verified_at;type:timestamptz"`
	PasswordResetToken string     `gorm:"column:password_reset_token;type:text"`
	CreatedAt          time.Time  `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt          *time.Time `gorm:"column:updated_at;type:timestamptz"`
}

func (pgUser) TableName() string {
	return "users"
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникального
// ограничения PostgreSQL (код 23505), при необходимости — конкретного
// индекса/constraint.
func isUniqueViolation(err error, constraintNames ...string) bool {
	if err == nil {
		return false
	}

	// Предпочитаем структурированную ошибку драйвера
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" { // unique_violation
			return false
		}
		if len(constraintNames) == 0 {
			return true
		}
		for _, name := range constraintNames {
			if name != "" && strings.EqualFold(pgErr.ConstraintName, name) {
				return true
			}
		}
		return false
	}

	// Fallback: ищем код и имя constraint в тексте ошибки
	errStr := err.Error()
	if !strings.Contains(errStr, "23505") {
		return false
	}
	if len(constraintNames) == 0 {
		return true
	}
	lower := strings.ToLower(errStr)
	for _, name := range constraintNames {
		if name != "" && strings.Contains(lower, strings.ToLower(name)) {
			return true
		}
	}
	return false
}

// toDomain маппит ORM-модель в доменную.
func (m *pgUser) toDomain() (*userdomain.User, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}

	return &userdomain.User{
		ID:                 id,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		PasswordSalt:       m.PasswordSalt,
		VerificationToken:  m.VerificationToken,
		VerifiedAt:         m.VerifiedAt,
		PasswordResetToken: m.PasswordResetToken,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}, nil
}

// fromDomain маппит доменную модель в ORM-модель.
func fromDomain(u *userdomain.User) *pgUser {
	return &pgUser{
		ID:                 u.ID.String(),
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		PasswordSalt:       u.PasswordSalt,
		VerificationToken:  u.VerificationToken,
		VerifiedAt:         u.VerifiedAt,
		PasswordResetToken: u.PasswordResetToken,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// UserRepository реализует repo.UserRepository с использованием GORM.
type UserRepository struct {
	db *gorm.DB
}

// Убедимся на этапе компиляции, что структура реализует интерфейс.
var _ repo.UserRepository = (*UserRepository)(nil)

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create создает нового пользователя в БД.
func (r *UserRepository) Create(ctx context.Context, u *userdomain.User) error {
	model := fromDomain(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err, "idx_users_email_unique") {
			return repo.ErrEmailExists
		}
		return err
	}
	return nil
}

// oneByCondition возвращает одну запись по условию.
func (r *UserRepository) oneByCondition(ctx context.Context, query string, args ...interface{}) (*userdomain.User, error) {
	var model pgUser
	err := r.db.WithContext(ctx).
		Where(query, args...).
		Take(&model).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.toDomain()
}

// GetByEmail возвращает пользователя по email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	return r.oneByCondition(ctx, "email = ?", email)
}

// GetByVerificationToken возвращает пользователя по токену подтверждения.
func (r *UserRepository) GetByVerificationToken(ctx context.Context, token string) (*userdomain.User, error) {
	return r.oneByCondition(ctx, "verification_token = ?", token)
}

// GetWithRolesByEmail возвращает пользователя вместе с назначенными ролями.
func (r *UserRepository) GetWithRolesByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID     string
		RoleID string
		Name   string
	}
	err = r.db.WithContext(ctx).
		Table("user_roles").
		Select("user_roles.id, roles.id AS role_id, roles.name").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ?", u.ID.String()).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	u.Roles = make([]userdomain.UserRole, 0, len(rows))
	for _, row := range rows {
		urID, err := uuid.Parse(row.ID)
		if err != nil {
			return nil, err
		}
		roleID, err := uuid.Parse(row.RoleID)
		if err != nil {
			return nil, err
		}
		u.Roles = append(u.Roles, userdomain.UserRole{
			ID:     urID,
			UserID: u.ID,
			Role:   userdomain.Role{ID: roleID, Name: userdomain.RoleName(row.Name)},
		})
	}

	return u, nil
}

// Update обновляет изменяемые поля пользователя.
// Идентификатор, email и пара хэш/соль через этот метод не меняются.
func (r *UserRepository) Update(ctx context.Context, u *userdomain.User) error {
	model := fromDomain(u)

	result := r.db.WithContext(ctx).
		Model(&pgUser{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"verified_at":          model.VerifiedAt,
			"password_reset_token": model.PasswordResetToken,
			"updated_at":           model.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
