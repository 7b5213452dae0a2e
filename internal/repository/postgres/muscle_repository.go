package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"strength-api/internal/domain/workout"
	repo "strength-api/internal/repository/interfaces"
)

// pgMuscle представляет собой ORM-модель для таблицы muscles.
type pgMuscle struct {
	ID        string     `gorm:"column:id;type:uuid;primaryKey"`
	Name      string     `gorm:"column:name;type:varchar(100);not null"`
	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt *time.Time `gorm:"column:updated_at;type:timestamptz"`
}

func (pgMuscle) TableName() string {
	return "muscles"
}

// MuscleRepository реализует repo.MuscleRepository с использованием GORM.
type MuscleRepository struct {
	db *gorm.DB
}

var _ repo.MuscleRepository = (*MuscleRepository)(nil)

// NewMuscleRepository создает новый репозиторий мышц.
func NewMuscleRepository(db *gorm.DB) *MuscleRepository {
	return &MuscleRepository{db: db}
}

// Update переименовывает мышцу.
func (r *MuscleRepository) Update(ctx context.Context, m *workout.Muscle) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&pgMuscle{}).
		Where("id = ?", m.ID.String()).
		Updates(map[string]interface{}{
			"name":       m.Name,
			"updated_at": now,
		})

	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_muscles_name_unique") {
			return repo.ErrDuplicate
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}

	m.UpdatedAt = &now
	return nil
}
