package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"strength-api/internal/domain/workout"
	repo "strength-api/internal/repository/interfaces"
)

// pgExercise представляет собой ORM-модель для таблицы exercises.
type pgExercise struct {
	ID          string     `gorm:"column:id;type:uuid;primaryKey"`
	Name        string     `gorm:"column:name;type:varchar(100);not null"`
	Description string     `gorm:"column:description;type:text;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt   *time.Time `gorm:"column:updated_at;type:timestamptz"`
}

func (pgExercise) TableName() string {
	return "exercises"
}

// pgMuscleExercise представляет собой ORM-модель для таблицы muscle_exercises.
type pgMuscleExercise struct {
	ID         string     `gorm:"column:id;type:uuid;primaryKey"`
	MuscleID   string     `gorm:"column:muscle_id;type:uuid;not null"`
	ExerciseID string     `gorm:"column:exercise_id;type:uuid;not null"`
	CreatedAt  time.Time  `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt  *time.Time `gorm:"column:updated_at;type:timestamptz"`
}

func (pgMuscleExercise) TableName() string {
	return "muscle_exercises"
}

// MuscleExerciseRepository реализует repo.MuscleExerciseRepository
// с использованием GORM.
type MuscleExerciseRepository struct {
	db *gorm.DB
}

var _ repo.MuscleExerciseRepository = (*MuscleExerciseRepository)(nil)

// NewMuscleExerciseRepository создает новый репозиторий связей
// мышца-упражнение.
func NewMuscleExerciseRepository(db *gorm.DB) *MuscleExerciseRepository {
	return &MuscleExerciseRepository{db: db}
}

// GetByExerciseName возвращает все связи для упражнения с данным именем.
// Имя сравнивается без учёта регистра.
func (r *MuscleExerciseRepository) GetByExerciseName(ctx context.Context, name string) ([]*workout.MuscleExercise, error) {
	var rows []struct {
		ID                  string
		MuscleID            string
		MuscleName          string
		ExerciseID          string
		ExerciseName        string
		ExerciseDescription string
		CreatedAt           time.Time
		UpdatedAt           *time.Time
	}

	err := r.db.WithContext(ctx).
		Table("muscle_exercises").
		Select(`muscle_exercises.id,
			muscles.id AS muscle_id,
			muscles.name AS muscle_name,
			exercises.id AS exercise_id,
			exercises.name AS exercise_name,
			exercises.description AS exercise_description,
			muscle_exercises.created_at,
			muscle_exercises.updated_at`).
		Joins("JOIN muscles ON muscles.id = muscle_exercises.muscle_id").
		Joins("JOIN exercises ON exercises.id = muscle_exercises.exercise_id").
		Where("LOWER(exercises.name) = LOWER(?)", name).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	links := make([]*workout.MuscleExercise, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			return nil, err
		}
		muscleID, err := uuid.Parse(row.MuscleID)
		if err != nil {
			return nil, err
		}
		exerciseID, err := uuid.Parse(row.ExerciseID)
		if err != nil {
			return nil, err
		}
		links = append(links, &workout.MuscleExercise{
			ID: id,
			Muscle: &workout.Muscle{
				ID:   muscleID,
				Name: row.MuscleName,
			},
			Exercise: &workout.Exercise{
				ID:          exerciseID,
				Name:        row.ExerciseName,
				Description: row.ExerciseDescription,
			},
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return links, nil
}

// CreateMany сохраняет набор связей мышца-упражнение.
//
// Мышцы и упражнения резолвятся по имени без учёта регистра: если строка с
// таким именем уже существует, связь привязывается к ней, иначе создается
// новая. Возвращает идентификаторы созданных связей.
func (r *MuscleExerciseRepository) CreateMany(ctx context.Context, links []*workout.MuscleExercise) ([]uuid.UUID, error) {
	muscleIDs := map[string]string{}   // lower(name) -> id
	exerciseIDs := map[string]string{} // lower(name) -> id

	if err := r.resolveExisting(ctx, links, muscleIDs, exerciseIDs); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		muscleID, err := r.ensureMuscle(ctx, link.Muscle, muscleIDs)
		if err != nil {
			return nil, err
		}
		exerciseID, err := r.ensureExercise(ctx, link.Exercise, exerciseIDs)
		if err != nil {
			return nil, err
		}

		model := pgMuscleExercise{
			ID:         link.ID.String(),
			MuscleID:   muscleID,
			ExerciseID: exerciseID,
			CreatedAt:  link.CreatedAt,
		}
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			if isUniqueViolation(err, "idx_muscle_exercises_pair_unique") {
				return nil, repo.ErrDuplicate
			}
			return nil, err
		}
		ids = append(ids, link.ID)
	}

	return ids, nil
}

// resolveExisting загружает уже существующие мышцы и упражнения,
// упомянутые в наборе связей.
func (r *MuscleExerciseRepository) resolveExisting(ctx context.Context, links []*workout.MuscleExercise, muscleIDs, exerciseIDs map[string]string) error {
	muscleNames := make([]string, 0, len(links))
	exerciseNames := make([]string, 0, len(links))
	for _, link := range links {
		muscleNames = append(muscleNames, strings.ToLower(link.Muscle.Name))
		exerciseNames = append(exerciseNames, strings.ToLower(link.Exercise.Name))
	}

	var muscles []pgMuscle
	err := r.db.WithContext(ctx).
		Where("LOWER(name) IN ?", muscleNames).
		Find(&muscles).Error
	if err != nil {
		return err
	}
	for _, m := range muscles {
		muscleIDs[strings.ToLower(m.Name)] = m.ID
	}

	var exercises []pgExercise
	err = r.db.WithContext(ctx).
		Where("LOWER(name) IN ?", exerciseNames).
		Find(&exercises).Error
	if err != nil {
		return err
	}
	for _, e := range exercises {
		exerciseIDs[strings.ToLower(e.Name)] = e.ID
	}

	return nil
}

// ensureMuscle возвращает идентификатор существующей мышцы или создает новую.
func (r *MuscleExerciseRepository) ensureMuscle(ctx context.Context, m *workout.Muscle, known map[string]string) (string, error) {
	key := strings.ToLower(m.Name)
	if id, ok := known[key]; ok {
		return id, nil
	}

	model := pgMuscle{
		ID:        m.ID.String(),
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return "", err
	}
	known[key] = model.ID
	return model.ID, nil
}

// ensureExercise возвращает идентификатор существующего упражнения
// или создает новое.
func (r *MuscleExerciseRepository) ensureExercise(ctx context.Context, e *workout.Exercise, known map[string]string) (string, error) {
	key := strings.ToLower(e.Name)
	if id, ok := known[key]; ok {
		return id, nil
	}

	model := pgExercise{
		ID:          e.ID.String(),
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return "", err
	}
	known[key] = model.ID
	return model.ID, nil
}
