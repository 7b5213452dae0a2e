package workout

import (
	"time"

	"github.com/google/uuid"
)

// Muscle представляет мышцу или мышечную группу.
// Имя уникально без учёта регистра; удаление запрещено, пока на мышцу
// ссылается хотя бы одна связь мышца—упражнение.
type Muscle struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewMuscle создаёт новую мышцу.
func NewMuscle(name string) *Muscle {
	return &Muscle{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// Exercise представляет упражнение.
type Exercise struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// NewExercise создаёт новое упражнение.
func NewExercise(name, description string) *Exercise {
	return &Exercise{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// MuscleExercise представляет связь мышца—упражнение (many-to-many).
// Пара (мышца, упражнение) уникальна.
type MuscleExercise struct {
	ID        uuid.UUID
	Muscle    *Muscle
	Exercise  *Exercise
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewMuscleExercise создаёт связь между мышцей и упражнением.
func NewMuscleExercise(muscle *Muscle, exercise *Exercise) *MuscleExercise {
	return &MuscleExercise{
		ID:        uuid.New(),
		Muscle:    muscle,
		Exercise:  exercise,
		CreatedAt: time.Now().UTC(),
	}
}
