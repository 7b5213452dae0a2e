// Package muscleexercise содержит команды и обработчики для связей
// мышца—упражнение.
package muscleexercise

import (
	"context"
	"net/http"
	"strings"

	"strength-api/internal/domain/apperror"
	"strength-api/internal/domain/shared"
	"strength-api/internal/domain/workout"
	"strength-api/internal/repository/interfaces"
	"strength-api/internal/usecase/pipeline"
)

// CreateManyCommand — команда массового создания связей: одно упражнение
// и N мышц.
type CreateManyCommand struct {
	ExerciseName        string
	ExerciseDescription string
	MuscleNames         []string
}

// CreateManyHandler создаёт недостающие связи мышца—упражнение.
type CreateManyHandler struct {
	links interfaces.MuscleExerciseRepository
	uow   interfaces.UnitOfWork
}

// NewCreateManyHandler создаёт обработчик массового создания связей.
func NewCreateManyHandler(links interfaces.MuscleExerciseRepository, uow interfaces.UnitOfWork) *CreateManyHandler {
	return &CreateManyHandler{links: links, uow: uow}
}

// Handle строит кандидатов из команды, отбрасывает уже существующие пары
// (без учёта регистра), оставшихся вставляет одной транзакцией.
//
// Проверка существующих пар — оптимизация: конкурентный идентичный запрос
// может проскочить её, жёсткой гарантией остаётся уникальный индекс пары.
func (h *CreateManyHandler) Handle(ctx context.Context, cmd CreateManyCommand) shared.Result[shared.Unit] {
	exercise := workout.NewExercise(cmd.ExerciseName, cmd.ExerciseDescription)

	existing, err := h.links.GetByExerciseName(ctx, exercise.Name)
	if err != nil {
		return shared.WithErrors(http.StatusInternalServerError, apperror.InternalError)
	}

	var candidates []*workout.MuscleExercise
	for _, muscleName := range cmd.MuscleNames {
		link := workout.NewMuscleExercise(workout.NewMuscle(muscleName), exercise)
		if !linkExists(existing, link) {
			candidates = append(candidates, link)
		}
	}

	if len(candidates) == 0 {
		return shared.WithErrors(http.StatusBadRequest, apperror.MuscleExerciseAlreadyExists)
	}

	return h.uow.BeginTransaction(ctx, func(ctx context.Context, repos interfaces.Repositories) shared.Result[shared.Unit] {
		created, err := repos.MuscleExercises().CreateMany(ctx, candidates)
		if err != nil || len(created) == 0 {
			return shared.WithErrors(http.StatusInternalServerError, apperror.InternalError)
		}
		return shared.Success()
	})
}

// linkExists сравнивает пару (мышца, упражнение) с существующими связями
// без учёта регистра имён.
func linkExists(existing []*workout.MuscleExercise, link *workout.MuscleExercise) bool {
	for _, e := range existing {
		if strings.EqualFold(e.Exercise.Name, link.Exercise.Name) &&
			strings.EqualFold(e.Muscle.Name, link.Muscle.Name) {
			return true
		}
	}
	return false
}

// CreateManyValidator проверяет имя упражнения и список мышц.
type CreateManyValidator struct{}

var _ pipeline.Validator[CreateManyCommand] = (*CreateManyValidator)(nil)

// NewCreateManyValidator создаёт валидатор массового создания связей.
func NewCreateManyValidator() *CreateManyValidator {
	return &CreateManyValidator{}
}

// Validate выполняет правила.
func (v *CreateManyValidator) Validate(_ context.Context, cmd CreateManyCommand) []shared.CustomError {
	var errs []shared.CustomError

	errs = pipeline.Append(errs, pipeline.Required("ExerciseName", cmd.ExerciseName))
	errs = pipeline.Append(errs, pipeline.MaxLen("ExerciseName", cmd.ExerciseName, 50))

	if len(cmd.MuscleNames) == 0 {
		errs = append(errs, shared.CustomError{Code: "MuscleNames", Description: "must not be empty"})
	}
	for _, name := range cmd.MuscleNames {
		errs = pipeline.Append(errs, pipeline.Required("MuscleNames", name))
	}

	return errs
}
