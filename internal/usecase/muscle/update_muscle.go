// Package muscle содержит команды и обработчики для мышц.
package muscle

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"strength-api/internal/domain/apperror"
	"strength-api/internal/domain/shared"
	"strength-api/internal/domain/workout"
	"strength-api/internal/repository/interfaces"
	"strength-api/internal/usecase/pipeline"
)

// UpdateMuscleCommand — команда переименования мышцы.
type UpdateMuscleCommand struct {
	ID   uuid.UUID
	Name string
}

// UpdateMuscleHandler обновляет мышцу.
type UpdateMuscleHandler struct {
	muscles interfaces.MuscleRepository
}

// NewUpdateMuscleHandler создаёт обработчик обновления мышцы.
func NewUpdateMuscleHandler(muscles interfaces.MuscleRepository) *UpdateMuscleHandler {
	return &UpdateMuscleHandler{muscles: muscles}
}

// Handle обновляет мышцу; любой сбой хранилища — InternalError.
func (h *UpdateMuscleHandler) Handle(ctx context.Context, cmd UpdateMuscleCommand) shared.Result[shared.Unit] {
	m := &workout.Muscle{ID: cmd.ID, Name: cmd.Name}

	if err := h.muscles.Update(ctx, m); err != nil {
		return shared.WithErrors(http.StatusInternalServerError, apperror.InternalError)
	}

	return shared.Success()
}

// UpdateMuscleValidator проверяет идентификатор и имя.
type UpdateMuscleValidator struct{}

var _ pipeline.Validator[UpdateMuscleCommand] = (*UpdateMuscleValidator)(nil)

// NewUpdateMuscleValidator создаёт валидатор обновления мышцы.
func NewUpdateMuscleValidator() *UpdateMuscleValidator {
	return &UpdateMuscleValidator{}
}

// Validate выполняет правила.
func (v *UpdateMuscleValidator) Validate(_ context.Context, cmd UpdateMuscleCommand) []shared.CustomError {
	var errs []shared.CustomError
	if cmd.ID == uuid.Nil {
		errs = append(errs, shared.CustomError{Code: "Id", Description: "must not be empty"})
	}
	errs = pipeline.Append(errs, pipeline.Required("Name", cmd.Name))
	return errs
}
