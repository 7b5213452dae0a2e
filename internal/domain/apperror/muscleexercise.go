package apperror

import "strength-api/internal/domain/shared"

// Ошибки связей мышца—упражнение.
var MuscleExerciseAlreadyExists = shared.CustomError{Code: "MuscleExerciseErrors.AlreadyExists", Description: "Muscle exercise combination already exists"}
