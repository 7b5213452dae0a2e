package apperror

import "strength-api/internal/domain/shared"

// InternalError — единственная ошибка, которой оборачиваются любые
// неожиданные сбои внутри транзакции. Детали исключений наружу не утекают.
var InternalError = shared.CustomError{Code: "ProcessErrors.InternalError", Description: "Some operation failed"}
