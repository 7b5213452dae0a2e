package shared

import (
	"fmt"
	"net/http"
)

// Unit — пустой payload для результатов команд, не возвращающих значение.
type Unit struct{}

// Result представляет единый success/failure-результат выполнения команды.
// Успешный результат несёт значение типа T и ошибку None; неуспешный —
// непустую ошибку и, для ответов API, HTTP-статус со списком ошибок.
//
// Инварианты закреплены на этапе конструирования: успех с непустой ошибкой
// или неуспех с None — ошибка программирования, конструктор паникует сразу,
// а не возвращает противоречивое значение.
type Result[T any] struct {
	value   T
	success bool
	err     CustomError
	status  int
	errors  []CustomError
}

func newResult[T any](success bool, err CustomError, value T) Result[T] {
	if (success && !err.IsNone()) || (!success && err.IsNone()) {
		panic(fmt.Sprintf("shared: inconsistent result: success=%t error=%q", success, err.Code))
	}

	return Result[T]{value: value, success: success, err: err}
}

// Success создаёт успешный результат без значения.
func Success() Result[Unit] {
	return newResult(true, None, Unit{})
}

// SuccessWith создаёт успешный результат с типизированным значением.
func SuccessWith[T any](value T) Result[T] {
	return newResult(true, None, value)
}

// Failure создаёт неуспешный результат без значения.
// Паникует, если err — None: молча проглоченная ошибка хуже паники.
func Failure(err CustomError) Result[Unit] {
	return newResult(false, err, Unit{})
}

// FailureWith создаёт типизированный неуспешный результат.
func FailureWith[T any](err CustomError) Result[T] {
	var zero T
	return newResult(false, err, zero)
}

// WithErrors создаёт failure-результат с HTTP-статусом и списком ошибок
// (ResponseResult). Статус успешного класса недопустим.
func WithErrors(status int, errs ...CustomError) Result[Unit] {
	return WithErrorsFor[Unit](status, errs...)
}

// WithErrorsFor — типизированный вариант WithErrors.
func WithErrorsFor[T any](status int, errs ...CustomError) Result[T] {
	if status < http.StatusBadRequest {
		panic(fmt.Sprintf("shared: %d is not a valid error status code", status))
	}

	r := FailureWith[T](ResponseError)
	r.status = status
	r.errors = errs
	return r
}

// ValidationFailure создаёт failure-результат стадии валидации:
// статус всегда BadRequest, ошибка верхнего уровня — ValidationError.
func ValidationFailure(errs ...CustomError) Result[Unit] {
	return ValidationFailureFor[Unit](errs...)
}

// ValidationFailureFor — типизированный вариант ValidationFailure.
func ValidationFailureFor[T any](errs ...CustomError) Result[T] {
	r := FailureWith[T](ValidationError)
	r.status = http.StatusBadRequest
	r.errors = errs
	return r
}

// IsSuccess возвращает true для успешного результата.
func (r Result[T]) IsSuccess() bool {
	return r.success
}

// IsFailure возвращает true для неуспешного результата.
func (r Result[T]) IsFailure() bool {
	return !r.success
}

// Value возвращает значение успешного результата.
// Для failure-результата значения не существует — это ошибка программирования,
// поэтому метод паникует, а не возвращает нулевое значение.
func (r Result[T]) Value() T {
	if !r.success {
		panic("shared: the value of a failure result can not be accessed")
	}
	return r.value
}

// Error возвращает ошибку результата (None для успешного).
func (r Result[T]) Error() CustomError {
	return r.err
}

// StatusCode возвращает HTTP-статус failure-результата.
// Для результатов без статуса (успех или «голый» Failure) возвращает 0.
func (r Result[T]) StatusCode() int {
	return r.status
}

// Errors возвращает упорядоченный список ошибок failure-результата.
func (r Result[T]) Errors() []CustomError {
	return r.errors
}
