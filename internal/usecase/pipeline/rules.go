package pipeline

import (
	"fmt"
	"net/mail"

	"strength-api/internal/domain/shared"
)

// Хелперы правил возвращают nil при успехе и пару (поле, сообщение)
// при нарушении. Конкретные валидаторы собирают из них свои списки.

// Required проверяет, что значение непустое.
func Required(field, value string) *shared.CustomError {
	if value == "" {
		return &shared.CustomError{Code: field, Description: "must not be empty"}
	}
	return nil
}

// Email проверяет формат email-адреса. Проверка только синтаксическая;
// существование адреса подтверждается письмом с токеном.
func Email(field, value string) *shared.CustomError {
	if _, err := mail.ParseAddress(value); err != nil {
		return &shared.CustomError{Code: field, Description: "must be a valid email address"}
	}
	return nil
}

// MinLen проверяет минимальную длину значения.
func MinLen(field, value string, n int) *shared.CustomError {
	if len(value) < n {
		return &shared.CustomError{Code: field, Description: fmt.Sprintf("must be at least %d characters long", n)}
	}
	return nil
}

// MaxLen проверяет максимальную длину значения.
func MaxLen(field, value string, n int) *shared.CustomError {
	if len(value) > n {
		return &shared.CustomError{Code: field, Description: fmt.Sprintf("must be at most %d characters long", n)}
	}
	return nil
}

// Equal проверяет равенство двух значений с заданным сообщением.
func Equal(field, value, other, message string) *shared.CustomError {
	if value != other {
		return &shared.CustomError{Code: field, Description: message}
	}
	return nil
}

// Append добавляет результат правила в список, пропуская nil.
func Append(errs []shared.CustomError, rule *shared.CustomError) []shared.CustomError {
	if rule != nil {
		errs = append(errs, *rule)
	}
	return errs
}
