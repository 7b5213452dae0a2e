// Package response содержит единый формат ответов об ошибках API.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"strength-api/internal/domain/shared"
)

// ErrorItem — одна доменная ошибка в теле ответа.
type ErrorItem struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ErrorDetails описывает стандартный формат ошибки API:
// заголовок верхнего уровня, HTTP-статус и список доменных ошибок.
type ErrorDetails struct {
	Title  string      `json:"title"`
	Status int         `json:"status"`
	Errors []ErrorItem `json:"errors"`
}

// MessageResponse — ответ с единственным текстовым сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}

// Message отправляет успешный ответ с текстовым сообщением.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

// FromResult отправляет ответ об ошибке, построенный из failure-результата.
//
// Результаты со статусом несут свой список доменных ошибок. Результаты
// без статуса (одиночная доменная ошибка) отображаются как 500 с этой
// ошибкой в списке.
func FromResult[T any](c *gin.Context, result shared.Result[T]) {
	status := result.StatusCode()

	var items []ErrorItem
	if status != 0 {
		errs := result.Errors()
		items = make([]ErrorItem, 0, len(errs))
		for _, e := range errs {
			items = append(items, ErrorItem{Code: e.Code, Description: e.Description})
		}
	} else {
		status = http.StatusInternalServerError
		e := result.Error()
		items = []ErrorItem{{Code: e.Code, Description: e.Description}}
	}

	c.JSON(status, ErrorDetails{
		Title:  result.Error().Description,
		Status: status,
		Errors: items,
	})
}

// Error отправляет ответ с одной доменной ошибкой в стандартном формате.
// Используется на границе (middleware), где Result ещё не существует.
func Error(c *gin.Context, status int, code, description string) {
	c.JSON(status, ErrorDetails{
		Title:  shared.ResponseError.Description,
		Status: status,
		Errors: []ErrorItem{{Code: code, Description: description}},
	})
}

// BindingError отправляет 400 для запроса, не прошедшего разбор тела.
func BindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorDetails{
		Title:  shared.ValidationError.Description,
		Status: http.StatusBadRequest,
		Errors: []ErrorItem{{Code: "Request", Description: err.Error()}},
	})
}
