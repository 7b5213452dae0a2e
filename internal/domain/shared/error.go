package shared

// CustomError представляет именованную доменную ошибку: стабильный код
// и человекочитаемое описание. Коды используются и в телах ответов API,
// и в сообщениях валидаторов.
type CustomError struct {
	Code        string
	Description string
}

// None — выделенное значение «нет ошибки». Используется только для
// маркировки успешных результатов.
var None = CustomError{}

// IsNone возвращает true, если ошибка является sentinel-значением None.
func (e CustomError) IsNone() bool {
	return e.Code == ""
}

// ResponseError — ошибка верхнего уровня для всех failure-результатов,
// несущих HTTP-статус (ResponseResult в терминах доменной модели).
var ResponseError = CustomError{
	Code:        "Response.Failure",
	Description: "An error occurred",
}

// ValidationError — ошибка верхнего уровня для результатов, собранных
// стадией валидации.
var ValidationError = CustomError{
	Code:        "Validation.Failure",
	Description: "A validation problem occurred",
}
