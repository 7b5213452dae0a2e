// Package pipeline реализует конвейер выполнения команд: стадия валидации,
// затем обработчик. Валидация короткозамыкает конвейер, возвращая все
// собранные ошибки разом, а не только первую.
package pipeline

import (
	"context"
	"sync"

	"strength-api/internal/domain/shared"
)

// Validator — декларативный набор правил для команды типа C.
// Возвращает список пар (поле, сообщение) для всех непрошедших правил;
// пустой список означает успех. Асинхронные правила (например, обращение
// к БД за проверкой уникальности) выполняются внутри Validate.
type Validator[C any] interface {
	Validate(ctx context.Context, cmd C) []shared.CustomError
}

// Handler обрабатывает команду типа C и возвращает результат с payload T.
type Handler[C any, T any] interface {
	Handle(ctx context.Context, cmd C) shared.Result[T]
}

// Pipeline связывает команду с её обработчиком и зарегистрированными
// наборами правил. Типизация через дженерики заменяет рефлексию:
// нужный закрытый тип результата известен на этапе компиляции.
type Pipeline[C any, T any] struct {
	handler    Handler[C, T]
	validators []Validator[C]
}

// New создаёт конвейер для обработчика и его наборов правил.
func New[C any, T any](handler Handler[C, T], validators ...Validator[C]) *Pipeline[C, T] {
	return &Pipeline[C, T]{handler: handler, validators: validators}
}

// Execute прогоняет команду через стадию валидации и обработчик.
//
// Наборы правил независимы и выполняются конкурентно (fan-out/fan-in).
// Все ошибки собираются, дублирующиеся пары (поле, сообщение) отбрасываются
// с сохранением порядка первого вхождения. Если ошибок нет, обработчик
// вызывается ровно один раз. Без зарегистрированных наборов правил стадия —
// сквозной проход.
func (p *Pipeline[C, T]) Execute(ctx context.Context, cmd C) shared.Result[T] {
	if len(p.validators) == 0 {
		return p.handler.Handle(ctx, cmd)
	}

	collected := make([][]shared.CustomError, len(p.validators))

	var wg sync.WaitGroup
	for i, v := range p.validators {
		wg.Add(1)
		go func(i int, v Validator[C]) {
			defer wg.Done()
			collected[i] = v.Validate(ctx, cmd)
		}(i, v)
	}
	wg.Wait()

	errs := distinct(collected)
	if len(errs) > 0 {
		return shared.ValidationFailureFor[T](errs...)
	}

	return p.handler.Handle(ctx, cmd)
}

// distinct сливает результаты наборов правил, отбрасывая дубликаты
// и сохраняя порядок первого вхождения.
func distinct(collected [][]shared.CustomError) []shared.CustomError {
	seen := make(map[shared.CustomError]struct{})
	var errs []shared.CustomError

	for _, part := range collected {
		for _, err := range part {
			if _, ok := seen[err]; ok {
				continue
			}
			seen[err] = struct{}{}
			errs = append(errs, err)
		}
	}

	return errs
}
