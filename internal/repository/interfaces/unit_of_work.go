package interfaces

import (
	"context"

	"strength-api/internal/domain/shared"
)

// Repositories предоставляет доступ к репозиториям, привязанным к одной
// транзакции хранилища. Вызовы вне транзакции используют обычные
// (инжектированные) репозитории.
type Repositories interface {
	Users() UserRepository
	Roles() RoleRepository
	UserRoles() UserRoleRepository
	Muscles() MuscleRepository
	MuscleExercises() MuscleExerciseRepository
}

// Session представляет открытую транзакцию хранилища.
//
// SaveChanges фиксирует накопленные изменения перед коммитом и вызывается
// только на успешном пути; Commit/Rollback завершают транзакцию, ровно один
// из них выполняется за время жизни сессии.
type Session interface {
	Repositories() Repositories
	SaveChanges(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionalAction — бизнес-действие, выполняемое внутри транзакции.
// Репозитории аргумента привязаны к открытой транзакции.
type TransactionalAction func(ctx context.Context, repos Repositories) shared.Result[shared.Unit]

// UnitOfWork оборачивает бизнес-действие в транзакцию хранилища.
//
// Контракт BeginTransaction:
//   - паника внутри action: откат, возврат Failure(InternalError) — паника
//     никогда не покидает обёртку;
//   - action вернул Success: SaveChanges, затем Commit, результат
//     возвращается без изменений;
//   - action вернул Failure: откат, результат возвращается без изменений.
//
// Это единственное место, где многошаговые записи получают атомарность.
type UnitOfWork interface {
	BeginTransaction(ctx context.Context, action TransactionalAction) shared.Result[shared.Unit]
}
