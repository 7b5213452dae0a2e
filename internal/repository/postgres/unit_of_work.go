package postgres

import (
	"context"

	"gorm.io/gorm"

	"strength-api/internal/domain/apperror"
	"strength-api/internal/domain/shared"
	repo "strength-api/internal/repository/interfaces"
	"strength-api/pkg/logger"
)

// SessionFactory открывает новую транзакционную сессию.
// Вынесена в отдельный тип, чтобы подменять сессию в unit-тестах.
type SessionFactory func(ctx context.Context) (repo.Session, error)

// UnitOfWork выполняет переданное действие в границах одной транзакции.
type UnitOfWork struct {
	begin SessionFactory
	log   logger.Logger
}

var _ repo.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork создает unit of work поверх подключения GORM.
func NewUnitOfWork(db *gorm.DB, log logger.Logger) *UnitOfWork {
	begin := func(ctx context.Context) (repo.Session, error) {
		tx := db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return nil, tx.Error
		}
		return newGormSession(tx), nil
	}
	return NewUnitOfWorkWithFactory(begin, log)
}

// NewUnitOfWorkWithFactory создает unit of work с произвольной фабрикой сессий.
func NewUnitOfWorkWithFactory(begin SessionFactory, log logger.Logger) *UnitOfWork {
	return &UnitOfWork{begin: begin, log: log}
}

// BeginTransaction открывает транзакцию, выполняет действие и завершает
// транзакцию в зависимости от его результата:
//
//   - успех: SaveChanges, затем Commit;
//   - неуспех: Rollback, результат действия возвращается без изменений;
//   - panic внутри действия: Rollback, наружу возвращается
//     Failure(InternalError), panic не распространяется.
//
// За один вызов выполняется ровно одно из завершений Commit/Rollback.
func (u *UnitOfWork) BeginTransaction(ctx context.Context, action repo.TransactionalAction) (result shared.Result[shared.Unit]) {
	session, err := u.begin(ctx)
	if err != nil {
		u.log.Error("failed to begin transaction", map[string]interface{}{"error": err.Error()})
		return shared.Failure(apperror.InternalError)
	}

	defer func() {
		if r := recover(); r != nil {
			u.log.Error("panic inside transaction", map[string]interface{}{"panic": r})
			_ = session.Rollback(ctx)
			result = shared.Failure(apperror.InternalError)
		}
	}()

	result = action(ctx, session.Repositories())
	if result.IsFailure() {
		if err := session.Rollback(ctx); err != nil {
			u.log.Error("failed to rollback transaction", map[string]interface{}{"error": err.Error()})
		}
		return result
	}

	if err := session.SaveChanges(ctx); err != nil {
		u.log.Error("failed to save changes", map[string]interface{}{"error": err.Error()})
		_ = session.Rollback(ctx)
		return shared.Failure(apperror.InternalError)
	}
	if err := session.Commit(ctx); err != nil {
		u.log.Error("failed to commit transaction", map[string]interface{}{"error": err.Error()})
		return shared.Failure(apperror.InternalError)
	}

	return result
}
