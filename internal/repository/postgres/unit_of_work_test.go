package postgres_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"strength-api/internal/domain/apperror"
	"strength-api/internal/domain/shared"
	repo "strength-api/internal/repository/interfaces"
	"strength-api/internal/repository/postgres"
	"strength-api/pkg/logger"
)

// fakeSession считает вызовы завершающих методов транзакции.
type fakeSession struct {
	saveCalls     int
	commitCalls   int
	rollbackCalls int

	saveErr   error
	commitErr error
}

func (s *fakeSession) Repositories() repo.Repositories { return nil }

func (s *fakeSession) SaveChanges(context.Context) error {
	s.saveCalls++
	return s.saveErr
}

func (s *fakeSession) Commit(context.Context) error {
	s.commitCalls++
	return s.commitErr
}

func (s *fakeSession) Rollback(context.Context) error {
	s.rollbackCalls++
	return nil
}

func newUnitOfWork(session *fakeSession) *postgres.UnitOfWork {
	return postgres.NewUnitOfWorkWithFactory(func(context.Context) (repo.Session, error) {
		return session, nil
	}, logger.Default())
}

func TestBeginTransaction_Success_SavesAndCommits(t *testing.T) {
	session := &fakeSession{}
	uow := newUnitOfWork(session)

	result := uow.BeginTransaction(context.Background(), func(context.Context, repo.Repositories) shared.Result[shared.Unit] {
		return shared.Success()
	})

	require.True(t, result.IsSuccess())
	require.Equal(t, 1, session.saveCalls)
	require.Equal(t, 1, session.commitCalls)
	require.Equal(t, 0, session.rollbackCalls)
}

func TestBeginTransaction_Failure_RollsBackAndReturnsResultUnchanged(t *testing.T) {
	session := &fakeSession{}
	uow := newUnitOfWork(session)

	failure := shared.WithErrors(http.StatusBadRequest, apperror.UserAlreadyExists)

	result := uow.BeginTransaction(context.Background(), func(context.Context, repo.Repositories) shared.Result[shared.Unit] {
		return failure
	})

	require.True(t, result.IsFailure())
	require.Equal(t, http.StatusBadRequest, result.StatusCode())
	require.Equal(t, []shared.CustomError{apperror.UserAlreadyExists}, result.Errors())
	require.Equal(t, 0, session.saveCalls)
	require.Equal(t, 0, session.commitCalls)
	require.Equal(t, 1, session.rollbackCalls)
}

func TestBeginTransaction_Panic_RollsBackAndReturnsInternalError(t *testing.T) {
	session := &fakeSession{}
	uow := newUnitOfWork(session)

	var result shared.Result[shared.Unit]
	require.NotPanics(t, func() {
		result = uow.BeginTransaction(context.Background(), func(context.Context, repo.Repositories) shared.Result[shared.Unit] {
			panic("boom")
		})
	})

	require.True(t, result.IsFailure())
	require.Equal(t, apperror.InternalError, result.Error())
	require.Equal(t, 0, session.commitCalls)
	require.Equal(t, 1, session.rollbackCalls)
}

func TestBeginTransaction_BeginError_ReturnsInternalError(t *testing.T) {
	uow := postgres.NewUnitOfWorkWithFactory(func(context.Context) (repo.Session, error) {
		return nil, errors.New("connection refused")
	}, logger.Default())

	called := false
	result := uow.BeginTransaction(context.Background(), func(context.Context, repo.Repositories) shared.Result[shared.Unit] {
		called = true
		return shared.Success()
	})

	require.True(t, result.IsFailure())
	require.Equal(t, apperror.InternalError, result.Error())
	require.False(t, called)
}

func TestBeginTransaction_SaveChangesError_RollsBack(t *testing.T) {
	session := &fakeSession{saveErr: errors.New("flush failed")}
	uow := newUnitOfWork(session)

	result := uow.BeginTransaction(context.Background(), func(context.Context, repo.Repositories) shared.Result[shared.Unit] {
		return shared.Success()
	})

	require.True(t, result.IsFailure())
	require.Equal(t, apperror.InternalError, result.Error())
	require.Equal(t, 0, session.commitCalls)
	require.Equal(t, 1, session.rollbackCalls)
}

func TestBeginTransaction_CommitError_ReturnsInternalError(t *testing.T) {
	session := &fakeSession{commitErr: errors.New("commit failed")}
	uow := newUnitOfWork(session)

	result := uow.BeginTransaction(context.Background(), func(context.Context, repo.Repositories) shared.Result[shared.Unit] {
		return shared.Success()
	})

	require.True(t, result.IsFailure())
	require.Equal(t, apperror.InternalError, result.Error())
	require.Equal(t, 1, session.commitCalls)
	require.Equal(t, 0, session.rollbackCalls)
}
