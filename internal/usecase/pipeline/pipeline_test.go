package pipeline_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"strength-api/internal/domain/shared"
	"strength-api/internal/usecase/pipeline"
)

type testCommand struct {
	Name string
}

type countingHandler struct {
	calls int32
}

func (h *countingHandler) Handle(_ context.Context, _ testCommand) shared.Result[string] {
	atomic.AddInt32(&h.calls, 1)
	return shared.SuccessWith("handled")
}

type staticValidator struct {
	errs []shared.CustomError
}

func (v *staticValidator) Validate(_ context.Context, _ testCommand) []shared.CustomError {
	return v.errs
}

func TestExecute_NoValidators_CallsHandler(t *testing.T) {
	h := &countingHandler{}
	p := pipeline.New[testCommand, string](h)

	r := p.Execute(context.Background(), testCommand{Name: "x"})

	require.True(t, r.IsSuccess())
	require.Equal(t, "handled", r.Value())
	require.Equal(t, int32(1), h.calls)
}

func TestExecute_AllValidatorsPass_CallsHandlerOnce(t *testing.T) {
	h := &countingHandler{}
	p := pipeline.New[testCommand, string](h,
		&staticValidator{},
		&staticValidator{},
	)

	r := p.Execute(context.Background(), testCommand{Name: "x"})

	require.True(t, r.IsSuccess())
	require.Equal(t, int32(1), h.calls)
}

func TestExecute_CollectsErrorsFromAllValidators(t *testing.T) {
	errA := shared.CustomError{Code: "Email", Description: "must not be empty"}
	errB := shared.CustomError{Code: "Password", Description: "must be at least 8 characters long"}

	h := &countingHandler{}
	p := pipeline.New[testCommand, string](h,
		&staticValidator{errs: []shared.CustomError{errA}},
		&staticValidator{errs: []shared.CustomError{errB}},
	)

	r := p.Execute(context.Background(), testCommand{})

	require.True(t, r.IsFailure())
	require.Equal(t, shared.ValidationError, r.Error())
	require.Equal(t, http.StatusBadRequest, r.StatusCode())
	require.ElementsMatch(t, []shared.CustomError{errA, errB}, r.Errors())
	require.Equal(t, int32(0), h.calls, "handler must not run when validation fails")
}

func TestExecute_DeduplicatesIdenticalErrors(t *testing.T) {
	dup := shared.CustomError{Code: "Email", Description: "must not be empty"}
	other := shared.CustomError{Code: "Name", Description: "must not be empty"}

	h := &countingHandler{}
	p := pipeline.New[testCommand, string](h,
		&staticValidator{errs: []shared.CustomError{dup, other}},
		&staticValidator{errs: []shared.CustomError{dup}},
	)

	r := p.Execute(context.Background(), testCommand{})

	require.True(t, r.IsFailure())
	require.Len(t, r.Errors(), 2)
	require.Contains(t, r.Errors(), dup)
	require.Contains(t, r.Errors(), other)
}
