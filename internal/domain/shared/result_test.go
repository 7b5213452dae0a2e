package shared_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"strength-api/internal/domain/shared"
)

var errSample = shared.CustomError{Code: "User.NotFound", Description: "User not found"}

func TestSuccess_CarriesNoError(t *testing.T) {
	r := shared.Success()

	require.True(t, r.IsSuccess())
	require.False(t, r.IsFailure())
	require.True(t, r.Error().IsNone())
	require.Equal(t, 0, r.StatusCode())
}

func TestSuccessWith_CarriesValue(t *testing.T) {
	r := shared.SuccessWith("payload")

	require.True(t, r.IsSuccess())
	require.Equal(t, "payload", r.Value())
}

func TestFailure_CarriesError(t *testing.T) {
	r := shared.Failure(errSample)

	require.True(t, r.IsFailure())
	require.Equal(t, errSample, r.Error())
	require.Equal(t, 0, r.StatusCode())
}

func TestFailure_PanicsOnNoneError(t *testing.T) {
	require.Panics(t, func() {
		shared.Failure(shared.None)
	})
}

func TestValue_PanicsOnFailure(t *testing.T) {
	r := shared.FailureWith[string](errSample)

	require.Panics(t, func() {
		_ = r.Value()
	})
}

func TestWithErrors_CarriesStatusAndErrors(t *testing.T) {
	other := shared.CustomError{Code: "User.NotCreated", Description: "User not created"}

	r := shared.WithErrors(http.StatusBadRequest, errSample, other)

	require.True(t, r.IsFailure())
	require.Equal(t, shared.ResponseError, r.Error())
	require.Equal(t, http.StatusBadRequest, r.StatusCode())
	require.Equal(t, []shared.CustomError{errSample, other}, r.Errors())
}

func TestWithErrors_PanicsOnSuccessStatus(t *testing.T) {
	require.Panics(t, func() {
		shared.WithErrors(http.StatusOK, errSample)
	})
}

func TestValidationFailure_AlwaysBadRequest(t *testing.T) {
	r := shared.ValidationFailureFor[string](errSample)

	require.True(t, r.IsFailure())
	require.Equal(t, shared.ValidationError, r.Error())
	require.Equal(t, http.StatusBadRequest, r.StatusCode())
	require.Equal(t, []shared.CustomError{errSample}, r.Errors())
}
