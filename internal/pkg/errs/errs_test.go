package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"waterdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("client", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: client, ID is: 42 (cause: record not found)",
			err.Error())
	})

	t.Run("non string ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("bottle count")
	assert.Equal(t, "value is invalid: bottle count", err.Error())

	err = errs.NewValueIsInvalidErrorWithCause("payment type", errors.New("unknown payment type barter"))
	assert.Equal(t, "value is invalid: payment type (cause: unknown payment type barter)", err.Error())
	assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("lat", 91.5, -90, 90)

		assert.Equal(t, "value is out of range: 91.5 is lat, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("lon", 200, -180, 180, errors.New("bad gps fix"))
		assert.Equal(t,
			"value is out of range: 200 is lon, min value is -180, max value is 180 (cause: bad gps fix)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("phone")
	assert.Equal(t, "value is required: phone", err.Error())

	err = errs.NewValueIsRequiredErrorWithCause("phone", errors.New("empty"))
	assert.Equal(t, "value is required: phone (cause: empty)", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestStateError(t *testing.T) {
	t.Run("not pending", func(t *testing.T) {
		err := errs.NewNotPendingError("order", "o-1", "canceled")

		require.ErrorIs(t, err, errs.ErrNotPending)
		assert.Equal(t, "order is not pending: cannot claim order o-1 in status canceled", err.Error())
	})

	t.Run("invalid state", func(t *testing.T) {
		err := errs.NewInvalidStateError("order", "o-1", "done", "cancel")

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.NotErrorIs(t, err, errs.ErrNotPending)
		assert.Equal(t, "invalid state: cannot cancel order o-1 in status done", err.Error())
	})

	t.Run("already assigned", func(t *testing.T) {
		err := errs.NewAlreadyAssignedError("order", "o-1", "assigned")
		require.ErrorIs(t, err, errs.ErrAlreadyAssigned)
	})
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("courier c-2", "order", "o-1")

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, "forbidden: courier c-2 is not allowed to act on order o-1", err.Error())
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Code
	}{
		{"nil", nil, ""},
		{"not found", errs.NewObjectNotFoundError("order", "1"), errs.CodeNotFound},
		{"not pending", errs.NewNotPendingError("order", "1", "canceled"), errs.CodeNotPending},
		{"invalid state", errs.NewInvalidStateError("order", "1", "done", "cancel"), errs.CodeInvalidState},
		{"already assigned", errs.NewAlreadyAssignedError("order", "1", "assigned"), errs.CodeAlreadyAssigned},
		{"forbidden", errs.NewForbiddenError("courier", "order", "1"), errs.CodeForbidden},
		{"invalid value", errs.NewValueIsInvalidError("x"), errs.CodeValidation},
		{"required value", errs.NewValueIsRequiredError("x"), errs.CodeValidation},
		{"out of range", errs.NewValueIsOutOfRangeError("x", 1, 2, 3), errs.CodeValidation},
		{"wrapped", fmt.Errorf("claim: %w", errs.NewAlreadyAssignedError("order", "1", "assigned")), errs.CodeAlreadyAssigned},
		{"joined validation", errors.Join(errs.NewValueIsRequiredError("a"), errs.NewValueIsInvalidError("b")), errs.CodeValidation},
		{"infrastructure", errors.New("connection refused"), errs.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.CodeOf(tt.err))
		})
	}
}
