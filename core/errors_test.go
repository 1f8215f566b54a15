package core

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type lookupErr struct{}

func (lookupErr) Error() string { return "unknown province Nowhere" }

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "wrapped error", err: NewValidationError(lookupErr{}), want: "unknown province Nowhere"},
		{name: "field error", err: NewFieldValidationError("provinces", lookupErr{}), want: "unknown province Nowhere"},
		{name: "fields only", err: NewValidationError(nil, FieldError{Field: "district", Error: "required"}), want: "district: required"},
		{name: "empty", err: NewValidationError(nil), want: "invalid input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestValidationError_unwrap(t *testing.T) {
	err := errors.Wrap(NewFieldValidationError("provinces", lookupErr{}), "listing districts")

	var vErr *ValidationError
	if assert.True(t, errors.As(err, &vErr)) {
		assert.Equal(t, []FieldError{{Field: "provinces", Error: "unknown province Nowhere"}}, vErr.Fields)
	}
	assert.True(t, errors.As(err, new(lookupErr)), "the input error stays reachable")
	assert.Equal(t, vErr, errors.Cause(err), "Cause stops at the validation error")
}

func TestIsShutdown(t *testing.T) {
	assert.True(t, IsShutdown(NewShutdownError("catalog gone")))
	assert.True(t, IsShutdown(errors.Wrap(NewShutdownError("catalog gone"), "loading")))
	assert.False(t, IsShutdown(errors.New("boom")))
	assert.False(t, IsShutdown(nil))
}
