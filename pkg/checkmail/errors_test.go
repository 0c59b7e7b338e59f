package checkmail

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	err := &FormatError{Input: "test test@gmail.com"}
	assert.Equal(t, "invalid format: test test@gmail.com", err.Error())
	assert.True(t, errors.Is(err, ErrBadFormat))
	assert.False(t, errors.Is(err, ErrUnexpected))

	// Empty input keeps the trailing separator.
	assert.Equal(t, "invalid format: ", (&FormatError{}).Error())
}

func TestUnexpectedError(t *testing.T) {
	cause := errors.New("boom")
	err := &UnexpectedError{Message: "boom", Cause: cause}
	assert.Equal(t, "unexpected error (boom)", err.Error())
	assert.True(t, errors.Is(err, ErrUnexpected))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrBadFormat))

	noCause := &UnexpectedError{Message: "no cause"}
	assert.Nil(t, noCause.Unwrap())
}

func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("signup: %w", &FormatError{Input: "x"})
	assert.True(t, errors.Is(wrapped, ErrBadFormat))

	var fe *FormatError
	assert.True(t, errors.As(wrapped, &fe))
	assert.Equal(t, "x", fe.Input)
}
