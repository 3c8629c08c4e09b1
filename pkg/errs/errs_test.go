package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsCarryStatusAndCode(t *testing.T) {
	err := NewNotFoundError("User not found")
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "User not found", err.Error())

	assert.Equal(t, "CONFLICT", NewConflictError("dup").Code)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("nope").Status)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", NewUnprocessableError("too long").Code)
	assert.True(t, errors.Is(NewUnprocessableError("too long"), Unprocessable))
}

func TestIsComparesCode(t *testing.T) {
	wrapped := fmt.Errorf("auth: %w", NewUnauthorizedError("Incorrect password"))

	assert.True(t, errors.Is(wrapped, Unauthorized))
	assert.False(t, errors.Is(wrapped, Conflict))
	assert.False(t, errors.Is(errors.New("plain"), NotFound))
}

func TestAsUnwraps(t *testing.T) {
	httpErr, ok := As(fmt.Errorf("x: %w", NewConflictError("User already found")))
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.Status)

	_, ok = As(errors.New("boom"))
	assert.False(t, ok)
}
