package errors

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMatchesByKind(t *testing.T) {
	wrapped := Wrap(sql.ErrNoRows, ErrNotFound.Kind, ErrNotFound.Status, "student not found")
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrConflict))
	assert.True(t, errors.Is(wrapped, sql.ErrNoRows))
}

func TestCloneOverridesMessage(t *testing.T) {
	clone := Clone(ErrConflict, "Student ID already exists")
	require.NotNil(t, clone)
	assert.Equal(t, "Student ID already exists", clone.Message)
	assert.Equal(t, http.StatusBadRequest, clone.Status)
	assert.True(t, errors.Is(clone, ErrConflict))
	assert.Equal(t, "conflict", ErrConflict.Message, "sentinel must stay untouched")
}

func TestFromErrorPassthrough(t *testing.T) {
	e := New("validation", http.StatusBadRequest, "level must be positive")
	assert.Same(t, e, FromError(e))
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	e := FromError(errors.New("boom"))
	require.NotNil(t, e)
	assert.Equal(t, ErrInternal.Kind, e.Kind)
	assert.Equal(t, http.StatusInternalServerError, e.Status)
	assert.Equal(t, "boom", e.Message)
}

func TestFromErrorNil(t *testing.T) {
	assert.Nil(t, FromError(nil))
}
