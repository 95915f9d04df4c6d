package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindBadRequest, KindOf(ErrTitleRequired))
	assert.Equal(t, KindBadRequest, KindOf(fmt.Errorf("create maintopic: %w", ErrTitleLength)))
	assert.Equal(t, KindConflict, KindOf(NewConflictError("dup", "duplicate")))
	assert.Equal(t, KindNotFound, KindOf(NewNotFoundError("maintopic")))
	assert.Equal(t, KindForbidden, KindOf(NewForbiddenError("not yours")))
	assert.Equal(t, KindUnauthorized, KindOf(NewUnauthorizedError("who are you")))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewInternalError("update failed", cause)

	assert.Equal(t, "update failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "title: title must not be null or blank", ErrTitleRequired.Error())

	nf := NewNotFoundError("maintopic")
	assert.Equal(t, "maintopic_not_found", nf.Type)
	assert.Equal(t, "not_found", nf.Kind.String())
}

func TestAsError(t *testing.T) {
	t.Parallel()

	de, ok := AsError(fmt.Errorf("wrapped: %w", ErrInvalidEmail))
	assert.True(t, ok)
	assert.Equal(t, "invalid_email", de.Type)

	_, ok = AsError(errors.New("plain"))
	assert.False(t, ok)
}
