package seofetch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/seofetch"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := seofetch.Errorf(seofetch.ENOTFOUND, "job %q not found", "test")

	assert.Equal(t, seofetch.ENOTFOUND, seofetch.ErrorCode(err))
	assert.Equal(t, "job \"test\" not found", seofetch.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seofetch.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seofetch.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading config: %w", seofetch.Errorf(seofetch.EINVALID, "max pages must be positive"))

	assert.Equal(t, seofetch.EINVALID, seofetch.ErrorCode(err))
	assert.Equal(t, "max pages must be positive", seofetch.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, seofetch.EINTERNAL, seofetch.ErrorCode(err))
	assert.Equal(t, "Internal error", seofetch.ErrorMessage(err))
}
