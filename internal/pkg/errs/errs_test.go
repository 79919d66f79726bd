//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"rent-elegance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkAndIs(t *testing.T) {
	cause := errors.New("token malformed")
	marked := errs.Mark(cause, errs.ErrDeviceTokenInvalid)

	assert.True(t, errs.Is(marked, errs.ErrDeviceTokenInvalid))
	assert.True(t, errs.Is(marked, cause))
	assert.False(t, errs.Is(marked, errs.ErrEmptyCart))

	assert.Equal(t, errs.ErrEmptyCart, errs.Mark(nil, errs.ErrEmptyCart))
	assert.Nil(t, errs.Wrap(nil, "noop"))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("root"), "outer")
	lines := errs.ExtractStackLines(err, 3)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "outer")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
