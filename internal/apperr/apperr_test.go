package apperr_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/avocado/internal/apperr"
)

var errTemplate = &apperr.Error{
	Message: "bad line %d",
}

func TestFmt(t *testing.T) {
	err := errTemplate.Fmt(3)

	assert.Equal(t, "bad line 3", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.Equal(t, "bad line %d", errTemplate.Message)
}

func TestWrap(t *testing.T) {
	err := errTemplate.Fmt(7).Wrap(fs.ErrNotExist)

	assert.Equal(t, "bad line 7: file does not exist", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestIsDistinguishesTemplates(t *testing.T) {
	other := &apperr.Error{Message: "bad line %d"}

	assert.False(t, errors.Is(errTemplate.Fmt(1), other))
}
