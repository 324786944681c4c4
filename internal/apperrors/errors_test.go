package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsMatchWithErrorsIs(t *testing.T) {
	err := InvalidArgumentf("тип %q не поддерживается", "jelly")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, `тип "jelly" не поддерживается`, err.Error())

	assert.True(t, errors.Is(NotFound("нет такого"), ErrNotFound))
	assert.True(t, errors.Is(DuplicateKey("уже есть"), ErrDuplicateKey))
}

func TestKindsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("create category: %w", DuplicateKey("уже есть"))
	assert.True(t, errors.Is(err, ErrDuplicateKey))
}
