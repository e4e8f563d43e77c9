package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, ValidateDescription("enterprise resource planning software"))

	for _, input := range []string{"", "   ", "\n\t"} {
		err := ValidateDescription(input)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, err, ErrEmptyDescription)
	}
}

func TestValidateTicker(t *testing.T) {
	assert.NoError(t, ValidateTicker("ACME"))

	err := ValidateTicker("  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, ErrEmptyTicker)
}
