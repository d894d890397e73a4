package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	assert.ErrorIs(t, Config{Model: "all-minilm"}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, Config{Host: "http://localhost:11434/v1"}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, Config{Host: "  ", Model: "x"}.Validate(), ErrInvalidConfig)
}
