package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingCalculatorService.Error(), ErrInvalidPorts.Error())
}

func TestErrors_Messages(t *testing.T) {
	assert.Contains(t, ErrMissingCalculatorService.Error(), "calculator service")
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
