package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 116.0, RoundCurrency(115.855))
	assert.Equal(t, 160.0, RoundCurrency(159.8))
	assert.Equal(t, 3.0, RoundCurrency(3.2625))
	assert.Equal(t, 2.0, RoundCurrency(1.5))
	assert.Equal(t, 0.0, RoundCurrency(0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 1, 99))
	assert.Equal(t, 1, Clamp(-5, 1, 99))
	assert.Equal(t, 99, Clamp(150, 1, 99))
	assert.Equal(t, 42, Clamp(42, 1, 99))
}

func TestNewID(t *testing.T) {
	a := NewID("ord")
	b := NewID("ord")

	assert.True(t, strings.HasPrefix(a, "ord_"))
	assert.NotEqual(t, a, b)
}
