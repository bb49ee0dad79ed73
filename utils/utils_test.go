package utils_test

import (
	"testing"

	"github.com/rami3l/govox/utils"
	"github.com/stretchr/testify/assert"
)

func TestBoolToNum(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, utils.BoolToNum[int](true))
	assert.Equal(t, uint8(0), utils.BoolToNum[uint8](false))
	assert.Equal(t, 1.0, utils.BoolToNum[float64](true))
}

func TestIsFloat(t *testing.T) {
	t.Parallel()
	assert.True(t, utils.IsFloat[float32]())
	assert.True(t, utils.IsFloat[float64]())
	assert.False(t, utils.IsFloat[int]())
	assert.False(t, utils.IsFloat[uint64]())
}
