package go2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davider90/argumappr/internal/go2"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1, go2.Min(1, 2))
	assert.Equal(t, 2, go2.Max(1, 2))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3.0, go2.Abs(-3.0))
	assert.Equal(t, 3.0, go2.Abs(3.0))
}

func TestContainsFilter(t *testing.T) {
	els := []int{1, 2, 3, 4}
	assert.True(t, go2.Contains(els, 3))
	assert.False(t, go2.Contains(els, 5))
	assert.Equal(t, []int{2, 4}, go2.Filter(els, func(v int) bool { return v%2 == 0 }))
}
