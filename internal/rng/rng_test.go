package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixed struct {
	n int
}

func (f fixed) Intn(int) int {
	return f.n
}

func TestFloat64(t *testing.T) {
	assert.Equal(t, 0.0, Float64(fixed{n: 0}))
	assert.Equal(t, 0.5, Float64(fixed{n: 1 << 19}))
	assert.True(t, Float64(fixed{n: 1<<20 - 1}) < 1.0)

	c := Crypto{}
	for i := 0; i < 100; i++ {
		draw := Float64(c)
		assert.True(t, draw >= 0 && draw < 1)
	}
}
