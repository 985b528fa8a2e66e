package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoFloat64InRange(t *testing.T) {
	src := NewCrypto()
	for range 1000 {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestSeededReplays(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for range 100 {
		assert.Equal(t, a.Float64(), b.Float64())
	}

	c := NewSeeded(43)
	assert.NotEqual(t, NewSeeded(42).Float64(), c.Float64())
}

func TestFixed(t *testing.T) {
	src := Fixed(0.5)
	assert.Equal(t, 0.5, src.Float64())
	assert.Equal(t, 0.5, src.Float64())
}
