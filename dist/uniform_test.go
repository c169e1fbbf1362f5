package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestUniform_Quantile(t *testing.T) {
	u := NewUniform(2, 5)

	assert.Equal(t, 2.0, u.Quantile(0))
	assert.Equal(t, 5.0, u.Quantile(1))
	assert.InDelta(t, 3.5, u.Quantile(0.5), 1e-12)
	assert.InDelta(t, 2.75, u.Quantile(0.25), 1e-12)
}

func TestUniform_QuantilePanicsOutOfRange(t *testing.T) {
	u := NewUniform(0, 1)
	assert.Panics(t, func() { u.Quantile(-0.1) })
	assert.Panics(t, func() { u.Quantile(1.1) })
}

func TestUniform_Rand(t *testing.T) {
	u := NewUniformSource(2, 5, rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := u.Rand()
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 5.0)
	}
}

func TestUniform_RandReproducible(t *testing.T) {
	first := NewUniformSource(-1, 1, rand.NewSource(42))
	second := NewUniformSource(-1, 1, rand.NewSource(42))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Rand(), second.Rand())
	}
}

func TestUniform_String(t *testing.T) {
	assert.Equal(t, "Uniform(2, 5)", NewUniform(2, 5).String())
}
