package dist

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is a continuous uniform distribution on the interval [a, b].
type Uniform struct {
	src distuv.Uniform
}

var _ Distribution = Uniform{}

// NewUniform returns a uniform distribution on [a, b] backed by the package's
// global random source.
func NewUniform(a, b float64) Uniform {
	return Uniform{src: distuv.Uniform{Min: a, Max: b}}
}

// NewUniformSource returns a uniform distribution on [a, b] sampling from src,
// for reproducible draws.
func NewUniformSource(a, b float64, src rand.Source) Uniform {
	return Uniform{src: distuv.Uniform{Min: a, Max: b, Src: src}}
}

// Rand draws a single value from [a, b).
func (u Uniform) Rand() float64 {
	return u.src.Rand()
}

// Quantile returns a + prob·(b−a). It panics if prob is outside [0, 1].
func (u Uniform) Quantile(prob float64) float64 {
	return u.src.Quantile(prob)
}

func (u Uniform) String() string {
	return fmt.Sprintf("Uniform(%g, %g)", u.src.Min, u.src.Max)
}
