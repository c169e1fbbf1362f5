// Package dist provides the closed-form probability distributions used
// alongside the regression core.
package dist

// Distribution is a continuous probability distribution supporting random
// sampling and quantile lookup.
type Distribution interface {
	// Rand draws a single random value from the distribution.
	Rand() float64
	// Quantile returns the value at which the cumulative distribution function
	// equals prob. It panics if prob is outside [0, 1].
	Quantile(prob float64) float64
}
