package regress

import (
	"fmt"
	"strconv"
	"strings"
)

// FitResult is the immutable outcome of a least-squares fit. All slice-valued
// accessors return defensive copies, so callers can neither observe nor cause
// mutation of the underlying model.
type FitResult struct {
	predictors     [][]float64 // original predictor columns, kept for provenance
	response       []float64   // original response, kept for provenance
	hasIntercept   bool
	coeffs         []float64 // intercept first when present
	standardErrors []float64
	fitted         []float64
	residuals      []float64
	sigma2         float64
	inference      *inference
}

// Coefficients returns the estimated coefficient vector, intercept first when
// the model includes one, followed by one coefficient per predictor in input order.
func (m *FitResult) Coefficients() []float64 {
	return cloneVector(m.coeffs)
}

// StandardErrors returns the standard error of each coefficient, in the same
// order as Coefficients.
func (m *FitResult) StandardErrors() []float64 {
	return cloneVector(m.standardErrors)
}

// FittedValues returns A·β, one predicted value per observation.
func (m *FitResult) FittedValues() []float64 {
	return cloneVector(m.fitted)
}

// Residuals returns response − fitted, elementwise.
func (m *FitResult) Residuals() []float64 {
	return cloneVector(m.residuals)
}

// ResidualVariance returns the unbiased estimate σ² = Σresidual² / (n − p).
func (m *FitResult) ResidualVariance() float64 {
	return m.sigma2
}

// HasIntercept reports whether the model includes a constant term.
func (m *FitResult) HasIntercept() bool {
	return m.hasIntercept
}

// Predictors returns the predictor columns the model was fitted on.
func (m *FitResult) Predictors() [][]float64 {
	return clonePredictors(m.predictors)
}

// Response returns the response the model was fitted on.
func (m *FitResult) Response() []float64 {
	return cloneVector(m.response)
}

// NumOfObservations returns n, the number of fitted observations.
func (m *FitResult) NumOfObservations() int {
	return len(m.response)
}

// NumOfCoefficients returns p, the number of estimated coefficients.
func (m *FitResult) NumOfCoefficients() int {
	return len(m.coeffs)
}

// RSquared returns the coefficient of determination. Without an intercept the
// uncentered definition is used.
func (m *FitResult) RSquared() float64 {
	return m.inference.r2
}

// AdjustedRSquared returns R² adjusted for the residual degrees of freedom.
func (m *FitResult) AdjustedRSquared() float64 {
	return m.inference.adjustedR2
}

// TStats returns the t statistic of each coefficient, in Coefficients order.
func (m *FitResult) TStats() []float64 {
	return cloneVector(m.inference.tStats)
}

// PValues returns the two-sided p value of each coefficient's t statistic.
func (m *FitResult) PValues() []float64 {
	return cloneVector(m.inference.pValues)
}

// FStat returns the regression F statistic.
func (m *FitResult) FStat() float64 {
	return m.inference.fStat
}

// FProb returns the probability of observing an F statistic at least as large
// under the null hypothesis that all predictor coefficients are zero.
func (m *FitResult) FProb() float64 {
	return m.inference.fProb
}

// Predict calculates the predicted response for one value per predictor,
// in the same order the predictors were supplied to Fit.
func (m *FitResult) Predict(vars []float64) (float64, error) {
	offset := 0
	var p float64
	if m.hasIntercept {
		p = m.coeffs[0]
		offset = 1
	}
	if len(vars) != len(m.coeffs)-offset {
		return 0, fmt.Errorf("%w: expected %d values, got %d", ErrInvalidInput, len(m.coeffs)-offset, len(vars))
	}
	for i, v := range vars {
		p += v * m.coeffs[offset+i]
	}
	return p, nil
}

func formatFloatForFormula(f float64) string {
	if f < 0 {
		return fmt.Sprintf(" - %.4f", -f)
	}
	return fmt.Sprintf(" + %.4f", f)
}

// FormulaString renders the fitted model as "Y = b0 + b1*X1 + ...".
func (m *FitResult) FormulaString() string {
	var sb strings.Builder
	sb.WriteString("Y =")
	offset := 0
	if m.hasIntercept {
		sb.WriteString(formatFloatForFormula(m.coeffs[0]))
		offset = 1
	}
	for i, coeff := range m.coeffs[offset:] {
		sb.WriteString(formatFloatForFormula(coeff))
		sb.WriteString("*X" + strconv.Itoa(i+1))
	}
	return sb.String()
}
