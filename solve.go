package regress

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// designMatrix assembles the n×p regression matrix: a constant column of ones
// first when an intercept is requested, then the predictor columns in input order.
// Inputs are validated by the caller.
func designMatrix(predictors [][]float64, numOfObservations int, hasIntercept bool) *mat.Dense {
	numOfCoeffs := len(predictors)
	if hasIntercept {
		numOfCoeffs++
	}
	a := mat.NewDense(numOfObservations, numOfCoeffs, nil)
	col := 0
	if hasIntercept {
		for i := 0; i < numOfObservations; i++ {
			a.Set(i, 0, 1)
		}
		col = 1
	}
	for _, predictor := range predictors {
		for i, v := range predictor {
			a.Set(i, col, v)
		}
		col++
	}
	return a
}

type leastSquaresSolution struct {
	coeffs []float64     // β minimizing ‖Aβ − y‖²
	atAInv *mat.SymDense // (AᵗA)⁻¹ reconstructed as R⁻¹(R⁻¹)ᵀ
}

// solveLeastSquares solves A·β ≈ y through a QR factorization. β comes straight
// from the decomposition-based solver; R is then inverted by a triangular solve
// and (AᵗA)⁻¹ is reconstructed as the outer product of R⁻¹, so AᵗA is never
// formed nor inverted directly.
func solveLeastSquares(a *mat.Dense, response []float64) (*leastSquaresSolution, error) {
	numOfObservations, numOfCoeffs := a.Dims()

	qr := new(mat.QR)
	qr.Factorize(a)

	y := mat.NewVecDense(numOfObservations, response)
	b := new(mat.Dense)
	if err := qr.SolveTo(b, false, y); err != nil {
		if errors.As(err, &matConditionError) {
			return nil, wrapAsSingularMatrixError(err)
		}
		return nil, fmt.Errorf("regress: least-squares solve failed: %w", err)
	}

	qrR := new(mat.Dense)
	qr.RTo(qrR)
	r := mat.NewTriDense(numOfCoeffs, mat.Upper, nil)
	for i := 0; i < numOfCoeffs; i++ {
		for j := i; j < numOfCoeffs; j++ {
			r.SetTri(i, j, qrR.At(i, j))
		}
	}

	rInv := mat.NewTriDense(numOfCoeffs, mat.Upper, nil)
	if err := rInv.InverseTri(r); err != nil {
		if errors.As(err, &matConditionError) {
			return nil, wrapAsSingularMatrixError(err)
		}
		return nil, fmt.Errorf("regress: cannot invert R: %w", err)
	}

	atAInv := new(mat.SymDense)
	atAInv.SymOuterK(1, rInv)

	coeffs := make([]float64, numOfCoeffs)
	mat.Col(coeffs, 0, b)

	return &leastSquaresSolution{coeffs: coeffs, atAInv: atAInv}, nil
}

// fittedValues computes A·β.
func fittedValues(a *mat.Dense, coeffs []float64) []float64 {
	numOfObservations, numOfCoeffs := a.Dims()
	fitted := new(mat.VecDense)
	fitted.MulVec(a, mat.NewVecDense(numOfCoeffs, coeffs))
	vals := make([]float64, numOfObservations)
	mat.Col(vals, 0, fitted)
	return vals
}

func computeResiduals(response, fitted []float64) []float64 {
	residuals := make([]float64, len(response))
	for i, ov := range response {
		residuals[i] = ov - fitted[i]
	}
	return residuals
}

// residualVariance estimates σ² = Σresidual² / (n − p). The caller guarantees
// the residual degrees of freedom are strictly positive.
func residualVariance(residuals []float64, residualDegreeOfFreedom int) float64 {
	var residualSumOfSquares float64
	for _, residual := range residuals {
		residualSumOfSquares += residual * residual
	}
	return residualSumOfSquares / float64(residualDegreeOfFreedom)
}

// standardErrors scales (AᵗA)⁻¹ by σ² into the coefficient covariance matrix and
// extracts the square roots of its diagonal.
func standardErrors(atAInv *mat.SymDense, sigma2 float64, numOfCoeffs int) ([]float64, error) {
	covariance := new(mat.SymDense)
	covariance.ScaleSym(sigma2, atAInv)

	errs := make([]float64, numOfCoeffs)
	for i := range errs {
		v := covariance.At(i, i)
		if v < 0 {
			return nil, fmt.Errorf("%w: negative variance %g for coefficient %d", ErrNumeric, v, i)
		}
		errs[i] = math.Sqrt(v)
	}
	return errs, nil
}
