package regress

import (
	"fmt"

	"github.com/statgo/regress/logger"
)

// Fit estimates an ordinary least-squares multiple linear regression of the
// response on the given predictor columns. Each predictor is one column of
// observations; all predictors and the response must have identical length.
// When hasIntercept is true a constant term is estimated and reported first.
//
// The whole model is computed eagerly in this call; a non-nil *FitResult is
// immutable and safe for concurrent use.
func Fit(predictors [][]float64, response []float64, hasIntercept bool) (*FitResult, error) {
	numOfObservations := len(response)
	if len(predictors) == 0 {
		return nil, fmt.Errorf("%w: no predictor columns", ErrInvalidInput)
	}
	if numOfObservations == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidInput)
	}
	for i, predictor := range predictors {
		if len(predictor) != numOfObservations {
			return nil, fmt.Errorf("%w: predictor %d has %d observations, response has %d",
				ErrInvalidInput, i, len(predictor), numOfObservations)
		}
	}

	numOfCoeffs := len(predictors)
	if hasIntercept {
		numOfCoeffs++
	}
	residualDegreeOfFreedom := numOfObservations - numOfCoeffs
	if residualDegreeOfFreedom <= 0 {
		return nil, fmt.Errorf("%w: %d observations cannot support %d coefficients",
			ErrInsufficientData, numOfObservations, numOfCoeffs)
	}

	// Snapshot the inputs so that later mutation of the caller's slices cannot
	// retroactively change the fitted result.
	predictors = clonePredictors(predictors)
	response = cloneVector(response)

	a := designMatrix(predictors, numOfObservations, hasIntercept)
	solution, err := solveLeastSquares(a, response)
	if err != nil {
		logger.Err.Println(err)
		return nil, err
	}

	fitted := fittedValues(a, solution.coeffs)
	residuals := computeResiduals(response, fitted)
	sigma2 := residualVariance(residuals, residualDegreeOfFreedom)
	stdErrs, err := standardErrors(solution.atAInv, sigma2, numOfCoeffs)
	if err != nil {
		logger.Err.Println(err)
		return nil, err
	}

	inf := computeInference(response, fitted, residuals, solution.coeffs, stdErrs, hasIntercept, residualDegreeOfFreedom)

	logger.Info.Printf("Completed: %d observations, %d coefficients", numOfObservations, numOfCoeffs)

	return &FitResult{
		predictors:     predictors,
		response:       response,
		hasIntercept:   hasIntercept,
		coeffs:         solution.coeffs,
		standardErrors: stdErrs,
		fitted:         fitted,
		residuals:      residuals,
		sigma2:         sigma2,
		inference:      inf,
	}, nil
}

// Builder is optional sugar over Fit. The zero value is not ready for use;
// create one with NewBuilder, which enables the intercept by default.
type Builder struct {
	predictors   [][]float64
	response     []float64
	hasIntercept bool
}

// NewBuilder returns a builder with the intercept enabled.
func NewBuilder() *Builder {
	return &Builder{hasIntercept: true}
}

// From copies the configuration of an existing fit into the builder.
func (b *Builder) From(result *FitResult) *Builder {
	b.predictors = result.Predictors()
	b.response = result.Response()
	b.hasIntercept = result.HasIntercept()
	return b
}

// Predictors sets the predictor columns.
func (b *Builder) Predictors(predictors [][]float64) *Builder {
	b.predictors = clonePredictors(predictors)
	return b
}

// Predictor sets a single predictor column.
func (b *Builder) Predictor(predictor []float64) *Builder {
	b.predictors = [][]float64{cloneVector(predictor)}
	return b
}

// Response sets the response column.
func (b *Builder) Response(response []float64) *Builder {
	b.response = cloneVector(response)
	return b
}

// HasIntercept controls whether a constant term is estimated.
func (b *Builder) HasIntercept(hasIntercept bool) *Builder {
	b.hasIntercept = hasIntercept
	return b
}

// Fit runs the regression with the builder's current configuration.
func (b *Builder) Fit() (*FitResult, error) {
	return Fit(b.predictors, b.response, b.hasIntercept)
}

func cloneVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

func clonePredictors(predictors [][]float64) [][]float64 {
	out := make([][]float64, len(predictors))
	for i, predictor := range predictors {
		out[i] = cloneVector(predictor)
	}
	return out
}
