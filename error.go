package regress

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidInput signals that the supplied predictors or response were malformed:
	// mismatched column lengths, an empty predictor set, or an empty response.
	ErrInvalidInput = errors.New("regress: invalid input")
	// ErrInsufficientData signals that there are not enough observations to estimate
	// the requested number of coefficients (degrees of freedom would be zero or negative).
	ErrInsufficientData = errors.New("regress: insufficient observations")
	// ErrNumeric signals an internal numeric invariant violation, such as a negative
	// entry on the covariance matrix diagonal.
	ErrNumeric = errors.New("regress: numeric invariant violation")

	// ErrSingularMatrix matches any *SingularMatrixError via errors.Is.
	ErrSingularMatrix = &SingularMatrixError{}

	matConditionError    = mat.Condition(0)           // matrix singular or near-singular
	matConditionErrorInf = mat.Condition(math.Inf(1)) // matrix exactly singular
)

// SingularMatrixError reports a rank-deficient design matrix: the QR solve or the
// triangular inversion found the system singular or too ill-conditioned to trust.
type SingularMatrixError struct {
	err     error
	exactly bool
}

func (e *SingularMatrixError) Error() string {
	if e.err == nil {
		return "regress: singular design matrix"
	}
	return "regress: singular design matrix: " + e.err.Error()
}

func (e *SingularMatrixError) Is(err error) bool {
	_, ok := err.(*SingularMatrixError)
	return ok
}

func (e *SingularMatrixError) Unwrap() error {
	return e.err
}

// ExactlySingular reports whether the matrix was exactly singular, as opposed
// to near-singular beyond the backend's condition tolerance.
func (e *SingularMatrixError) ExactlySingular() bool {
	return e.exactly
}

func wrapAsSingularMatrixError(err error) *SingularMatrixError {
	return &SingularMatrixError{
		err:     err,
		exactly: errors.Is(err, matConditionErrorInf),
	}
}
