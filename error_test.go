package regress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingularMatrixError_Wrapping(t *testing.T) {
	t.Run("exactly singular", func(t *testing.T) {
		err := wrapAsSingularMatrixError(matConditionErrorInf)
		assert.ErrorIs(t, err, ErrSingularMatrix)
		assert.True(t, err.ExactlySingular())
		assert.ErrorIs(t, err, matConditionErrorInf)
	})

	t.Run("near singular", func(t *testing.T) {
		err := wrapAsSingularMatrixError(matConditionError)
		assert.ErrorIs(t, err, ErrSingularMatrix)
		assert.False(t, err.ExactlySingular())
	})

	t.Run("matches through further wrapping", func(t *testing.T) {
		err := wrapAsSingularMatrixError(matConditionErrorInf)
		wrapped := errors.Join(errors.New("outer"), err)
		assert.ErrorIs(t, wrapped, ErrSingularMatrix)

		var singularErr *SingularMatrixError
		require.True(t, errors.As(wrapped, &singularErr))
		assert.True(t, singularErr.ExactlySingular())
	})
}

func TestSingularMatrixError_Message(t *testing.T) {
	assert.Equal(t, "regress: singular design matrix", ErrSingularMatrix.Error())
	assert.Contains(t, wrapAsSingularMatrixError(matConditionErrorInf).Error(), "singular design matrix")
}
