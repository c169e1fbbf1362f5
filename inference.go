package regress

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

type inference struct {
	r2         float64   // coefficient of determination
	adjustedR2 float64   // adjusted for residual degrees of freedom
	tStats     []float64 // per-coefficient t statistics
	pValues    []float64 // two-sided p values
	fStat      float64   // regression F statistic
	fProb      float64   // Prob (F-statistic)
}

// computeInference derives the goodness-of-fit and significance statistics from
// an already-solved model. With an intercept the variation terms are centered on
// the response mean; without one the uncentered sums are used.
func computeInference(response, fitted, residuals, coeffs, standardErrors []float64, hasIntercept bool, residualDegreeOfFreedom int) *inference {
	numOfObservations := len(response)

	var unexplainedVariation float64
	for _, residual := range residuals {
		unexplainedVariation += residual * residual
	}

	var explainedVariation float64
	if hasIntercept {
		meanOfResponse := stat.Mean(response, nil)
		for _, pv := range fitted {
			explainedVariation += (pv - meanOfResponse) * (pv - meanOfResponse)
		}
	} else {
		for _, pv := range fitted {
			explainedVariation += pv * pv
		}
	}
	totalVariation := unexplainedVariation + explainedVariation

	r2 := 1 - unexplainedVariation/totalVariation

	totalDegreeOfFreedom := numOfObservations
	if hasIntercept {
		totalDegreeOfFreedom--
	}
	regressionDegreeOfFreedom := len(coeffs)
	if hasIntercept {
		regressionDegreeOfFreedom--
	}

	adjustedR2 := 1 - (unexplainedVariation/float64(residualDegreeOfFreedom))/(totalVariation/float64(totalDegreeOfFreedom))

	fStat := (explainedVariation / float64(regressionDegreeOfFreedom)) / (unexplainedVariation / float64(residualDegreeOfFreedom))
	fProb := distuv.F{
		D1: float64(regressionDegreeOfFreedom),
		D2: float64(residualDegreeOfFreedom),
	}.Survival(fStat)

	tDistribution := distuv.StudentsT{
		Mu:    0,
		Sigma: 1,
		Nu:    float64(residualDegreeOfFreedom),
	}
	tStats, pValues := make([]float64, len(coeffs)), make([]float64, len(coeffs))
	for i, coeff := range coeffs {
		tStats[i] = coeff / standardErrors[i]
		pValues[i] = tDistribution.Survival(math.Abs(tStats[i])) * 2
	}

	return &inference{
		r2:         r2,
		adjustedR2: adjustedR2,
		tStats:     tStats,
		pValues:    pValues,
		fStat:      fStat,
		fProb:      fProb,
	}
}
