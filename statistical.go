package lander

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
)

/* Statistical mass model: two independent 2nd-order regressions over the
historical lander database, evaluated at a candidate total mass. */

// polyFit holds the coefficients of a least-squares polynomial, lowest order first.
type polyFit struct {
	coeffs []float64
}

// At evaluates the polynomial at x via Horner's rule.
func (p polyFit) At(x float64) float64 {
	y := 0.0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return y
}

var (
	fitsComputed = false
	payloadFit   polyFit
	dryMassFit   polyFit
)

// fitPoly computes the least-squares polynomial of the given order through the
// provided points by solving the Vandermonde system with mat64.
func fitPoly(xs, ys []float64, order int) polyFit {
	vand := mat64.NewDense(len(xs), order+1, nil)
	for i, x := range xs {
		v := 1.0
		for j := 0; j <= order; j++ {
			vand.Set(i, j, v)
			v *= x
		}
	}
	rhs := mat64.NewVector(len(ys), ys)
	var sol mat64.Dense
	if err := sol.Solve(vand, rhs); err != nil {
		panic(fmt.Errorf("singular Vandermonde system in historical fit: %s", err))
	}
	coeffs := make([]float64, order+1)
	for j := 0; j <= order; j++ {
		coeffs[j] = sol.At(j, 0)
	}
	return polyFit{coeffs}
}

// massFits returns the cached payload and dry-mass regressions, computing them
// on first use. The historical data is static so the fit never changes.
func massFits() (payload, dryMass polyFit) {
	if fitsComputed {
		return payloadFit, dryMassFit
	}
	xsPayload := make([]float64, len(payloadFitIdx))
	for i, idx := range payloadFitIdx {
		xsPayload[i] = histTotalMass[idx]
	}
	xsDry := make([]float64, len(dryMassFitIdx))
	for i, idx := range dryMassFitIdx {
		xsDry[i] = histTotalMass[idx]
	}
	payloadFit = fitPoly(xsPayload, histPayload[:], 2)
	dryMassFit = fitPoly(xsDry, histDryMass[:], 2)
	fitsComputed = true
	return payloadFit, dryMassFit
}

// EstimateMasses predicts the payload, dry and inert masses of a lander of the
// provided total mass from the historical regressions. The fit is trained on
// vehicles between ~4,700 and 43,400 kg; inputs outside that range extrapolate
// without any guard.
func EstimateMasses(totalMass float64) (payload, dryMass, inertMass float64) {
	pFit, dFit := massFits()
	payload = pFit.At(totalMass)
	dryMass = dFit.At(totalMass)
	inertMass = payload + dryMass
	return
}

// PayloadRequirements returns the minimum and maximum payload masses needed to
// support the given crew for the given surface duration, bracketed by the
// additional cargo allowances.
func PayloadRequirements(crewCount, durationDays int, additionalMin, additionalMax float64) (payloadMin, payloadMax float64, err error) {
	if crewCount < 0 || durationDays < 0 {
		return 0, 0, fmt.Errorf("crew count and mission duration must not be negative (got %d, %d)", crewCount, durationDays)
	}
	crew := float64(crewCount) * CrewMemberMass
	consumables := float64(crewCount) * float64(durationDays) * ConsumablesPerCrewDay
	payloadMin = crew + consumables + additionalMin
	payloadMax = crew + consumables + additionalMax
	return
}
