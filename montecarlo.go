package lander

import (
	"fmt"
	"math"
	"math/rand"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat"
	"github.com/gonum/stat/distmv"
)

/* Dispersion analysis: rerun the closure over a Gaussian cloud of input
parameters to bound the sensitivity of the converged design. */

// Dispersion samples (isp, Δv descent, Δv ascent, payload) from a multivariate
// normal centered on a baseline parameter set and reruns the closure per draw.
type Dispersion struct {
	base    DesignParameters
	dist    *distmv.Normal
	samples int
}

// NewDispersion returns a dispersion study of the given baseline. The sigmas
// are the 1-σ dispersions on isp (s), on each Δv (m/s) and on the payload
// override (kg); dimensions with a zero sigma are held fixed. The baseline
// must carry a payload override so the payload dimension has a mean.
func NewDispersion(base DesignParameters, σIsp, σΔv, σPayload float64, samples int, src *rand.Rand) (*Dispersion, error) {
	base = base.withDefaults()
	if err := base.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(base.PayloadOverride) {
		return nil, fmt.Errorf("dispersion requires a baseline payload override")
	}
	if samples <= 0 {
		return nil, fmt.Errorf("sample count must be strictly positive (got %d)", samples)
	}
	if σIsp < 0 || σΔv < 0 || σPayload < 0 {
		return nil, fmt.Errorf("sigmas must not be negative (got %f, %f, %f)", σIsp, σΔv, σPayload)
	}
	μ := []float64{base.Isp, base.ΔvDescent, base.ΔvAscent, base.PayloadOverride}
	// Diagonal covariance; a tiny floor keeps the distribution non-singular
	// when a dimension is held fixed.
	variance := func(σ float64) float64 {
		if σ == 0 {
			return 1e-16
		}
		return σ * σ
	}
	Σ := mat64.NewSymDense(4, []float64{
		variance(σIsp), 0, 0, 0,
		0, variance(σΔv), 0, 0,
		0, 0, variance(σΔv), 0,
		0, 0, 0, variance(σPayload),
	})
	dist, ok := distmv.NewNormal(μ, Σ, src)
	if !ok {
		return nil, fmt.Errorf("could not build the input distribution (non positive-definite covariance)")
	}
	return &Dispersion{base: base, dist: dist, samples: samples}, nil
}

// DispersionSummary stores the statistics of the converged total masses.
type DispersionSummary struct {
	Samples   int     // draws attempted
	Converged int     // draws whose closure converged
	Rejected  int     // draws rejected as non-physical
	MeanTotal float64 // kg, over converged draws
	σTotal    float64 // kg
	MinTotal  float64 // kg
	MaxTotal  float64 // kg
}

func (s DispersionSummary) String() string {
	return fmt.Sprintf("dispersion: %d/%d converged (%d rejected), total %.0f ± %.0f kg [%.0f, %.0f]",
		s.Converged, s.Samples, s.Rejected, s.MeanTotal, s.σTotal, s.MinTotal, s.MaxTotal)
}

// Run executes the dispersion study. Draws with non-physical values (negative
// payload, non-positive isp or Δv) are counted as rejected, not errors.
func (d *Dispersion) Run() (DispersionSummary, error) {
	summary := DispersionSummary{Samples: d.samples, MinTotal: math.Inf(1), MaxTotal: math.Inf(-1)}
	totals := make([]float64, 0, d.samples)
	for i := 0; i < d.samples; i++ {
		draw := d.dist.Rand(nil)
		params := d.base
		params.Isp = draw[0]
		params.ΔvDescent = draw[1]
		params.ΔvAscent = draw[2]
		params.PayloadOverride = draw[3]
		if params.Validate() != nil {
			summary.Rejected++
			continue
		}
		designer, err := NewDesignerWithLogger(params, kitlog.NewNopLogger())
		if err != nil {
			summary.Rejected++
			continue
		}
		rslt, err := designer.Run()
		if err != nil || !rslt.Converged {
			continue
		}
		summary.Converged++
		totals = append(totals, rslt.TotalMass)
		summary.MinTotal = math.Min(summary.MinTotal, rslt.TotalMass)
		summary.MaxTotal = math.Max(summary.MaxTotal, rslt.TotalMass)
	}
	if len(totals) == 0 {
		return summary, fmt.Errorf("no draw converged out of %d samples", d.samples)
	}
	summary.MeanTotal = stat.Mean(totals, nil)
	summary.σTotal = stat.StdDev(totals, nil)
	return summary, nil
}
