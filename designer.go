package lander

import (
	"fmt"
	"math"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/floats"
)

/* Mass-closure solver: fixed-point iteration over the total vehicle mass,
re-sizing every subsystem each pass until the total stabilizes. */

// SolverStatus defines an enum of the closure solver states.
type SolverStatus uint8

const (
	// Running means the closure loop has not reached a terminal state.
	Running SolverStatus = iota + 1
	// Converged means the total mass change fell below the tolerance.
	Converged
	// Exhausted means the iteration cap was reached before convergence.
	Exhausted
)

func (s SolverStatus) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	}
	panic("cannot stringify unknown solver status")
}

// NoPayloadOverride marks the payload override as unset in DesignParameters.
var NoPayloadOverride = math.NaN()

// DesignParameters defines the inputs of one closure run. Zero values for the
// Δv entries, MaxIterations and Tolerance select the defaults.
type DesignParameters struct {
	InitialTotalMass float64 // kg, initial guess
	CrewCount        int
	MissionDuration  int     // surface days
	ΔvDescent        float64 // m/s; 0 selects the margined baseline
	ΔvAscent         float64 // m/s; 0 selects the margined baseline
	Isp              float64 // s
	PayloadOverride  float64 // kg; NaN (NoPayloadOverride) uses the statistical estimate
	MaxIterations    int     // 0 selects 20
	Tolerance        float64 // kg; 0 selects 10
}

// NewDesignParameters returns the parameters for the baseline RL10B-2 vehicle
// with margined Artemis Δv and the default convergence policy.
func NewDesignParameters(initialTotalMass float64, crewCount, missionDuration int) DesignParameters {
	return DesignParameters{
		InitialTotalMass: initialTotalMass,
		CrewCount:        crewCount,
		MissionDuration:  missionDuration,
		ΔvDescent:        ΔvLLOToSurface * ΔvMargin,
		ΔvAscent:         ΔvSurfaceToLLO * ΔvMargin,
		Isp:              IspRL10B2,
		PayloadOverride:  NoPayloadOverride,
		MaxIterations:    20,
		Tolerance:        10.0,
	}
}

// withDefaults fills the defaulted entries of zero-valued fields.
func (p DesignParameters) withDefaults() DesignParameters {
	if p.ΔvDescent == 0 {
		p.ΔvDescent = ΔvLLOToSurface * ΔvMargin
	}
	if p.ΔvAscent == 0 {
		p.ΔvAscent = ΔvSurfaceToLLO * ΔvMargin
	}
	if p.MaxIterations == 0 {
		p.MaxIterations = 20
	}
	if p.Tolerance == 0 {
		p.Tolerance = 10.0
	}
	return p
}

// Validate rejects non-physical parameters. It must pass before the loop starts.
func (p DesignParameters) Validate() error {
	if p.InitialTotalMass <= 0 {
		return fmt.Errorf("initial total mass must be strictly positive (got %f kg)", p.InitialTotalMass)
	}
	if p.CrewCount < 0 {
		return fmt.Errorf("crew count must not be negative (got %d)", p.CrewCount)
	}
	if p.MissionDuration < 0 {
		return fmt.Errorf("mission duration must not be negative (got %d days)", p.MissionDuration)
	}
	if p.Isp <= 0 {
		return fmt.Errorf("specific impulse must be strictly positive (got %f s)", p.Isp)
	}
	if p.ΔvDescent <= 0 || p.ΔvAscent <= 0 {
		return fmt.Errorf("Δv must be strictly positive (got descent %f, ascent %f m/s)", p.ΔvDescent, p.ΔvAscent)
	}
	if !math.IsNaN(p.PayloadOverride) && p.PayloadOverride < 0 {
		return fmt.Errorf("payload override must not be negative (got %f kg)", p.PayloadOverride)
	}
	if p.MaxIterations <= 0 {
		return fmt.Errorf("maximum iteration count must be strictly positive (got %d)", p.MaxIterations)
	}
	if p.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be strictly positive (got %f kg)", p.Tolerance)
	}
	return nil
}

// IterationRecord stores the masses of one closure pass. Records are appended
// to the run's history and never mutated afterwards.
type IterationRecord struct {
	Iteration      int     // 1-based
	TotalMass      float64 // kg, updated total at the end of the pass
	Payload        float64 // kg
	DryMass        float64 // kg
	InertMass      float64 // kg
	PropellantMass float64 // kg
	StructureMass  float64 // kg, structure + TPS + landing gear
	SubsystemsMass float64 // kg, avionics + ECLSS + EPS + TCS
}

// SubsystemDesign combines the independently sized subsystems of one pass.
type SubsystemDesign struct {
	Avionics SubsystemBudget
	ECLSS    SubsystemBudget
	EPS      EPSDesign
	TCS      TCSDesign
}

// Mass returns the summed subsystem mass in kg.
func (s SubsystemDesign) Mass() float64 {
	return s.Avionics.Mass + s.ECLSS.Mass + s.EPS.TotalMass + s.TCS.TotalMass
}

// MassFractions stores the derived fractions of a closed design.
type MassFractions struct {
	Payload    float64 // payload / total
	Dry        float64 // dry / total
	Propellant float64 // propellant / total
	MassRatio  float64 // total / inert
}

// NewMassFractions derives the mass fractions, rejecting degenerate totals
// rather than returning infinities.
func NewMassFractions(total, payload, dry, inert, propellant float64) (MassFractions, error) {
	var f MassFractions
	if floats.EqualWithinAbs(total, 0, massε) {
		return f, fmt.Errorf("total mass is degenerate (%g kg): fractions undefined", total)
	}
	if floats.EqualWithinAbs(inert, 0, massε) {
		return f, fmt.Errorf("inert mass is degenerate (%g kg): mass ratio undefined", inert)
	}
	f.Payload = payload / total
	f.Dry = dry / total
	f.Propellant = propellant / total
	f.MassRatio = total / inert
	return f, nil
}

// Results is the frozen snapshot produced when the closure loop terminates.
type Results struct {
	Converged      bool
	Iterations     int
	TotalMass      float64 // kg
	Payload        float64 // kg
	DryMass        float64 // kg
	InertMass      float64 // kg
	PropellantMass float64 // kg
	Propellant     PropellantBreakdown
	Propulsion     PropulsionDesign
	Subsystems     SubsystemDesign
	StructureTPS   float64 // kg
	LandingGear    float64 // kg
	Fractions      MassFractions
}

// Designer runs the iterative mass closure. Each Designer owns exactly one
// run: its history and results are never shared with another run.
type Designer struct {
	params  DesignParameters
	logger  kitlog.Logger
	status  SolverStatus
	history []IterationRecord
	results *Results
}

// NewDesigner returns a Designer logging to stdout in logfmt.
func NewDesigner(params DesignParameters) (*Designer, error) {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "subsys", "closure")
	return NewDesignerWithLogger(params, klog)
}

// NewDesignerWithLogger is the same as NewDesigner with a caller-provided
// logger (use kitlog.NewNopLogger() to run headless).
func NewDesignerWithLogger(params DesignParameters, logger kitlog.Logger) (*Designer, error) {
	params = params.withDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Designer{params: params, logger: logger, status: Running}, nil
}

// Parameters returns the validated parameters of this run.
func (d *Designer) Parameters() DesignParameters {
	return d.params
}

// Status returns the state of the closure loop.
func (d *Designer) Status() SolverStatus {
	return d.status
}

// History returns a copy of the per-iteration records accumulated so far.
func (d *Designer) History() []IterationRecord {
	hist := make([]IterationRecord, len(d.history))
	copy(hist, d.history)
	return hist
}

// Results returns the frozen snapshot, or false if the loop has not terminated.
func (d *Designer) Results() (Results, bool) {
	if d.results == nil {
		return Results{}, false
	}
	return *d.results, true
}

// designSubsystems sizes the subsystems of one pass. None of them depend on
// the iterated total mass, so every pass recomputes identical values; the
// recomputation keeps the per-iteration trace faithful to the loop structure.
func designSubsystems() (SubsystemDesign, error) {
	var s SubsystemDesign
	s.Avionics = AvionicsBaseline()
	s.ECLSS = ECLSSBaseline()
	eps, err := NewEPS(4000, 4700).Design()
	if err != nil {
		return s, err
	}
	tcs, err := NewTCS().Design()
	if err != nil {
		return s, err
	}
	s.EPS = eps
	s.TCS = tcs
	return s, nil
}

// Run executes the closure loop until convergence or the iteration cap. A run
// which hits the cap is not an error: the best available result is returned
// with Converged set to false and a warning logged. Run may only be called
// once per Designer.
func (d *Designer) Run() (Results, error) {
	if d.status != Running {
		return Results{}, fmt.Errorf("closure already terminated (%s): create a new Designer for a new run", d.status)
	}
	p := d.params
	d.logger.Log("level", "info", "status", "starting",
		"total(kg)", p.InitialTotalMass, "crew", p.CrewCount, "duration(days)", p.MissionDuration,
		"Δv-descent(m/s)", p.ΔvDescent, "Δv-ascent(m/s)", p.ΔvAscent, "isp(s)", p.Isp)

	totalMass := p.InitialTotalMass
	var rslt Results
	for iteration := 0; iteration < p.MaxIterations; iteration++ {
		// Statistical estimate for this candidate total mass. The propellant
		// is sized against the statistical inert mass even when the payload
		// is overridden: the override only replaces the reported payload.
		payload, dryMassStat, inertMassStat := EstimateMasses(totalMass)
		if !math.IsNaN(p.PayloadOverride) {
			payload = p.PayloadOverride
		}

		propellant, err := SizePropellant(inertMassStat, p.ΔvDescent, p.ΔvAscent, p.Isp, EarthG0, MixtureRatioLOXLH2)
		if err != nil {
			return Results{}, err
		}
		propellantMass := propellant.Total()

		propulsion, err := DesignPropulsion(totalMass, propellantMass, propellant.Hydrogen, propellant.Oxygen, propellant.TankVolH2, propellant.TankVolO2)
		if err != nil {
			return Results{}, err
		}

		subsystems, err := designSubsystems()
		if err != nil {
			return Results{}, err
		}

		structureTPS, landingGear, err := StructureAndGear(dryMassStat, inertMassStat)
		if err != nil {
			return Results{}, err
		}

		// Close the loop on the actual component masses.
		dryMassActual := subsystems.Mass() + structureTPS + landingGear + propulsion.Mass()
		inertMassActual := payload + dryMassActual
		totalMassNew := inertMassActual + propellantMass
		Δm := math.Abs(totalMassNew - totalMass)

		d.history = append(d.history, IterationRecord{
			Iteration:      iteration + 1,
			TotalMass:      totalMassNew,
			Payload:        payload,
			DryMass:        dryMassActual,
			InertMass:      inertMassActual,
			PropellantMass: propellantMass,
			StructureMass:  structureTPS + landingGear,
			SubsystemsMass: subsystems.Mass(),
		})
		d.logger.Log("level", "info", "iter", iteration+1,
			"total(kg)", totalMassNew, "payload(kg)", payload, "dry(kg)", dryMassActual,
			"propellant(kg)", propellantMass, "Δm(kg)", Δm)

		fractions, err := NewMassFractions(totalMassNew, payload, dryMassActual, inertMassActual, propellantMass)
		if err != nil {
			return Results{}, err
		}
		rslt = Results{
			Converged:      false,
			Iterations:     iteration + 1,
			TotalMass:      totalMassNew,
			Payload:        payload,
			DryMass:        dryMassActual,
			InertMass:      inertMassActual,
			PropellantMass: propellantMass,
			Propellant:     propellant,
			Propulsion:     propulsion,
			Subsystems:     subsystems,
			StructureTPS:   structureTPS,
			LandingGear:    landingGear,
			Fractions:      fractions,
		}

		if Δm < p.Tolerance {
			rslt.Converged = true
			d.status = Converged
			d.results = &rslt
			d.logger.Log("level", "notice", "status", "converged", "iterations", iteration+1, "total(kg)", totalMassNew, "Δm(kg)", Δm)
			return rslt, nil
		}
		totalMass = totalMassNew
	}
	// Cap reached: report the best available result with a warning.
	d.status = Exhausted
	d.results = &rslt
	d.logger.Log("level", "warning", "status", "exhausted", "iterations", p.MaxIterations, "total(kg)", rslt.TotalMass)
	return rslt, nil
}
