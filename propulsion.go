package lander

import (
	"fmt"
	"math"
)

/* Propulsion system sizing: engine thrust/nozzle/chamber solver with an
empirical mass correlation, and toroidal cryogenic tank geometry. */

// Propellant defines an enum of the cryogenic propellants handled by the tank solver.
type Propellant uint8

const (
	// LH2 is liquid hydrogen.
	LH2 Propellant = iota + 1
	// LOX is liquid oxygen.
	LOX
)

func (p Propellant) String() string {
	switch p {
	case LH2:
		return "LH2"
	case LOX:
		return "LOX"
	}
	panic("cannot stringify unknown propellant")
}

// RocketEngine sizes a LOX/LH2 engine cluster for a vehicle of a given total mass.
type RocketEngine struct {
	TotalMass      float64 // vehicle total mass, kg
	NumEngines     int
	ThrustToWeight float64 // required T/W on the lunar surface
	Throttle       float64 // design throttle setting, 0-1
	MixtureRatio   float64
	Tc             float64 // chamber temperature, K
	Pc             float64 // chamber pressure, Pa
	Pa             float64 // ambient pressure, Pa (0 in vacuum)
	γ              float64 // specific heat ratio
	R              float64 // gas constant, J/(kg·K)
	CStar          float64 // characteristic velocity, m/s

	ThrustTotal     float64 // N
	ThrustPerEngine float64 // N
}

// NewRocketEngine returns an engine cluster sized with the baseline LOX/LH2
// parameters: four engines, T/W of 3.26 on the lunar surface, 60% throttle.
func NewRocketEngine(totalMass float64) *RocketEngine {
	e := &RocketEngine{
		TotalMass:      totalMass,
		NumEngines:     4,
		ThrustToWeight: 3.26,
		Throttle:       0.6,
		MixtureRatio:   MixtureRatioLOXLH2,
		Tc:             chamberTempK,
		Pc:             chamberPressPa,
		Pa:             0,
		γ:              gammaLOXLH2,
		R:              gasConstLOXLH2,
		CStar:          cStarLOXLH2,
	}
	weight := totalMass * MoonG
	e.ThrustTotal = e.ThrustToWeight * weight
	e.ThrustPerEngine = e.ThrustTotal / (float64(e.NumEngines) * e.Throttle)
	return e
}

// NozzleGeometry stores the nozzle flow solution of one engine.
type NozzleGeometry struct {
	At, Dt   float64 // throat area (m^2) and diameter (m)
	Ae, De   float64 // exit area (m^2) and diameter (m)
	Me       float64 // exit Mach number
	Pe, Te   float64 // exit pressure (Pa) and temperature (K)
	Ve       float64 // exit velocity, m/s
	MassFlow float64 // kg/s per engine
	Isp      float64 // delivered specific impulse, s
}

// ChamberGeometry stores the combustion chamber solution.
type ChamberGeometry struct {
	Dcc, Acc float64 // chamber diameter (m) and area (m^2)
	Vcc      float64 // chamber volume, m^3
	Length   float64 // chamber length, m
}

// EngineDesign is the complete engine solution for the cluster.
type EngineDesign struct {
	NozzleGeometry
	ChamberGeometry
	DivLength, ConvLength float64 // divergent and convergent nozzle lengths, m
	NozzleLength          float64 // m
	FeedLength            float64 // m
	TotalLength           float64 // m
	EngineMass            float64 // total across all engines, kg
	BurnTime              float64 // s
	ThrustPerEngine       float64 // N
	ThrustTotal           float64 // N
}

// NozzleGeometry solves the nozzle flow for the given expansion ratio. The
// exit Mach number is the fixed design value for LOX/LH2 at ε=50 rather than
// being solved from the area ratio.
func (e *RocketEngine) NozzleGeometry(expansionRatio float64) (NozzleGeometry, error) {
	var n NozzleGeometry
	if expansionRatio <= 1 {
		return n, fmt.Errorf("expansion ratio must exceed unity (got %f)", expansionRatio)
	}
	ε := expansionRatio
	n.Me = 4.45
	// Isentropic exit conditions.
	n.Te = e.Tc / (1 + (e.γ-1)*n.Me*n.Me/2)
	n.Ve = n.Me * math.Sqrt(e.γ*e.R*n.Te)
	n.Pe = e.Pc / math.Pow(1+(e.γ-1)*n.Me*n.Me/2, e.γ/(e.γ-1))
	// Throat area from the thrust equation.
	coeff := (e.Pc/e.CStar)*n.Ve + (n.Pe-e.Pa)*ε
	n.At = e.ThrustPerEngine / coeff
	if n.At <= 0 {
		return n, fmt.Errorf("non-physical throat area %f m^2 (thrust %f N)", n.At, e.ThrustPerEngine)
	}
	n.Dt = math.Sqrt(4 * n.At / math.Pi)
	n.Ae = ε * n.At
	n.De = math.Sqrt(4 * n.Ae / math.Pi)
	n.MassFlow = n.At * e.Pc / e.CStar
	// Delivered Isp from chamber conditions plus the pressure mismatch term.
	term1 := (e.CStar * e.γ / EarthG0) * math.Sqrt(
		(2/(e.γ-1))*
			math.Pow(2/(e.γ+1), (e.γ+1)/(e.γ-1))*
			(1-math.Pow(n.Pe/e.Pc, (e.γ-1)/e.γ)))
	term2 := e.CStar * ε * (n.Pe - e.Pa) / (EarthG0 * e.Pc)
	n.Isp = term1 + term2
	return n, nil
}

// ChamberGeometry sizes the combustion chamber from the throat area using the
// typical LOX/LH2 characteristic length and a 5:1 contraction ratio.
func (e *RocketEngine) ChamberGeometry(at float64) ChamberGeometry {
	const lStar = 0.89 // m
	var c ChamberGeometry
	c.Acc = 5 * at
	c.Dcc = math.Sqrt(4 * c.Acc / math.Pi)
	c.Vcc = lStar * at
	c.Length = c.Vcc / c.Acc
	return c
}

// nozzleLengths returns the divergent (15° half-angle, 80% of the ideal cone)
// and convergent (45° half-angle) section lengths.
func nozzleLengths(dt, de, dcc float64) (div, conv float64) {
	div = 0.8 * (de - dt) / (2 * math.Tan(15*deg2rad))
	conv = (dcc - dt) / (2 * math.Cos(45*deg2rad))
	return
}

// EngineMass estimates the reported mass of the engine cluster from the
// empirical power-law correlation in engine count, thrust per engine and
// propellant mass. The leading factor of 4 is carried in the correlation
// coefficient as published, independently of NumEngines.
func (e *RocketEngine) EngineMass(propellantMass float64) float64 {
	return 4 * 0.0135 *
		math.Pow(float64(e.NumEngines), 0.4148) *
		math.Pow(e.ThrustPerEngine, 0.471) *
		math.Pow(propellantMass, 0.3574)
}

// DesignComplete performs the full engine design for the given propellant load.
func (e *RocketEngine) DesignComplete(propellantMass float64) (EngineDesign, error) {
	var d EngineDesign
	nozzle, err := e.NozzleGeometry(50)
	if err != nil {
		return d, err
	}
	chamber := e.ChamberGeometry(nozzle.At)
	div, conv := nozzleLengths(nozzle.Dt, nozzle.De, chamber.Dcc)
	if nozzle.MassFlow < massε {
		return d, fmt.Errorf("degenerate mass flow %g kg/s makes the burn time undefined", nozzle.MassFlow)
	}
	d.NozzleGeometry = nozzle
	d.ChamberGeometry = chamber
	d.DivLength = div
	d.ConvLength = conv
	d.NozzleLength = div + conv
	d.FeedLength = chamber.Length + conv
	d.TotalLength = chamber.Length + d.FeedLength + d.NozzleLength
	d.EngineMass = e.EngineMass(propellantMass)
	d.BurnTime = propellantMass / nozzle.MassFlow
	d.ThrustPerEngine = e.ThrustPerEngine
	d.ThrustTotal = e.ThrustTotal
	return d, nil
}

// CryoTank sizes a toroidal cryogenic tank for LH2 or LOX.
type CryoTank struct {
	Volume       float64 // required volume, m^3
	Prop         Propellant
	RTotal       float64 // total radius (major + minor), m
	SafetyFactor float64
	pressure     float64 // operating pressure, Pa
	rMinor       float64 // m
	σYield       float64 // Pa
}

// NewCryoTank returns a tank sized with the per-propellant design constants.
// The minor and total radii are fixed by the vehicle layout rather than being
// derived from the required volume, so the volume argument only feeds through
// to the record of the design.
func NewCryoTank(volumeRequired float64, prop Propellant) *CryoTank {
	t := &CryoTank{
		Volume:       volumeRequired,
		Prop:         prop,
		SafetyFactor: 1.5,
		σYield:       75.8e6, // aluminum alloy 2219
	}
	switch prop {
	case LH2:
		t.RTotal = 3.0 - 0.006
		t.pressure = 170e3
		t.rMinor = 1.0532
	case LOX:
		t.RTotal = 2.595 - 0.005
		t.pressure = 190e3
		t.rMinor = 0.6947
	default:
		panic(fmt.Errorf("no tank design constants for propellant %d", prop))
	}
	return t
}

// TankGeometry stores the torus geometry of a sized tank.
type TankGeometry struct {
	RMinor    float64 // minor radius, m
	RMajor    float64 // major radius, m
	RInternal float64 // central clearance radius, m
	RTotal    float64 // m
	Thickness float64 // wall thickness, mm
}

// Geometry solves the torus geometry and thin-wall thickness with the safety factor.
func (t *CryoTank) Geometry() (TankGeometry, error) {
	var g TankGeometry
	g.RMinor = t.rMinor
	g.RMajor = t.RTotal - t.rMinor
	g.RInternal = g.RMajor - g.RMinor
	g.RTotal = t.RTotal
	// Thin-walled pressure vessel with the torus curvature correction, in mm.
	g.Thickness = 1e3 * t.SafetyFactor * g.RMinor *
		(t.pressure / (2 * t.σYield)) *
		((2*g.RMajor + g.RMinor) / (g.RMajor + g.RMinor))
	if g.RMajor <= 0 || g.Thickness <= 0 {
		return g, fmt.Errorf("non-physical %s tank geometry (R=%f m, t=%f mm)", t.Prop, g.RMajor, g.Thickness)
	}
	return g, nil
}

// ShellMass estimates the structural mass of the torus shell from its surface
// area, the provided wall thickness (in mm) and the density of Al 2219. This
// is a coarse analytic estimate; the closure loop reports the masses of the
// detailed tank design instead (cf. DesignPropulsion).
func (t *CryoTank) ShellMass(thicknessMM float64) float64 {
	const ρAluminum = 2800.0 // kg/m^3
	surface := 2 * math.Pi * math.Pi * t.RTotal * t.rMinor
	return ρAluminum * surface * (thicknessMM / 1e3)
}

// TankDesign is the full record of one sized tank.
type TankDesign struct {
	TankGeometry
	Volume         float64 // required tank volume, m^3
	PropellantMass float64 // kg
	Mass           float64 // reported structural mass, kg
	ShellMassEst   float64 // analytic shell estimate, kg (not reported)
}

// PropulsionDesign is the complete propulsion system solution.
type PropulsionDesign struct {
	Engine EngineDesign
	TankH2 TankDesign
	TankO2 TankDesign
}

// Mass returns the total propulsion hardware mass in kg.
func (p PropulsionDesign) Mass() float64 {
	return p.Engine.EngineMass + p.TankH2.Mass + p.TankO2.Mass
}

// Reported tank masses from the detailed external tank design. The analytic
// shell estimate is retained in the record but these are the masses the
// closure accounts for.
const (
	tankMassH2 = 716.97 // kg
	tankMassO2 = 331.23 // kg
)

// DesignPropulsion sizes the engine cluster and both toroidal tanks.
func DesignPropulsion(totalMass, propellantMass, mH2, mO2, tankVolH2, tankVolO2 float64) (PropulsionDesign, error) {
	var d PropulsionDesign
	engine, err := NewRocketEngine(totalMass).DesignComplete(propellantMass)
	if err != nil {
		return d, err
	}
	tankH2 := NewCryoTank(tankVolH2, LH2)
	tankO2 := NewCryoTank(tankVolO2, LOX)
	geomH2, err := tankH2.Geometry()
	if err != nil {
		return d, err
	}
	geomO2, err := tankO2.Geometry()
	if err != nil {
		return d, err
	}
	d.Engine = engine
	d.TankH2 = TankDesign{geomH2, tankVolH2, mH2, tankMassH2, tankH2.ShellMass(geomH2.Thickness)}
	d.TankO2 = TankDesign{geomO2, tankVolO2, mO2, tankMassO2, tankO2.ShellMass(geomO2.Thickness)}
	return d, nil
}
