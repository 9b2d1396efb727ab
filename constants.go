package lander

import "math"

// Physical constants and reference data for the lander sizing models. These are
// read-only tables loaded at process start; nothing in here mutates.

const (
	// EarthG0 is the standard gravitational acceleration in m/s^2.
	EarthG0 = 9.81
	// MoonG is the lunar surface gravitational acceleration in m/s^2.
	MoonG = 1.62
)

// LOX/LH2 propellant properties.
const (
	// RhoLOX is the liquid oxygen density in kg/m^3.
	RhoLOX = 1141.0
	// RhoLH2 is the liquid hydrogen density in kg/m^3.
	RhoLH2 = 70.5
	// MixtureRatioLOXLH2 is the O/F mass ratio for LOX/LH2.
	MixtureRatioLOXLH2 = 5.0
	// TankUllage is the fraction of tank volume reserved beyond the liquid volume.
	TankUllage = 0.10
)

// Mission Δv requirements (Artemis baseline, low lunar orbit to surface).
const (
	// ΔvLLOToSurface is the descent Δv in m/s, before margin.
	ΔvLLOToSurface = 1905.0
	// ΔvSurfaceToLLO is the ascent Δv in m/s, before margin.
	ΔvSurfaceToLLO = 1963.0
	// ΔvMargin is the multiplicative margin applied to the baseline Δv.
	ΔvMargin = 1.05
)

// RL10B-2 baseline engine.
const (
	// IspRL10B2 is the vacuum specific impulse of the RL10B-2 in seconds.
	IspRL10B2 = 438.3
)

// LOX/LH2 combustion parameters used by the engine solver.
const (
	gammaLOXLH2    = 1.209  // specific heat ratio
	gasConstLOXLH2 = 704.6  // J/(kg·K)
	cStarLOXLH2    = 2323.8 // m/s characteristic velocity
	chamberTempK   = 3241.0 // K
	chamberPressPa = 3.5e6  // Pa
)

// Crew payload requirements.
const (
	// CrewMemberMass is one crew member with suit, in kg (80 body + 42 suit).
	CrewMemberMass = 122.0
	// ConsumablesPerCrewDay is the per-crew per-day consumables mass in kg:
	// food at 30% recycle (0.87) + water (1.83) + oxygen (0.82) + other (1.22).
	ConsumablesPerCrewDay = 4.74
)

// Fixed subsystem baselines (sized offline for 4 crew, 15 days).
const (
	eclssMassBaseline   = 2840.45 // kg
	eclssVolumeBaseline = 13.52   // m^3
	eclssPowerBaseline  = 3160.0  // W
	avioMassBaseline    = 185.805 // kg
	avioVolumeBaseline  = 1.5371  // m^3
	avioPowerBaseline   = 837.9   // W
)

// Structural correlation coefficients.
const (
	landingGearFraction = 0.08 // landing gear as a fraction of dry mass
)

const (
	// massε is the absolute tolerance used for mass and denominator sanity checks.
	massε = 1e-12
)

const deg2rad = math.Pi / 180

// Historical lander database. The total-mass array has six entries; the payload
// and dry-mass arrays have five each and index into *different* subsets of the
// total-mass array (payload skips index 4, dry mass skips index 5). This
// asymmetry is how the source data is recorded, not an off-by-one.
var (
	histTotalMass = [6]float64{15200, 4700, 10300, 23375, 15847, 43400} // kg
	histPayload   = [5]float64{2100, 1400, 640, 2480, 1600}             // kg
	histDryMass   = [5]float64{2180, 2033, 2245, 3547, 2435}            // kg

	payloadFitIdx = [5]int{0, 1, 2, 3, 5}
	dryMassFitIdx = [5]int{0, 1, 2, 3, 4}
)
