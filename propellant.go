package lander

import (
	"fmt"
	"math"
)

/* Propellant sizing via the Tsiolkovsky equation for the descent/ascent pair.
The ascent propellant must ride down to the surface, so the descent burn is
sized against the inert mass augmented by the ascent propellant. */

// PropellantBreakdown stores the sized propellant masses and volumes.
type PropellantBreakdown struct {
	Ascent, Descent      float64 // propellant per burn, kg
	Hydrogen, Oxygen     float64 // kg
	VolH2, VolO2         float64 // liquid volumes, m^3
	TankVolH2, TankVolO2 float64 // tank volumes with ullage, m^3
}

// Total returns the total propellant mass in kg.
func (p PropellantBreakdown) Total() float64 {
	return p.Ascent + p.Descent
}

func (p PropellantBreakdown) String() string {
	return fmt.Sprintf("propellant: %.0f kg (H2 %.0f kg / O2 %.0f kg; tanks %.2f + %.2f m^3)", p.Total(), p.Hydrogen, p.Oxygen, p.TankVolH2, p.TankVolO2)
}

// TsiolkovskyPropellant returns the propellant mass needed to impart Δv onto
// the provided inert mass at the given specific impulse.
func TsiolkovskyPropellant(inertMass, Δv, isp, g0 float64) (float64, error) {
	if isp <= 0 || g0 <= 0 {
		return 0, fmt.Errorf("isp (%f s) and g0 (%f m/s^2) must be strictly positive", isp, g0)
	}
	if inertMass < 0 {
		return 0, fmt.Errorf("inert mass must not be negative (got %f kg)", inertMass)
	}
	return inertMass * (math.Exp(Δv/(isp*g0)) - 1), nil
}

// SizePropellant sizes both burns of the surface mission and splits the total
// into hydrogen and oxygen with tankage volumes.
func SizePropellant(inertMass, ΔvDescent, ΔvAscent, isp, g0, mixtureRatio float64) (PropellantBreakdown, error) {
	var b PropellantBreakdown
	if mixtureRatio <= 0 {
		return b, fmt.Errorf("mixture ratio must be strictly positive (got %f)", mixtureRatio)
	}
	ascent, err := TsiolkovskyPropellant(inertMass, ΔvAscent, isp, g0)
	if err != nil {
		return b, err
	}
	// Size the descent burn against the mass which actually lands.
	descent, err := TsiolkovskyPropellant(inertMass+ascent, ΔvDescent, isp, g0)
	if err != nil {
		return b, err
	}
	b.Ascent = ascent
	b.Descent = descent
	b.Hydrogen = b.Total() / (mixtureRatio + 1)
	b.Oxygen = b.Total() - b.Hydrogen
	b.VolH2 = b.Hydrogen / RhoLH2
	b.VolO2 = b.Oxygen / RhoLOX
	b.TankVolH2 = b.VolH2 * (1 + TankUllage)
	b.TankVolO2 = b.VolO2 * (1 + TankUllage)
	return b, nil
}
