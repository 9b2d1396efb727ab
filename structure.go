package lander

import (
	"fmt"
	"math"
)

// StructureAndGear estimates the structure + TPS mass from the Merill
// correlation and sizes the landing gear as a fixed fraction of dry mass.
func StructureAndGear(dryMass, inertMass float64) (structureTPS, landingGear float64, err error) {
	if dryMass < 0 || inertMass < 0 {
		return 0, 0, fmt.Errorf("dry (%f kg) and inert (%f kg) masses must not be negative", dryMass, inertMass)
	}
	structureTPS = 1.325*math.Pow(dryMass/1000, 2.863) +
		5.651e-5*math.Pow(inertMass/1000, 5.269) +
		1390
	landingGear = landingGearFraction * dryMass
	return
}

// SubsystemBudget stores the per-subsystem mass, volume and power of the fixed
// baseline avionics and life support packages.
type SubsystemBudget struct {
	Mass   float64 // kg
	Volume float64 // m^3
	Power  float64 // W
}

// AvionicsBaseline returns the fixed GNC/communication/CDH budget.
func AvionicsBaseline() SubsystemBudget {
	return SubsystemBudget{avioMassBaseline, avioVolumeBaseline, avioPowerBaseline}
}

// ECLSSBaseline returns the fixed life support budget (4 crew, 15 days).
func ECLSSBaseline() SubsystemBudget {
	return SubsystemBudget{eclssMassBaseline, eclssVolumeBaseline, eclssPowerBaseline}
}
