package lander

import (
	"fmt"
	"math"
)

/* Thermal control subsystem: MLI over every thermally controlled surface,
radiators sized by Stefan-Boltzmann exchange with the lunar sink, and a fixed
active cooling package. */

// TCS defines the thermal control system sizing inputs.
type TCS struct {
	HabitableArea     float64 // m^2
	PropulsionFrontal float64 // m^2
	PropulsionLateral float64 // m^2
	LOXTankArea       float64 // m^2
	LH2TankArea       float64 // m^2
	HeatLoad          float64 // W

	MLISpecificMass      float64 // kg/m^2
	MLIThickness         float64 // m
	RadiatorTemp         float64 // K
	SinkTemp             float64 // K
	RadiatorEmissivity   float64
	RadiatorSpecificMass float64 // kg/m^2
	ActiveCoolingMass    float64 // kg
	PumpPower            float64 // W
	HeaterPower          float64 // W
	ControlPower         float64 // W
}

// NewTCS returns the baseline thermal control system for the reference vehicle
// geometry and a 4.5 kW internal heat load.
func NewTCS() *TCS {
	return &TCS{
		HabitableArea:        66.63,
		PropulsionFrontal:    28.0,
		PropulsionLateral:    85.76,
		LOXTankArea:          51.65,
		LH2TankArea:          86.55,
		HeatLoad:             4500,
		MLISpecificMass:      0.7,
		MLIThickness:         0.03,
		RadiatorTemp:         300,
		SinkTemp:             100,
		RadiatorEmissivity:   0.85,
		RadiatorSpecificMass: 5.0,
		ActiveCoolingMass:    150,
		PumpPower:            200,
		HeaterPower:          500,
		ControlPower:         50,
	}
}

// TCSDesign stores the sized thermal control system.
type TCSDesign struct {
	MLIMass      float64 // kg
	RadiatorArea float64 // m^2
	RadiatorMass float64 // kg
	ActiveMass   float64 // kg
	TotalMass    float64 // kg
	Volume       float64 // m^3
	Power        float64 // W
}

func (d TCSDesign) String() string {
	return fmt.Sprintf("TCS: %.1f kg (MLI %.1f kg, radiator %.2f m^2 / %.1f kg, active %.0f kg; %.0f W)", d.TotalMass, d.MLIMass, d.RadiatorArea, d.RadiatorMass, d.ActiveMass, d.Power)
}

const stefanBoltzmann = 5.67e-8 // W/(m^2·K^4)

// Design sizes the MLI, the radiators (which reject half the heat load) and
// the active cooling package.
func (t *TCS) Design() (TCSDesign, error) {
	var d TCSDesign
	totalArea := t.HabitableArea + t.PropulsionFrontal + t.LOXTankArea + t.LH2TankArea + t.PropulsionLateral
	d.MLIMass = totalArea * t.MLISpecificMass
	rejection := stefanBoltzmann * t.RadiatorEmissivity *
		(math.Pow(t.RadiatorTemp, 4) - math.Pow(t.SinkTemp, 4))
	if rejection < massε {
		return d, fmt.Errorf("radiator cannot reject heat: temperatures %f K / %f K", t.RadiatorTemp, t.SinkTemp)
	}
	d.RadiatorArea = (t.HeatLoad * 0.5) / rejection
	d.RadiatorMass = d.RadiatorArea * t.RadiatorSpecificMass
	d.ActiveMass = t.ActiveCoolingMass
	d.TotalMass = d.MLIMass + d.RadiatorMass + d.ActiveMass
	d.Volume = totalArea * t.MLIThickness
	d.Power = t.PumpPower + t.HeaterPower + t.ControlPower
	return d, nil
}
