package lander

import (
	"fmt"
	"math"
)

/* Electrical power subsystem: solar array sized for the eclipse/daylight duty
cycle with degradation to end of life, plus fuel cells and their product water. */

// EPS defines the electrical power system design parameters.
type EPS struct {
	PowerEclipse  float64 // W
	PowerDaylight float64 // W
	DaylightSec   float64 // daylight duration, s
	EclipseSec    float64 // eclipse duration, s
	EffEclipse    float64 // transmission efficiency, eclipse path
	EffDaylight   float64 // transmission efficiency, daylight path
	CellEff       float64 // solar cell efficiency
	SolarConstant float64 // W/m^2
	InitialDegr   float64 // inherent degradation at beginning of life
	LifeDegr      float64 // degradation factor to end of life
	IncidenceRad  float64 // worst-case incidence angle, radians
	SpecificPerf  float64 // array specific performance, W/kg

	// Fuel cell bank.
	FuelCellPower  float64 // available power, W
	EnergyDensity  float64 // W·h/kg
	UsageTimeHours float64
	FuelCellEff    float64
}

// NewEPS returns the baseline EPS: GaAs cells at the lunar near-side duty
// cycle (75 h daylight, 26 min eclipse) and a 5 kW fuel cell bank.
func NewEPS(powerEclipse, powerDaylight float64) *EPS {
	return &EPS{
		PowerEclipse:   powerEclipse,
		PowerDaylight:  powerDaylight,
		DaylightSec:    75 * 3600,
		EclipseSec:     26 * 60,
		EffEclipse:     0.65,
		EffDaylight:    0.85,
		CellEff:        0.30,
		SolarConstant:  1367,
		InitialDegr:    0.90,
		LifeDegr:       0.97,
		IncidenceRad:   23 * deg2rad,
		SpecificPerf:   38,
		FuelCellPower:  5000,
		EnergyDensity:  780,
		UsageTimeHours: 5.5,
		FuelCellEff:    0.8,
	}
}

// EPSDesign stores the sized electrical power system.
type EPSDesign struct {
	Psa          float64 // required array power capability, W
	PBOL, PEOL   float64 // areal power at beginning and end of life, W/m^2
	ArrayArea    float64 // m^2
	ArrayMass    float64 // kg
	FuelCellMass float64 // kg
	WaterMass    float64 // kg (reaction product)
	TotalMass    float64 // kg
}

func (d EPSDesign) String() string {
	return fmt.Sprintf("EPS: %.1f kg (array %.2f m^2 / %.1f kg, fuel cells %.1f kg, water %.1f kg)", d.TotalMass, d.ArrayArea, d.ArrayMass, d.FuelCellMass, d.WaterMass)
}

// Design sizes the solar array and fuel cell bank.
func (e *EPS) Design() (EPSDesign, error) {
	var d EPSDesign
	if e.DaylightSec <= 0 || e.EffEclipse <= 0 || e.EffDaylight <= 0 {
		return d, fmt.Errorf("daylight duration and transmission efficiencies must be strictly positive")
	}
	d.Psa = ((e.PowerEclipse * e.EclipseSec / e.EffEclipse) +
		(e.PowerDaylight * e.DaylightSec / e.EffDaylight)) / e.DaylightSec
	po := e.SolarConstant * e.CellEff
	d.PBOL = po * e.InitialDegr * math.Cos(e.IncidenceRad)
	d.PEOL = d.PBOL * e.LifeDegr
	if d.PEOL < massε {
		return d, fmt.Errorf("end-of-life areal power is degenerate (%g W/m^2)", d.PEOL)
	}
	d.ArrayArea = d.Psa / d.PEOL
	d.ArrayMass = d.Psa / e.SpecificPerf
	// Fuel cells: power density from energy density over the usage time.
	powerDensity := (e.EnergyDensity / e.UsageTimeHours) * e.FuelCellEff
	if powerDensity < massε {
		return d, fmt.Errorf("fuel cell power density is degenerate (%g W/kg)", powerDensity)
	}
	d.FuelCellMass = e.FuelCellPower / powerDensity
	d.WaterMass = 0.9 * d.FuelCellMass
	d.TotalMass = d.ArrayMass + d.FuelCellMass + d.WaterMass
	return d, nil
}
