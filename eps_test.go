package lander

import (
	"strings"
	"testing"

	"github.com/gonum/floats"
)

func TestEPSDesign(t *testing.T) {
	d, err := NewEPS(4000, 4700).Design()
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !floats.EqualWithinAbs(d.Psa, 5564.9673203, 1e-6) {
		t.Fatalf("array power capability incorrect: %f W", d.Psa)
	}
	if !floats.EqualWithinAbs(d.PBOL, 339.7491364, 1e-6) {
		t.Fatalf("beginning-of-life power incorrect: %f W/m^2", d.PBOL)
	}
	if !floats.EqualWithinAbs(d.PEOL, 329.5566623, 1e-6) {
		t.Fatalf("end-of-life power incorrect: %f W/m^2", d.PEOL)
	}
	if !floats.EqualWithinAbs(d.ArrayArea, 16.8862231, 1e-6) {
		t.Fatalf("array area incorrect: %f m^2", d.ArrayArea)
	}
	if !floats.EqualWithinAbs(d.ArrayMass, 146.4465084, 1e-6) {
		t.Fatalf("array mass incorrect: %f kg", d.ArrayMass)
	}
	if !floats.EqualWithinAbs(d.FuelCellMass, 44.0705128, 1e-6) {
		t.Fatalf("fuel cell mass incorrect: %f kg", d.FuelCellMass)
	}
	// Reaction water is 90% of the fuel cell mass.
	if !floats.EqualWithinAbs(d.WaterMass, 0.9*d.FuelCellMass, 1e-9) {
		t.Fatalf("water mass incorrect: %f kg", d.WaterMass)
	}
	if !floats.EqualWithinAbs(d.TotalMass, 230.1804828, 1e-6) {
		t.Fatalf("EPS total mass incorrect: %f kg", d.TotalMass)
	}
	if !strings.Contains(d.String(), "EPS:") {
		t.Fatalf("EPS stringer incorrect: %s", d)
	}
}

func TestEPSDesignErrors(t *testing.T) {
	e := NewEPS(4000, 4700)
	e.EffDaylight = 0
	if _, err := e.Design(); err == nil {
		t.Fatal("zero transmission efficiency must be rejected")
	}
	e = NewEPS(4000, 4700)
	e.DaylightSec = -1
	if _, err := e.Design(); err == nil {
		t.Fatal("negative daylight duration must be rejected")
	}
}
