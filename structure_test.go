package lander

import (
	"testing"

	"github.com/gonum/floats"
)

func TestStructureAndGear(t *testing.T) {
	structureTPS, landingGear, err := StructureAndGear(2180, 4280)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !floats.EqualWithinAbs(structureTPS, 1402.4572120, 1e-6) {
		t.Fatalf("structure + TPS mass incorrect: %f kg", structureTPS)
	}
	if !floats.EqualWithinAbs(landingGear, 174.4, 1e-9) {
		t.Fatalf("landing gear mass incorrect: %f kg", landingGear)
	}
	if _, _, err = StructureAndGear(-1, 4280); err == nil {
		t.Fatal("negative dry mass must be rejected")
	}
	if _, _, err = StructureAndGear(2180, -1); err == nil {
		t.Fatal("negative inert mass must be rejected")
	}
}

func TestSubsystemBaselines(t *testing.T) {
	avio := AvionicsBaseline()
	if !floats.EqualWithinAbs(avio.Mass, 185.805, 1e-9) || !floats.EqualWithinAbs(avio.Power, 837.9, 1e-9) {
		t.Fatalf("avionics baseline incorrect: %+v", avio)
	}
	eclss := ECLSSBaseline()
	if !floats.EqualWithinAbs(eclss.Mass, 2840.45, 1e-9) || !floats.EqualWithinAbs(eclss.Volume, 13.52, 1e-9) {
		t.Fatalf("ECLSS baseline incorrect: %+v", eclss)
	}
}
