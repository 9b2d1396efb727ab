package lander

import (
	"testing"

	"github.com/gonum/floats"
)

func TestEstimateMasses(t *testing.T) {
	// Reference values from the two regressions evaluated at 30 t.
	payload, dryMass, inertMass := EstimateMasses(30000)
	if !floats.EqualWithinAbs(payload, 2257.1198018450, 1e-4) {
		t.Fatalf("payload estimate incorrect: %f kg", payload)
	}
	if !floats.EqualWithinAbs(dryMass, 5068.1210816474, 1e-4) {
		t.Fatalf("dry mass estimate incorrect: %f kg", dryMass)
	}
	if !floats.EqualWithinAbs(inertMass, payload+dryMass, 1e-9) {
		t.Fatalf("inert mass %f is not payload + dry mass", inertMass)
	}
}

func TestEstimateMassesIdempotent(t *testing.T) {
	for _, totalMass := range []float64{4700, 15200, 23375, 30000, 43400} {
		p0, d0, i0 := EstimateMasses(totalMass)
		p1, d1, i1 := EstimateMasses(totalMass)
		if p0 != p1 || d0 != d1 || i0 != i1 {
			t.Fatalf("estimate at %f kg is not deterministic", totalMass)
		}
	}
}

func TestEstimateMassesTrend(t *testing.T) {
	// The dry mass regression grows with total mass over the fitted range.
	_, dPrev, _ := EstimateMasses(10000)
	for totalMass := 12000.0; totalMass <= 43400; totalMass += 2000 {
		_, d, _ := EstimateMasses(totalMass)
		if d <= dPrev {
			t.Fatalf("dry mass estimate not increasing at %f kg (%f <= %f)", totalMass, d, dPrev)
		}
		dPrev = d
	}
}

func TestPayloadRequirements(t *testing.T) {
	// 4 crew at 122 kg each, 15 days at 4.74 kg per crew per day.
	payloadMin, payloadMax, err := PayloadRequirements(4, 15, 500, 2000)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !floats.EqualWithinAbs(payloadMin, 1272.4, 1e-9) {
		t.Fatalf("payload min incorrect: %f kg", payloadMin)
	}
	if !floats.EqualWithinAbs(payloadMax, 2772.4, 1e-9) {
		t.Fatalf("payload max incorrect: %f kg", payloadMax)
	}
	if _, _, err = PayloadRequirements(-1, 15, 0, 0); err == nil {
		t.Fatal("negative crew count must be rejected")
	}
	if _, _, err = PayloadRequirements(4, -1, 0, 0); err == nil {
		t.Fatal("negative duration must be rejected")
	}
}
