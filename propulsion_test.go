package lander

import (
	"strings"
	"testing"

	"github.com/gonum/floats"
)

func TestRocketEngineThrust(t *testing.T) {
	e := NewRocketEngine(30000)
	if !floats.EqualWithinAbs(e.ThrustTotal, 158436.0, 1e-9) {
		t.Fatalf("total thrust incorrect: %f N", e.ThrustTotal)
	}
	// Four engines at 60% throttle.
	if !floats.EqualWithinAbs(e.ThrustPerEngine, 66015.0, 1e-9) {
		t.Fatalf("thrust per engine incorrect: %f N", e.ThrustPerEngine)
	}
}

func TestNozzleGeometry(t *testing.T) {
	e := NewRocketEngine(30000)
	n, err := e.NozzleGeometry(50)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	// Exit conditions only depend on chamber state and the fixed exit Mach.
	if !floats.EqualWithinAbs(n.Te, 1055.920022, 1e-4) {
		t.Fatalf("exit temperature incorrect: %f K", n.Te)
	}
	if !floats.EqualWithinAbs(n.Ve, 4220.461991, 1e-4) {
		t.Fatalf("exit velocity incorrect: %f m/s", n.Ve)
	}
	if !floats.EqualWithinAbs(n.Pe, 5329.013301, 1e-4) {
		t.Fatalf("exit pressure incorrect: %f Pa", n.Pe)
	}
	if !floats.EqualWithinAbs(n.At, 0.0099673640, 1e-8) {
		t.Fatalf("throat area incorrect: %f m^2", n.At)
	}
	if !floats.EqualWithinAbs(n.MassFlow, 15.0123824, 1e-5) {
		t.Fatalf("mass flow incorrect: %f kg/s", n.MassFlow)
	}
	if n.Ae <= n.At {
		t.Fatalf("exit area %f m^2 not larger than throat area %f m^2", n.Ae, n.At)
	}
	if !floats.EqualWithinAbs(n.Ae/n.At, 50, 1e-9) {
		t.Fatalf("area ratio not honored: %f", n.Ae/n.At)
	}
	// The recomputed Isp lands near the RL10B-2 input value.
	if !floats.EqualWithinAbs(n.Isp, 448.237633, 1e-4) {
		t.Fatalf("delivered isp incorrect: %f s", n.Isp)
	}
	if _, err = e.NozzleGeometry(1); err == nil {
		t.Fatal("unity expansion ratio must be rejected")
	}
}

func TestChamberGeometry(t *testing.T) {
	e := NewRocketEngine(30000)
	c := e.ChamberGeometry(0.009967364049404058)
	if !floats.EqualWithinAbs(c.Dcc, 0.2519011916, 1e-8) {
		t.Fatalf("chamber diameter incorrect: %f m", c.Dcc)
	}
	// L* of 0.89 m over a 5:1 contraction gives a fixed chamber length.
	if !floats.EqualWithinAbs(c.Length, 0.178, 1e-9) {
		t.Fatalf("chamber length incorrect: %f m", c.Length)
	}
}

func TestEngineMassCorrelation(t *testing.T) {
	e := NewRocketEngine(30000)
	if !floats.EqualWithinAbs(e.EngineMass(17000), 580.954829, 1e-4) {
		t.Fatalf("engine mass incorrect: %f kg", e.EngineMass(17000))
	}
}

func TestDesignComplete(t *testing.T) {
	d, err := NewRocketEngine(30000).DesignComplete(17000)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !floats.EqualWithinAbs(d.BurnTime, 1132.398547, 1e-4) {
		t.Fatalf("burn time incorrect: %f s", d.BurnTime)
	}
	if !floats.EqualWithinAbs(d.DivLength, 1.0209814285, 1e-8) {
		t.Fatalf("divergent length incorrect: %f m", d.DivLength)
	}
	if !floats.EqualWithinAbs(d.ConvLength, 0.0984628897, 1e-8) {
		t.Fatalf("convergent length incorrect: %f m", d.ConvLength)
	}
	if d.TotalLength <= d.NozzleLength {
		t.Fatal("total engine length must exceed the nozzle length")
	}
}

func TestCryoTankGeometry(t *testing.T) {
	for _, it := range []struct {
		prop                 Propellant
		rMajor, rInternal    float64
		thickness, shellMass float64
	}{
		{LH2, 1.9408, 0.8876, 2.91991083, 508.88542037},
		{LOX, 1.8953, 1.2006, 2.26169839, 224.91557214},
	} {
		tank := NewCryoTank(30, it.prop)
		g, err := tank.Geometry()
		if err != nil {
			t.Fatalf("[%s] err %s", it.prop, err)
		}
		if !floats.EqualWithinAbs(g.RMajor, it.rMajor, 1e-9) {
			t.Fatalf("[%s] major radius incorrect: %f m", it.prop, g.RMajor)
		}
		if !floats.EqualWithinAbs(g.RInternal, it.rInternal, 1e-9) {
			t.Fatalf("[%s] internal radius incorrect: %f m", it.prop, g.RInternal)
		}
		if !floats.EqualWithinAbs(g.Thickness, it.thickness, 1e-6) {
			t.Fatalf("[%s] wall thickness incorrect: %f mm", it.prop, g.Thickness)
		}
		if !floats.EqualWithinAbs(tank.ShellMass(g.Thickness), it.shellMass, 1e-6) {
			t.Fatalf("[%s] shell mass incorrect: %f kg", it.prop, tank.ShellMass(g.Thickness))
		}
	}
}

func TestDesignPropulsion(t *testing.T) {
	d, err := DesignPropulsion(30000, 17000, 17000.0/6, 17000.0*5/6, 29.9, 9.2)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	// The reported tank masses come from the detailed tank design, not the
	// analytic shell estimate.
	if d.TankH2.Mass != 716.97 {
		t.Fatalf("H2 tank mass incorrect: %f kg", d.TankH2.Mass)
	}
	if d.TankO2.Mass != 331.23 {
		t.Fatalf("O2 tank mass incorrect: %f kg", d.TankO2.Mass)
	}
	if d.TankH2.ShellMassEst <= 0 || d.TankO2.ShellMassEst <= 0 {
		t.Fatal("shell mass estimates must be retained in the record")
	}
	if !floats.EqualWithinAbs(d.Mass(), d.Engine.EngineMass+716.97+331.23, 1e-9) {
		t.Fatalf("propulsion mass incorrect: %f kg", d.Mass())
	}
}

func TestPropellantString(t *testing.T) {
	if LH2.String() != "LH2" || LOX.String() != "LOX" {
		t.Fatal("propellant stringer incorrect")
	}
	assertPanic(t, func() {
		_ = Propellant(0).String()
	})
	b, err := SizePropellant(8000, 2000, 2060, IspRL10B2, EarthG0, MixtureRatioLOXLH2)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !strings.Contains(b.String(), "propellant:") {
		t.Fatalf("breakdown stringer incorrect: %s", b)
	}
}
