package lander

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/soniakeys/meeus/julian"
)

/* Rendering boundary: the solver only produces numeric records; these helpers
stream them to CSV/dat files for an external plotter and format the report. */

// StreamHistory writes the per-iteration records as CSV.
func StreamHistory(w io.Writer, history []IterationRecord) error {
	if _, err := fmt.Fprintln(w, "iteration,total,payload,dry,inert,propellant,structure,subsystems"); err != nil {
		return err
	}
	for _, rec := range history {
		if _, err := fmt.Fprintf(w, "%d,%f,%f,%f,%f,%f,%f,%f\n",
			rec.Iteration, rec.TotalMass, rec.Payload, rec.DryMass, rec.InertMass,
			rec.PropellantMass, rec.StructureMass, rec.SubsystemsMass); err != nil {
			return err
		}
	}
	return nil
}

// ExportHistory writes the iteration history to <prefix>-closure.csv.
func ExportHistory(prefix string, history []IterationRecord) error {
	f, err := os.Create(fmt.Sprintf("%s-closure.csv", prefix))
	if err != nil {
		return err
	}
	defer f.Close()
	return StreamHistory(f, history)
}

// ExportFitDiagnostics writes the historical data points and the sampled
// regression curves to <prefix>-payloadfit.dat and <prefix>-dryfit.dat for
// external scatter plotting.
func ExportFitDiagnostics(prefix string) error {
	pFit, dFit := massFits()
	type diagnostic struct {
		name string
		poly polyFit
		idx  [5]int
		ys   [5]float64
	}
	for _, diag := range []diagnostic{
		{"payloadfit", pFit, payloadFitIdx, histPayload},
		{"dryfit", dFit, dryMassFitIdx, histDryMass},
	} {
		f, err := os.Create(fmt.Sprintf("%s-%s.dat", prefix, diag.name))
		if err != nil {
			return err
		}
		fmt.Fprintf(f, "%%historical points\n")
		for i, idx := range diag.idx {
			fmt.Fprintf(f, "%f,%f\n", histTotalMass[idx], diag.ys[i])
		}
		fmt.Fprintf(f, "%%fitted curve\n")
		for x := 0.0; x <= 40000; x += 40 {
			fmt.Fprintf(f, "%f,%f\n", x, diag.poly.At(x))
		}
		if err = f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Report renders the final design report. The header carries the generation
// epoch in both calendar date and Julian days.
func (r Results) Report() string {
	now := time.Now().UTC()
	rtn := fmt.Sprintf("=== LUNAR LANDER DESIGN REPORT ===\ngenerated %s (JD %.5f)\n", now.Format("2006-Jan-02 15:04:05"), julian.TimeToJD(now))
	status := "converged"
	if !r.Converged {
		status = "NOT converged"
	}
	rtn += fmt.Sprintf("status: %s after %d iterations\n", status, r.Iterations)
	rtn += "--- masses ---\n"
	rtn += fmt.Sprintf("total:      %9.0f kg\n", r.TotalMass)
	rtn += fmt.Sprintf("payload:    %9.0f kg (%5.1f%%)\n", r.Payload, 100*r.Fractions.Payload)
	rtn += fmt.Sprintf("dry:        %9.0f kg (%5.1f%%)\n", r.DryMass, 100*r.Fractions.Dry)
	rtn += fmt.Sprintf("propellant: %9.0f kg (%5.1f%%)\n", r.PropellantMass, 100*r.Fractions.Propellant)
	rtn += fmt.Sprintf("mass ratio: %9.3f\n", r.Fractions.MassRatio)
	rtn += "--- propellant ---\n"
	rtn += fmt.Sprintf("hydrogen: %8.0f kg (tank %6.2f m^3)\noxygen:   %8.0f kg (tank %6.2f m^3)\n",
		r.Propellant.Hydrogen, r.Propellant.TankVolH2, r.Propellant.Oxygen, r.Propellant.TankVolO2)
	rtn += "--- propulsion ---\n"
	eng := r.Propulsion.Engine
	rtn += fmt.Sprintf("thrust: %7.1f kN total / %6.1f kN per engine\nisp: %6.1f s\tmass flow: %6.2f kg/s\tburn time: %6.1f s\n",
		eng.ThrustTotal/1e3, eng.ThrustPerEngine/1e3, eng.Isp, eng.MassFlow, eng.BurnTime)
	rtn += fmt.Sprintf("engines: %7.0f kg\ttanks: %6.0f kg (H2) + %6.0f kg (O2)\n",
		eng.EngineMass, r.Propulsion.TankH2.Mass, r.Propulsion.TankO2.Mass)
	rtn += "--- subsystems ---\n"
	rtn += fmt.Sprintf("avionics: %7.0f kg\tECLSS: %7.0f kg\nEPS:      %7.0f kg\tTCS:   %7.0f kg\n",
		r.Subsystems.Avionics.Mass, r.Subsystems.ECLSS.Mass, r.Subsystems.EPS.TotalMass, r.Subsystems.TCS.TotalMass)
	rtn += "--- structure ---\n"
	rtn += fmt.Sprintf("structure+TPS: %7.0f kg\tlanding gear: %6.0f kg\n", r.StructureTPS, r.LandingGear)
	return rtn
}
