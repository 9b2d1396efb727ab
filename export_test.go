package lander

import (
	"bytes"
	"strings"
	"testing"

	kitlog "github.com/go-kit/kit/log"
)

func TestStreamHistory(t *testing.T) {
	history := []IterationRecord{
		{1, 19721.0, 1060, 7147.8, 8207.8, 11513.2, 1935.6, 3658.6},
		{2, 15641.8, 1060, 6718.2, 7778.2, 7863.6, 1649.5, 3658.6},
	}
	buf := new(bytes.Buffer)
	if err := StreamHistory(buf, history); err != nil {
		t.Fatalf("err %s", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected a header and two records, got %d lines", len(lines))
	}
	if lines[0] != "iteration,total,payload,dry,inert,propellant,structure,subsystems" {
		t.Fatalf("header incorrect: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,19721.0") || !strings.HasPrefix(lines[2], "2,15641.8") {
		t.Fatalf("records incorrect:\n%s", buf.String())
	}
}

func TestReport(t *testing.T) {
	params := NewDesignParameters(30000, 4, 15)
	params.PayloadOverride = 1060
	d, err := NewDesignerWithLogger(params, kitlog.NewNopLogger())
	if err != nil {
		t.Fatalf("err %s", err)
	}
	rslt, err := d.Run()
	if err != nil {
		t.Fatalf("err %s", err)
	}
	report := rslt.Report()
	for _, exp := range []string{"LUNAR LANDER DESIGN REPORT", "JD 24", "status: converged", "mass ratio:", "landing gear:"} {
		if !strings.Contains(report, exp) {
			t.Fatalf("report missing %q:\n%s", exp, report)
		}
	}
	rslt.Converged = false
	if !strings.Contains(rslt.Report(), "NOT converged") {
		t.Fatal("non-converged report must say so")
	}
}
