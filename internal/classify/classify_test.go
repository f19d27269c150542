package classify

import (
	"testing"

	"github.com/macaudit/macaudit/internal/ledger"
)

func TestNumeric(t *testing.T) {
	cases := []struct {
		raw  string
		def  int
		want int
	}{
		{"", 42, 42},
		{"abc", 42, 42},
		{"12GB", 0, 12},
		{"  7 ", 0, 7},
		{"Cycle Count: 341", 0, 341},
		{"93 %", -1, 93},
	}
	for _, tc := range cases {
		if got := Numeric(tc.raw, tc.def); got != tc.want {
			t.Errorf("Numeric(%q, %d) = %d, want %d", tc.raw, tc.def, got, tc.want)
		}
	}
}

func TestEvaluateFirstMatchWins(t *testing.T) {
	bands := []Band{
		{Min: 1000, Severity: ledger.SeverityFail, Message: "cycle count %d is past rated life"},
		{Min: 800, Severity: ledger.SeverityWarn, Message: "cycle count %d is approaching rated life"},
		{Min: 0, Severity: ledger.SeverityPass, Message: "cycle count %d is healthy"},
	}

	sev, msg, ok := Evaluate(1200, bands)
	if !ok || sev != ledger.SeverityFail || msg != "cycle count 1200 is past rated life" {
		t.Fatalf("got %v %q %v", sev, msg, ok)
	}

	sev, _, _ = Evaluate(850, bands)
	if sev != ledger.SeverityWarn {
		t.Fatalf("850 classified as %v, want WARN", sev)
	}

	sev, _, _ = Evaluate(12, bands)
	if sev != ledger.SeverityPass {
		t.Fatalf("12 classified as %v, want PASS", sev)
	}
}

func TestEvaluateNoMatch(t *testing.T) {
	bands := []Band{{Min: 10, Severity: ledger.SeverityWarn, Message: "x"}}
	if _, _, ok := Evaluate(3, bands); ok {
		t.Fatal("expected no match below every band")
	}
}
