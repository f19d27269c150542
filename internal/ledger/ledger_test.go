package ledger

import (
	"reflect"
	"testing"
)

func TestRecordCountsMatchCalls(t *testing.T) {
	l := New()
	l.Record(SeverityPass, "battery condition normal")
	l.Record(SeverityFail, "activation lock enabled")
	l.Record(SeverityWarn, "disk nearly full")
	l.Record(SeverityFail, "serial mismatch")
	l.Record(SeverityInfo, "charger not connected")

	if got := l.Count(SeverityFail); got != 2 {
		t.Fatalf("fail count = %d, want 2", got)
	}
	if got := l.Count(SeverityWarn); got != 1 {
		t.Fatalf("warn count = %d, want 1", got)
	}
	if got := l.Total(); got != 5 {
		t.Fatalf("total = %d, want 5", got)
	}
}

func TestFindingsPreserveOrder(t *testing.T) {
	l := New()
	l.Record(SeverityWarn, "first")
	l.Record(SeverityWarn, "second")
	l.Record(SeverityWarn, "third")

	want := []string{"first", "second", "third"}
	if got := l.Findings(SeverityWarn); !reflect.DeepEqual(got, want) {
		t.Fatalf("findings = %#v, want %#v", got, want)
	}
}

func TestFindingsReturnsCopy(t *testing.T) {
	l := New()
	l.Record(SeverityInfo, "original")
	got := l.Findings(SeverityInfo)
	got[0] = "mutated"
	if l.Findings(SeverityInfo)[0] != "original" {
		t.Fatal("caller mutation leaked into the ledger")
	}
}

func TestManualCheckDedup(t *testing.T) {
	l := New()
	l.RecordManualCheck("Verify the chassis serial against About This Mac")
	l.RecordManualCheck("Test every USB-C port with a known-good cable")
	l.RecordManualCheck("Verify the chassis serial against About This Mac")

	want := []string{
		"Verify the chassis serial against About This Mac",
		"Test every USB-C port with a known-good cable",
	}
	if got := l.ManualChecks(); !reflect.DeepEqual(got, want) {
		t.Fatalf("manual checks = %#v, want %#v", got, want)
	}
}
