package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/macaudit/macaudit/internal/ledger"
	"github.com/macaudit/macaudit/internal/risk"
)

func sampleLedger() *ledger.Ledger {
	led := ledger.New()
	led.Record(ledger.SeverityPass, "SMART status for the boot disk is Verified")
	led.Record(ledger.SeverityWarn, "Battery cycle count 850 is high")
	led.Record(ledger.SeverityFail, "Serial mismatch between inventories")
	led.RecordManualCheck("Boot into Recovery before purchase")
	return led
}

func TestRenderReportCarriesEverySection(t *testing.T) {
	snap := Snapshot{
		ModelName: "MacBook Pro",
		ModelID:   "MacBookPro18,3",
		Chip:      "Apple M1 Pro",
		OSVersion: "15.3",
		Serial:    "C02TEST",
	}
	text := RenderReport(snap, sampleLedger(), risk.VerdictCritical, time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC))

	for _, want := range []string{
		"macaudit",
		"Generated: 2026-08-25 10:30:00",
		"MacBook Pro (MacBookPro18,3)",
		"CRITICAL",
		"Findings recorded: 3",
		"FAIL (1)",
		"Serial mismatch between inventories",
		"WARN (1)",
		"PASS (1)",
		"[ ] Boot into Recovery before purchase",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(text, "\033[") {
		t.Error("saved report carries color escapes")
	}
}

func TestSnapshotSkipsEmptyRows(t *testing.T) {
	text := RenderReport(Snapshot{OSVersion: "15.3"}, ledger.New(), risk.VerdictLow, time.Now())
	if strings.Contains(text, "Serial:") {
		t.Error("empty serial row rendered")
	}
	if !strings.Contains(text, "macOS:") {
		t.Error("populated macOS row missing")
	}
}

func TestSaveReportWritesTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveReport(dir, Snapshot{OSVersion: "15.3"}, sampleLedger(), risk.VerdictModerate)
	if err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	name := filepath.Base(path)
	if !strings.HasPrefix(name, "macaudit_report_") || !strings.HasSuffix(name, ".txt") {
		t.Fatalf("unexpected report name %q", name)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(raw), "MODERATE") {
		t.Error("verdict missing from saved report")
	}
}

func TestSaveReportFailsOnMissingDir(t *testing.T) {
	_, err := SaveReport(filepath.Join(t.TempDir(), "nope"), Snapshot{}, ledger.New(), risk.VerdictLow)
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
