package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if got != Default() {
		t.Fatalf("got %+v, want defaults", got)
	}
}

func TestLoadOverridesSelectedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".macaudit.yaml")
	content := "battery_cycle_warn: 600\nmoderate_warn_limit: 5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := Load(path)
	if got.BatteryCycleWarn != 600 {
		t.Errorf("BatteryCycleWarn = %d, want 600", got.BatteryCycleWarn)
	}
	if got.ModerateWarnLimit != 5 {
		t.Errorf("ModerateWarnLimit = %d, want 5", got.ModerateWarnLimit)
	}
	if got.BatteryCycleFail != Default().BatteryCycleFail {
		t.Errorf("BatteryCycleFail = %d, want default %d", got.BatteryCycleFail, Default().BatteryCycleFail)
	}
}

func TestLoadSanitizesNonsense(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".macaudit.yaml")
	content := "disk_used_warn_pct: 250\nbattery_cycle_fail: 10\nstress_seconds: 0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := Load(path)
	if got.DiskUsedWarnPct != Default().DiskUsedWarnPct {
		t.Errorf("DiskUsedWarnPct = %d, want default", got.DiskUsedWarnPct)
	}
	if got.BatteryCycleFail < got.BatteryCycleWarn {
		t.Errorf("BatteryCycleFail = %d below warn %d", got.BatteryCycleFail, got.BatteryCycleWarn)
	}
	if got.StressSeconds != Default().StressSeconds {
		t.Errorf("StressSeconds = %d, want default", got.StressSeconds)
	}
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".macaudit.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Load(path); got != Default() {
		t.Fatalf("got %+v, want defaults", got)
	}
}
