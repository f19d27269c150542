package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the optional override file read from the working directory.
const DefaultPath = ".macaudit.yaml"

// Thresholds collects every classification cutoff under one named roof.
// The defaults mirror the bands the audit has always used; they are surfaced
// here (and via the YAML override) so a domain expert can retune them
// without touching rule code.
type Thresholds struct {
	MinOSMajor           int `yaml:"min_os_major"`
	BatteryCycleWarn     int `yaml:"battery_cycle_warn"`
	BatteryCycleFail     int `yaml:"battery_cycle_fail"`
	BatteryHealthWarnPct int `yaml:"battery_health_warn_pct"`
	DiskUsedWarnPct      int `yaml:"disk_used_warn_pct"`
	PanicWarnCount       int `yaml:"panic_warn_count"`
	PanicFailCount       int `yaml:"panic_fail_count"`
	CrashWarnCount       int `yaml:"crash_warn_count"`
	ThrottleWarnBelowPct int `yaml:"throttle_warn_below_pct"`
	ModerateWarnLimit    int `yaml:"moderate_warn_limit"`
	StressSeconds        int `yaml:"stress_seconds"`
}

func Default() Thresholds {
	return Thresholds{
		MinOSMajor:           14,
		BatteryCycleWarn:     800,
		BatteryCycleFail:     1000,
		BatteryHealthWarnPct: 80,
		DiskUsedWarnPct:      90,
		PanicWarnCount:       1,
		PanicFailCount:       3,
		CrashWarnCount:       10,
		ThrottleWarnBelowPct: 100,
		ModerateWarnLimit:    3,
		StressSeconds:        60,
	}
}

// Load returns the defaults, overlaid with any values the optional YAML file
// provides. A missing or malformed file is not an error; the audit must run
// on a machine that has never seen this tool before.
func Load(path string) Thresholds {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Default()
	}
	return sanitize(t)
}

// sanitize snaps non-positive overrides back to their defaults so a partial
// or sloppy file cannot disable a rule outright.
func sanitize(t Thresholds) Thresholds {
	def := Default()
	if t.MinOSMajor < 1 {
		t.MinOSMajor = def.MinOSMajor
	}
	if t.BatteryCycleWarn < 1 {
		t.BatteryCycleWarn = def.BatteryCycleWarn
	}
	if t.BatteryCycleFail < t.BatteryCycleWarn {
		t.BatteryCycleFail = def.BatteryCycleFail
	}
	if t.BatteryHealthWarnPct < 1 || t.BatteryHealthWarnPct > 100 {
		t.BatteryHealthWarnPct = def.BatteryHealthWarnPct
	}
	if t.DiskUsedWarnPct < 1 || t.DiskUsedWarnPct > 100 {
		t.DiskUsedWarnPct = def.DiskUsedWarnPct
	}
	if t.PanicWarnCount < 1 {
		t.PanicWarnCount = def.PanicWarnCount
	}
	if t.PanicFailCount < t.PanicWarnCount {
		t.PanicFailCount = def.PanicFailCount
	}
	if t.CrashWarnCount < 1 {
		t.CrashWarnCount = def.CrashWarnCount
	}
	if t.ThrottleWarnBelowPct < 1 || t.ThrottleWarnBelowPct > 100 {
		t.ThrottleWarnBelowPct = def.ThrottleWarnBelowPct
	}
	if t.ModerateWarnLimit < 1 {
		t.ModerateWarnLimit = def.ModerateWarnLimit
	}
	if t.StressSeconds < 5 {
		t.StressSeconds = def.StressSeconds
	}
	return t
}
