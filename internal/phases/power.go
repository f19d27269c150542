package phases

import (
	"fmt"
	"strings"

	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/classify"
	"github.com/macaudit/macaudit/internal/ledger"
)

// runPower grades battery wear. On machines without a battery the phase
// reports that and moves on; a missing part is not a defect.
func runPower(e *Env) {
	if !e.Caps.HasBattery {
		e.Record(ledger.SeverityPass, "No battery on this machine; wear checks do not apply")
		return
	}

	if info, ok := acquire.ParseBattery(e.Cache.Get(acquire.SourcePowerXML)); ok {
		gradeBattery(e, info)
		return
	}

	// Structured payload unavailable; scrape the plain-text inventory.
	text := e.Cache.Get(acquire.SourcePower)
	cycles := classify.Numeric(acquire.ExtractField(text, "Cycle Count"), -1)
	if cycles < 0 {
		e.Record(ledger.SeverityInfo, "Battery health data unavailable")
		e.Manual("Open System Settings > Battery > Battery Health and verify condition and capacity")
		return
	}
	gradeBattery(e, acquire.BatteryInfo{
		CycleCount:     cycles,
		Condition:      acquire.ExtractField(text, "Condition"),
		MaxCapacityPct: classify.Numeric(acquire.ExtractField(text, "Maximum Capacity"), -1),
	})
}

func gradeBattery(e *Env, info acquire.BatteryInfo) {
	if info.CycleCount >= 0 {
		e.Classify(info.CycleCount, []classify.Band{
			{Min: e.Cfg.BatteryCycleFail, Severity: ledger.SeverityFail, Message: "Battery cycle count %d; the battery is at end of life and replacement is due"},
			{Min: e.Cfg.BatteryCycleWarn, Severity: ledger.SeverityWarn, Message: "Battery cycle count %d is high; budget for a replacement soon"},
			{Min: 0, Severity: ledger.SeverityPass, Message: "Battery cycle count %d is healthy"},
		})
	} else {
		e.Record(ledger.SeverityInfo, "Battery cycle count unavailable")
	}

	switch cond := strings.TrimSpace(info.Condition); {
	case cond == "":
		// Nothing to grade.
	case strings.EqualFold(cond, "Good") || strings.EqualFold(cond, "Normal"):
		e.Record(ledger.SeverityPass, "Battery condition reported as "+cond)
	case acquire.ContainsFold(cond, "Service"):
		e.Record(ledger.SeverityFail, "Battery condition reported as "+cond)
	default:
		e.Record(ledger.SeverityWarn, "Battery condition reported as "+cond)
	}

	if info.MaxCapacityPct >= 0 {
		if info.MaxCapacityPct < e.Cfg.BatteryHealthWarnPct {
			e.Record(ledger.SeverityWarn, fmt.Sprintf("Battery holds %d%% of its original capacity", info.MaxCapacityPct))
		} else {
			e.Record(ledger.SeverityPass, fmt.Sprintf("Battery holds %d%% of its original capacity", info.MaxCapacityPct))
		}
	}
}
