package phases

import (
	"strings"

	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/classify"
	"github.com/macaudit/macaudit/internal/ledger"
)

// runThermal asks the power manager whether the CPU is being throttled at
// rest. A machine throttling while idle has a cooling problem long before
// the stress test confirms it.
func runThermal(e *Env) {
	therm := e.Cache.RunQuick("pmset", "-g", "therm")

	// pmset prints `CPU_Speed_Limit = 100`, not the colon form the other
	// inventories use.
	limit := -1
	for _, line := range strings.Split(therm, "\n") {
		if acquire.ContainsFold(line, "CPU_Speed_Limit") {
			limit = classify.Numeric(line, -1)
			break
		}
	}

	if limit < 0 {
		e.Record(ledger.SeverityInfo, "CPU speed limit not reported (typical on Apple silicon)")
		return
	}
	if limit < e.Cfg.ThrottleWarnBelowPct {
		e.Classify(limit, []classify.Band{
			{Min: 0, Severity: ledger.SeverityWarn, Message: "CPU is limited to %d%% of full speed while idle; the cooling system may be clogged or failing"},
		})
		return
	}
	e.Record(ledger.SeverityPass, "No thermal throttling at rest")
}
