package phases

import (
	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/ledger"
)

// runRecovery confirms the machine can be wiped and reinstalled, which is
// the first thing a buyer does after handover.
func runRecovery(e *Env) {
	disks := e.Cache.Get(acquire.SourceDisks)
	switch {
	case acquire.ContainsFold(disks, "Recovery"):
		e.Record(ledger.SeverityPass, "A recovery volume is present")
	case disks == "":
		e.Record(ledger.SeverityInfo, "Disk inventory unavailable; recovery volume unverified")
		e.Manual("Boot into Recovery before purchase to prove a reinstall is possible")
	default:
		e.Record(ledger.SeverityWarn, "No recovery volume found in the disk inventory")
		e.Manual("Boot into Recovery before purchase to prove a reinstall is possible")
	}
}
