package phases

import (
	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/ledger"
)

// runBackup looks for traces of the seller's data and queues the handover
// steps that protect both sides of the sale.
func runBackup(e *Env) {
	tm := e.Cache.RunQuick("tmutil", "destinationinfo")
	if acquire.ContainsFold(tm, "Name") || acquire.ContainsFold(tm, "ID") {
		e.Record(ledger.SeverityInfo, "A Time Machine destination is configured; the seller's data is still on this machine")
	}

	e.Manual("Watch the seller run Erase All Content and Settings before money changes hands")
	e.Manual("After the wipe, complete Setup Assistant with your own Apple ID while still with the seller")
}
