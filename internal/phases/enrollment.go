package phases

import (
	"strings"

	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/ledger"
)

// runEnrollment looks for remote claims on the machine: Activation Lock
// ties it to the seller's Apple ID, and device-management enrollment ties
// it to an organization. Either one means the buyer never really owns it.
func runEnrollment(e *Env) {
	lock := acquire.ExtractField(e.Cache.Get(acquire.SourceHardware), "Activation Lock Status")
	switch {
	case strings.EqualFold(lock, "Enabled"):
		e.Record(ledger.SeverityFail, "Activation Lock is enabled; the machine is tied to the seller's Apple ID and can be locked remotely after the sale")
	case strings.EqualFold(lock, "Disabled"):
		e.Record(ledger.SeverityPass, "Activation Lock is disabled")
	default:
		e.Record(ledger.SeverityInfo, "Activation Lock status not reported")
		e.Manual("Check About This Mac for Activation Lock: it must say Disabled before you pay")
	}

	status := e.Cache.Get(acquire.SourceEnrollment)
	if status == "" {
		e.Record(ledger.SeverityInfo, "Enrollment status unavailable (the profiles tool may require admin rights)")
		e.Manual("Run `profiles status -type enrollment` as an admin and expect both answers to be No")
		return
	}

	mdmYes := acquire.ContainsFold(status, "MDM enrollment: Yes")
	depYes := acquire.ContainsFold(status, "Enrolled via DEP: Yes")
	switch {
	case depYes:
		e.Record(ledger.SeverityFail, "Device is enrolled via Automated Device Enrollment; an organization still owns it and can reclaim it remotely")
	case mdmYes:
		e.Record(ledger.SeverityFail, "Device carries an active MDM enrollment; it can be locked or wiped after purchase")
	case acquire.ContainsFold(status, "MDM enrollment: No"):
		e.Record(ledger.SeverityPass, "No device-management enrollment reported")
	default:
		e.Record(ledger.SeverityInfo, "Enrollment status did not parse cleanly")
		e.Manual("Run `profiles status -type enrollment` as an admin and expect both answers to be No")
	}

	e.Manual("Have the seller sign out of Apple ID and confirm Find My / Activation Lock is off before paying")
}
