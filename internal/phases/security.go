package phases

import (
	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/ledger"
)

// runSecurity checks the protections a tampered machine usually has turned
// off: System Integrity Protection, Gatekeeper and FileVault.
func runSecurity(e *Env) {
	sip := e.Cache.Get(acquire.SourceIntegrity)
	switch {
	case acquire.ContainsFold(sip, "enabled"):
		e.Record(ledger.SeverityPass, "System Integrity Protection is enabled")
	case acquire.ContainsFold(sip, "disabled"):
		e.Record(ledger.SeverityFail, "System Integrity Protection is disabled; assume the OS install is not trustworthy")
	default:
		e.Record(ledger.SeverityInfo, "System Integrity Protection status unavailable")
		e.Manual("Run `csrutil status` and expect: enabled")
	}

	gatekeeper := e.Cache.RunQuick("spctl", "--status")
	switch {
	case acquire.ContainsFold(gatekeeper, "assessments enabled"):
		e.Record(ledger.SeverityPass, "Gatekeeper assessments are enabled")
	case acquire.ContainsFold(gatekeeper, "assessments disabled"):
		e.Record(ledger.SeverityWarn, "Gatekeeper assessments are disabled")
	default:
		e.Record(ledger.SeverityInfo, "Gatekeeper status unavailable")
	}

	filevault := e.Cache.RunQuick("fdesetup", "status")
	switch {
	case acquire.ContainsFold(filevault, "FileVault is On"):
		e.Record(ledger.SeverityInfo, "FileVault is on; the disk must be unlocked or wiped at handover")
	case acquire.ContainsFold(filevault, "FileVault is Off"):
		e.Record(ledger.SeverityInfo, "FileVault is off")
	default:
		e.Record(ledger.SeverityInfo, "FileVault status unavailable")
	}
}
