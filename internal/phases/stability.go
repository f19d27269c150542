package phases

import (
	"strings"

	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/classify"
	"github.com/macaudit/macaudit/internal/ledger"
)

// runStability reads the diagnostic-report directory. Kernel panics point
// at failing hardware; a thick stack of app crashes points at a machine
// that has been struggling for a while.
func runStability(e *Env) {
	listing := e.Cache.Get(acquire.SourceCrashReports())
	if strings.TrimSpace(listing) == "" {
		e.Record(ledger.SeverityPass, "No diagnostic reports on file")
		return
	}

	var panics, crashes int
	for _, line := range strings.Split(listing, "\n") {
		name := strings.ToLower(strings.TrimSpace(line))
		switch {
		case name == "":
		case strings.Contains(name, ".panic"):
			panics++
		case strings.HasSuffix(name, ".crash") || strings.HasSuffix(name, ".ips"):
			crashes++
		}
	}

	if panics > 0 {
		e.Classify(panics, []classify.Band{
			{Min: e.Cfg.PanicFailCount, Severity: ledger.SeverityFail, Message: "%d kernel panic reports on file; suspect failing hardware"},
			{Min: e.Cfg.PanicWarnCount, Severity: ledger.SeverityWarn, Message: "%d kernel panic report(s) on file; ask the seller what happened"},
		})
	} else {
		e.Record(ledger.SeverityPass, "No kernel panic reports on file")
	}

	if crashes >= e.Cfg.CrashWarnCount {
		e.Classify(crashes, []classify.Band{
			{Min: e.Cfg.CrashWarnCount, Severity: ledger.SeverityWarn, Message: "%d application crash reports on file"},
		})
	} else if crashes > 0 {
		e.Classify(crashes, []classify.Band{
			{Min: 1, Severity: ledger.SeverityInfo, Message: "%d application crash report(s) on file; normal for a used machine"},
		})
	}
}
