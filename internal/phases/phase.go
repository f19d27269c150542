package phases

import (
	"fmt"

	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/app/ui"
	"github.com/macaudit/macaudit/internal/classify"
	"github.com/macaudit/macaudit/internal/config"
	"github.com/macaudit/macaudit/internal/ledger"
	"github.com/macaudit/macaudit/internal/probe"
)

// Prompter is the slice of operator interaction the phases need. The real
// terminal satisfies it; tests script it.
type Prompter interface {
	Flush()
	Confirm(prompt string) (ui.Answer, error)
	ReadLine(prompt string) (string, error)
}

// Env carries the shared run state into each phase.
type Env struct {
	Cache   *acquire.Cache
	Caps    *probe.Capabilities
	Cfg     config.Thresholds
	Ledger  *ledger.Ledger
	Term    Prompter
	Verbose bool
}

// Record appends a finding and echoes it live, so the operator sees each
// verdict as it lands rather than only in the final summary.
func (e *Env) Record(sev ledger.Severity, msg string) {
	e.Ledger.Record(sev, msg)
	fmt.Printf("  %s[%s]%s %s\n", ui.SeverityColor(string(sev)), sev, ui.ColorReset, msg)
}

// Manual queues a checklist item and echoes it.
func (e *Env) Manual(text string) {
	e.Ledger.RecordManualCheck(text)
	fmt.Printf("  %s[CHECK]%s %s\n", ui.ColorGray, ui.ColorReset, text)
}

// Classify runs value through a threshold table and records the first match.
func (e *Env) Classify(value int, bands []classify.Band) bool {
	sev, msg, ok := classify.Evaluate(value, bands)
	if !ok {
		return false
	}
	e.Record(sev, msg)
	return true
}

// Phase is one step of the audit. Run never returns an error: a phase that
// cannot reach its data records that as a finding and lets the run continue.
type Phase struct {
	ID    string
	Title string
	Run   func(*Env)
}

// All returns the audit phases in their fixed execution order. The stress
// test runs after these, owned by its own subsystem because of the cleanup
// it has to guarantee.
func All() []Phase {
	return []Phase{
		{ID: "identity", Title: "Hardware identity", Run: runIdentity},
		{ID: "enrollment", Title: "Management enrollment", Run: runEnrollment},
		{ID: "storage", Title: "Storage health", Run: runStorage},
		{ID: "power", Title: "Battery and power", Run: runPower},
		{ID: "graphics", Title: "Graphics and display", Run: runGraphics},
		{ID: "components", Title: "Cameras, audio and input", Run: runComponents},
		{ID: "security", Title: "Security posture", Run: runSecurity},
		{ID: "connectivity", Title: "Wireless connectivity", Run: runConnectivity},
		{ID: "stability", Title: "Crash and panic history", Run: runStability},
		{ID: "thermal", Title: "Thermal state", Run: runThermal},
		{ID: "recovery", Title: "Recovery readiness", Run: runRecovery},
		{ID: "backup", Title: "Handover hygiene", Run: runBackup},
	}
}
