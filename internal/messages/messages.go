package messages

import "fmt"

// One place for operator-facing wording, keyed the same way the findings
// that reference it are. Keep phrasing here so phase code stays about rules.
var uiMessages = map[string]string{
	"Welcome":     "Interactive pre-purchase audit. Read-only: nothing on this Mac is modified.",
	"ProbeFailed": "Preflight check failed: %v",
	"ProbePassed": "Preflight checks passed (macOS %s)",
	"PhaseHeader": "[%d/%d] %s",

	"AskSerialEntry":   "Enter the serial number printed on the chassis (press Enter to skip): ",
	"AskToneTest":      "Play a test tone through the built-in speakers?",
	"AskToneHeard":     "Did you hear the tone clearly, without crackle?",
	"AskDisplayTest":   "Open the full-screen display test pattern?",
	"AskDisplayClean":  "Were all color panels uniform (no dead pixels, lines, or stains)?",
	"AskStressTest":    "Run the CPU stress test? Fans should spin up; the machine must not shut down.",
	"StressCountdown":  "\rStress test running: %3ds remaining (press any key to stop early) ",
	"StressStopped":    "Stress test stopped by keystroke with time remaining.",
	"StressDone":       "Stress test finished.",
	"ReportSaved":      "Report saved to %s",
	"ReportSaveFailed": "Could not write the report file: %v",

	"SummaryTitle":   "=== Audit Summary ===",
	"ChecklistTitle": "Manual checks before you hand over money:",
	"SnapshotTitle":  "System snapshot:",
	"VerdictLine":    "Risk verdict: %s",
	"FailListTitle":  "Failures:",
	"WarnListTitle":  "Warnings:",
}

// GetUIMessage formats the catalog entry for key, falling back to the key
// itself so a missing entry is visible instead of silent.
func GetUIMessage(key string, args ...any) string {
	msg, ok := uiMessages[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
