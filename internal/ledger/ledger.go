package ledger

type Severity string

const (
	SeverityPass Severity = "PASS"
	SeverityWarn Severity = "WARN"
	SeverityFail Severity = "FAIL"
	SeverityInfo Severity = "INFO"
)

// Severities lists every severity in report order.
var Severities = []Severity{SeverityFail, SeverityWarn, SeverityPass, SeverityInfo}

// Ledger is the append-only transcript of one audit run. Findings are
// partitioned by severity and kept in insertion order; nothing is ever
// removed or rewritten, so the final report replays the run faithfully.
type Ledger struct {
	findings map[Severity][]string
	manual   []string
}

func New() *Ledger {
	return &Ledger{findings: make(map[Severity][]string)}
}

func (l *Ledger) Record(sev Severity, message string) {
	l.findings[sev] = append(l.findings[sev], message)
}

// RecordManualCheck appends a remediation/verification item unless the exact
// text is already present. Item counts stay small, so a linear scan is fine.
func (l *Ledger) RecordManualCheck(text string) {
	for _, m := range l.manual {
		if m == text {
			return
		}
	}
	l.manual = append(l.manual, text)
}

func (l *Ledger) Count(sev Severity) int {
	return len(l.findings[sev])
}

func (l *Ledger) Total() int {
	n := 0
	for _, msgs := range l.findings {
		n += len(msgs)
	}
	return n
}

// Findings returns a copy of the recorded messages for one severity, in
// insertion order.
func (l *Ledger) Findings(sev Severity) []string {
	return append([]string(nil), l.findings[sev]...)
}

// ManualChecks returns the deduplicated checklist in first-insertion order.
func (l *Ledger) ManualChecks() []string {
	return append([]string(nil), l.manual...)
}
