package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/macaudit/macaudit/internal/app/ui"
	"github.com/macaudit/macaudit/internal/ledger"
	"github.com/macaudit/macaudit/internal/messages"
	"github.com/macaudit/macaudit/internal/risk"
	"github.com/macaudit/macaudit/internal/version"
)

// Snapshot is the machine identity block shown at the top of the summary
// and the saved report.
type Snapshot struct {
	ModelName  string
	ModelID    string
	Chip       string
	OSVersion  string
	Memory     string
	Serial     string
	Arch       string
	FormFactor string
}

func (s Snapshot) rows() [][2]string {
	rows := [][2]string{
		{"Model", strings.TrimSpace(s.ModelName + " " + parenthesize(s.ModelID))},
		{"Chip", s.Chip},
		{"Memory", s.Memory},
		{"macOS", s.OSVersion},
		{"Serial", s.Serial},
		{"Type", strings.TrimSpace(s.FormFactor + " " + parenthesize(s.Arch))},
	}
	out := rows[:0]
	for _, r := range rows {
		if strings.TrimSpace(r[1]) != "" {
			out = append(out, r)
		}
	}
	return out
}

func parenthesize(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return "(" + s + ")"
}

// PrintSnapshot writes the identity block to the console.
func PrintSnapshot(s Snapshot) {
	fmt.Println(ui.ColorWhite + messages.GetUIMessage("SnapshotTitle") + ui.ColorReset)
	for _, row := range s.rows() {
		fmt.Printf("  %-8s %s\n", row[0]+":", row[1])
	}
	fmt.Println()
}

// PrintReport writes the colored end-of-run summary: counts per severity,
// the verdict, the failure and warning lists, and the manual checklist.
func PrintReport(led *ledger.Ledger, verdict risk.Verdict) {
	fmt.Println()
	fmt.Println(ui.ColorWhite + messages.GetUIMessage("SummaryTitle") + ui.ColorReset)

	for _, sev := range ledger.Severities {
		color := ui.SeverityColor(string(sev))
		fmt.Printf("  %s%-4s%s %d\n", color, string(sev), ui.ColorReset, led.Count(sev))
	}

	fmt.Println()
	fmt.Printf("%s%s%s\n", verdictColor(verdict), messages.GetUIMessage("VerdictLine", string(verdict)), ui.ColorReset)
	fmt.Println(risk.Advice(verdict))

	printList(messages.GetUIMessage("FailListTitle"), ui.ColorFail, led.Findings(ledger.SeverityFail))
	printList(messages.GetUIMessage("WarnListTitle"), ui.ColorWarn, led.Findings(ledger.SeverityWarn))
	printList(messages.GetUIMessage("ChecklistTitle"), ui.ColorGray, led.ManualChecks())
}

func printList(title, color string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(color + title + ui.ColorReset)
	for _, item := range items {
		fmt.Println("  - " + item)
	}
}

func verdictColor(v risk.Verdict) string {
	switch v {
	case risk.VerdictCritical:
		return ui.ColorFail
	case risk.VerdictModerate:
		return ui.ColorWarn
	default:
		return ui.ColorPass
	}
}

// RenderReport builds the plain-text report body shared by the saved file.
// No color codes here; the file has to read cleanly anywhere.
func RenderReport(snap Snapshot, led *ledger.Ledger, verdict risk.Verdict, now time.Time) string {
	var b strings.Builder
	b.WriteString(version.ReportHeader() + "\n")
	b.WriteString("Generated: " + now.Format("2006-01-02 15:04:05") + "\n\n")

	b.WriteString(messages.GetUIMessage("SnapshotTitle") + "\n")
	for _, row := range snap.rows() {
		fmt.Fprintf(&b, "  %-8s %s\n", row[0]+":", row[1])
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s\n", messages.GetUIMessage("VerdictLine", string(verdict)))
	b.WriteString(risk.Advice(verdict) + "\n\n")

	fmt.Fprintf(&b, "Findings recorded: %d\n\n", led.Total())
	for _, sev := range ledger.Severities {
		findings := led.Findings(sev)
		if len(findings) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s (%d)\n", string(sev), len(findings))
		for _, f := range findings {
			b.WriteString("  - " + f + "\n")
		}
		b.WriteString("\n")
	}

	if manual := led.ManualChecks(); len(manual) > 0 {
		b.WriteString(messages.GetUIMessage("ChecklistTitle") + "\n")
		for _, m := range manual {
			b.WriteString("  [ ] " + m + "\n")
		}
	}
	return b.String()
}

// SaveReport writes the report into dir with a timestamped name and returns
// the full path.
func SaveReport(dir string, snap Snapshot, led *ledger.Ledger, verdict risk.Verdict) (string, error) {
	now := time.Now()
	path := filepath.Join(dir, "macaudit_report_"+now.Format("20060102_150405")+".txt")
	if err := os.WriteFile(path, []byte(RenderReport(snap, led, verdict, now)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
