package audit

import (
	"fmt"
	"time"

	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/app/output"
	"github.com/macaudit/macaudit/internal/app/ui"
	"github.com/macaudit/macaudit/internal/config"
	"github.com/macaudit/macaudit/internal/ledger"
	"github.com/macaudit/macaudit/internal/messages"
	"github.com/macaudit/macaudit/internal/phases"
	"github.com/macaudit/macaudit/internal/probe"
	"github.com/macaudit/macaudit/internal/risk"
	"github.com/macaudit/macaudit/internal/stress"
)

// Options are the command-line switches that shape one run.
type Options struct {
	Quick    bool
	NoReport bool
	Verbose  bool
}

const acquisitionTimeout = 20 * time.Second

// Run drives one complete audit: preflight, the fixed phase pipeline, the
// stress test, the verdict and the report. The returned error is only ever
// a preflight failure; a finding, however bad, is a result, not an error.
func Run(opts Options) error {
	cfg := config.Load(config.DefaultPath)
	led := ledger.New()
	cache := acquire.NewSystemCache(acquisitionTimeout)
	if opts.Verbose {
		cache.Log = func(format string, args ...any) {
			fmt.Printf(ui.ColorGray+"  . "+format+ui.ColorReset+"\n", args...)
		}
	}
	term := ui.Terminal{}

	ui.PrintGradientAsciiArt()
	fmt.Println(messages.GetUIMessage("Welcome"))
	fmt.Println()

	caps, err := probe.Run(probe.Options{
		Cache:      cache,
		Ledger:     led,
		MinOSMajor: cfg.MinOSMajor,
		WantReport: !opts.NoReport,
	})
	if err != nil {
		fmt.Printf("%s%s%s\n", ui.ColorFail, messages.GetUIMessage("ProbeFailed", err), ui.ColorReset)
		return err
	}
	fmt.Println(ui.ColorPass + messages.GetUIMessage("ProbePassed", caps.OSVersion) + ui.ColorReset)
	fmt.Println()

	snap := buildSnapshot(cache, caps)
	output.PrintSnapshot(snap)

	env := &phases.Env{
		Cache:   cache,
		Caps:    caps,
		Cfg:     cfg,
		Ledger:  led,
		Term:    term,
		Verbose: opts.Verbose,
	}
	all := phases.All()
	total := len(all) + 1
	for i, p := range all {
		fmt.Printf("\n%s%s%s\n", ui.ColorWhite, messages.GetUIMessage("PhaseHeader", i+1, total, p.Title), ui.ColorReset)
		p.Run(env)
	}

	fmt.Printf("\n%s%s%s\n", ui.ColorWhite, messages.GetUIMessage("PhaseHeader", total, total, "CPU stress test"), ui.ColorReset)
	if opts.Quick {
		led.Record(ledger.SeverityInfo, "Stress test skipped (quick mode)")
		led.RecordManualCheck("Run the machine under full load for a minute and confirm it neither shuts down nor throttles audibly hard")
	} else {
		stress.New(stress.Options{
			Duration: time.Duration(cfg.StressSeconds) * time.Second,
			Workers:  caps.CPUCount,
		}).Run(led, term)
	}

	verdict := risk.Aggregate(led.Count(ledger.SeverityFail), led.Count(ledger.SeverityWarn), cfg.ModerateWarnLimit)
	output.PrintReport(led, verdict)

	if !opts.NoReport && caps.ReportEnabled {
		fmt.Println()
		if path, err := output.SaveReport(caps.ReportDir, snap, led, verdict); err != nil {
			fmt.Println(ui.ColorWarn + messages.GetUIMessage("ReportSaveFailed", err) + ui.ColorReset)
		} else {
			fmt.Println(messages.GetUIMessage("ReportSaved", path))
		}
	}
	return nil
}

// buildSnapshot prefers the structured hardware payload, falls back to
// scraping the plain-text one, and fills a still-missing memory size from
// the dedicated memory inventory.
func buildSnapshot(cache *acquire.Cache, caps *probe.Capabilities) output.Snapshot {
	snap := output.Snapshot{
		OSVersion:  caps.OSVersion,
		Arch:       caps.Arch,
		FormFactor: caps.FormFactor,
	}
	if hw, ok := acquire.ParseHardware(cache.Get(acquire.SourceHardwareXML)); ok {
		snap.ModelName = hw.ModelName
		snap.ModelID = hw.ModelIdentifier
		snap.Chip = hw.Chip
		snap.Serial = hw.Serial
		snap.Memory = hw.Memory
	} else {
		text := cache.Get(acquire.SourceHardware)
		snap.ModelName = acquire.ExtractField(text, "Model Name")
		snap.ModelID = acquire.ExtractField(text, "Model Identifier")
		snap.Chip = acquire.ExtractField(text, "Chip")
		snap.Serial = acquire.ExtractField(text, "Serial Number")
		snap.Memory = acquire.ExtractField(text, "Memory")
	}
	if snap.Memory == "" {
		snap.Memory = acquire.ExtractField(cache.Get(acquire.SourceMemory), "Memory")
	}
	return snap
}
