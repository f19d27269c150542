package probe

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/classify"
	"github.com/macaudit/macaudit/internal/ledger"
)

// The commands the audit cannot produce a trustworthy result without,
// checked up front so a partial PATH fails the run before any phase yields
// half an answer. Best-effort extras (spctl, fdesetup, tmutil) are not
// listed: their absence degrades the owning check to info, never the run.
var requiredCommands = []string{
	"system_profiler",
	"ioreg",
	"sysctl",
	"sw_vers",
	"uname",
	"diskutil",
	"df",
	"ls",
	"pmset",
	"csrutil",
	"profiles",
	"networksetup",
	"open",
	"afplay",
	"yes",
}

// Capabilities describes the machine under audit. Phases consult it to skip
// checks that cannot apply (no battery on a desktop) instead of failing them.
type Capabilities struct {
	OSVersion  string
	Arch       string // "apple-silicon" or "intel"
	FormFactor string // "laptop" or "desktop"

	HasBattery  bool
	HasCamera   bool
	HasSpeakers bool
	HasMic      bool
	HasKeyboard bool

	CPUCount int

	ReportDir     string
	ReportEnabled bool
}

// Options configures the preflight run. GOOS, LookPath and ReportDir exist
// so tests can exercise the logic away from a macOS host.
type Options struct {
	Cache      *acquire.Cache
	Ledger     *ledger.Ledger
	MinOSMajor int
	WantReport bool

	GOOS      string
	LookPath  func(string) (string, error)
	ReportDir string
}

// Run performs the preflight checks and capability detection. Any error it
// returns is fatal: the audit cannot produce trustworthy findings without a
// supported OS, a complete toolset and a readable hardware identity. Each
// fatal condition is also recorded as a fail finding so the abort leaves a
// transcript behind.
func Run(opts Options) (*Capabilities, error) {
	fatal := func(format string, args ...any) error {
		err := fmt.Errorf(format, args...)
		opts.Ledger.Record(ledger.SeverityFail, err.Error())
		return err
	}

	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	if goos != "darwin" {
		return nil, fatal("this audit only runs on macOS, not %s", goos)
	}

	osVersion := strings.TrimSpace(opts.Cache.RunQuick("sw_vers", "-productVersion"))
	if osVersion == "" {
		return nil, fatal("could not determine the macOS version")
	}
	major, _, _ := strings.Cut(osVersion, ".")
	if classify.Numeric(major, 0) < opts.MinOSMajor {
		return nil, fatal("macOS %s is below the supported minimum (%d.x)", osVersion, opts.MinOSMajor)
	}

	lookPath := opts.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	var missing []string
	for _, cmd := range requiredCommands {
		if _, err := lookPath(cmd); err != nil {
			missing = append(missing, cmd)
		}
	}
	if len(missing) > 0 {
		return nil, fatal("required commands not found: %s", strings.Join(missing, ", "))
	}

	hardware := opts.Cache.Get(acquire.SourceHardware)
	if strings.TrimSpace(hardware) == "" {
		return nil, fatal("hardware identity is unreadable; refusing to audit a machine that will not identify itself")
	}

	caps := &Capabilities{
		OSVersion: osVersion,
		CPUCount:  runtime.NumCPU(),
	}
	detect(opts.Cache, hardware, caps)

	if opts.WantReport {
		caps.ReportDir = opts.ReportDir
		if caps.ReportDir == "" {
			if home, err := os.UserHomeDir(); err == nil && home != "" {
				caps.ReportDir = home
			} else {
				caps.ReportDir = "."
			}
		}
		caps.ReportEnabled = dirWritable(caps.ReportDir)
		if !caps.ReportEnabled {
			opts.Ledger.Record(ledger.SeverityWarn,
				fmt.Sprintf("Report directory %s is not writable; the file report is disabled for this run", caps.ReportDir))
		}
	}

	opts.Ledger.Record(ledger.SeverityPass, fmt.Sprintf("Preflight passed: macOS %s, all audit commands available", osVersion))
	return caps, nil
}

// detect fills the capability flags from the cached inventories. Detection
// errs toward present: a phase on a machine that genuinely lacks the part
// reports it as informational, which is cheaper than silently skipping a
// real one.
func detect(cache *acquire.Cache, hardware string, caps *Capabilities) {
	model := acquire.ExtractField(hardware, "Model Identifier")
	if model == "" {
		model = acquire.ExtractField(hardware, "Model Name")
	}
	if acquire.ContainsFold(model, "Book") {
		caps.FormFactor = "laptop"
	} else {
		caps.FormFactor = "desktop"
	}

	arch := strings.TrimSpace(cache.RunQuick("uname", "-m"))
	if strings.HasPrefix(arch, "arm") || acquire.ContainsFold(acquire.ExtractField(hardware, "Chip"), "Apple") {
		caps.Arch = "apple-silicon"
	} else {
		caps.Arch = "intel"
	}

	power := cache.Get(acquire.SourcePower)
	caps.HasBattery = acquire.ContainsFold(power, "Battery Information") ||
		acquire.ContainsFold(power, "Cycle Count") ||
		caps.FormFactor == "laptop"

	camera := cache.Get(acquire.SourceCamera)
	caps.HasCamera = acquire.ContainsFold(camera, "Camera") || caps.FormFactor == "laptop"

	audio := cache.Get(acquire.SourceAudio)
	caps.HasSpeakers = acquire.ContainsFold(audio, "Speaker") || caps.FormFactor == "laptop"
	caps.HasMic = acquire.ContainsFold(audio, "Microphone") || caps.FormFactor == "laptop"

	caps.HasKeyboard = caps.FormFactor == "laptop" ||
		acquire.ContainsFold(cache.Get(acquire.SourceBluetooth), "Keyboard")
}

// dirWritable proves writability by creating and removing a scratch file;
// permission bits alone lie on mounted and ACL-managed volumes.
func dirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".macaudit-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
