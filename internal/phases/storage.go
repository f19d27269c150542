package phases

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/classify"
	"github.com/macaudit/macaudit/internal/ledger"
)

// Capacity classes disks are sold as, in decimal gigabytes. A disk offering
// well under its class points at a re-labelled or counterfeit part.
var marketedSizesGB = []int64{64, 128, 256, 512, 1000, 2000, 4000, 8000}

const minUsableSharePct = 90

// runStorage reads SMART status for the boot disk and how full the boot
// volume is. Worn solid-state storage is the most expensive silent defect a
// used Mac can carry.
func runStorage(e *Env) {
	boot := e.Cache.Get(acquire.SourceBootDisk)
	smart := acquire.ExtractField(boot, "SMART Status")
	switch {
	case strings.EqualFold(smart, "Verified"):
		e.Record(ledger.SeverityPass, "SMART status for the boot disk is Verified")
	case strings.EqualFold(smart, "Not Supported"):
		e.Record(ledger.SeverityInfo, "Boot disk does not expose SMART status (common on external and virtual disks)")
	case smart == "":
		e.Record(ledger.SeverityInfo, "Boot disk details unavailable")
		e.Manual("Run `diskutil info disk0` and confirm SMART Status: Verified")
	default:
		e.Record(ledger.SeverityFail, "SMART reports the boot disk as "+smart)
	}

	if bytes := diskSizeBytes(boot); bytes > 0 {
		if marketed := marketedCapacityGB(bytes); marketed > 0 {
			usablePct := bytes * 100 / (marketed * 1_000_000_000)
			if usablePct < minUsableSharePct {
				e.Record(ledger.SeverityWarn,
					fmt.Sprintf("Boot disk offers %d GB against its %d GB marketed class; the storage may be re-labelled or counterfeit", bytes/1_000_000_000, marketed))
			} else {
				e.Record(ledger.SeverityPass, fmt.Sprintf("Boot disk capacity matches its %d GB class", marketed))
			}
		}
	}

	if disks := e.Cache.Get(acquire.SourceDisks); disks != "" {
		if n := strings.Count(disks, "/dev/disk"); n > 0 {
			e.Record(ledger.SeverityInfo, fmt.Sprintf("Disk inventory lists %d device entries", n))
		}
	}

	usage := e.Cache.RunQuick("df", "-k", "/")
	if pct := dfUsedPercent(usage); pct >= 0 {
		e.Classify(pct, []classify.Band{
			{Min: e.Cfg.DiskUsedWarnPct, Severity: ledger.SeverityWarn, Message: "Boot volume is %d%% full; ask why a machine for sale still carries this much data"},
			{Min: 0, Severity: ledger.SeverityPass, Message: "Boot volume usage is %d%%"},
		})
	}
}

// diskSizeBytes pulls the exact byte count out of a diskutil info payload,
// whose size line reads `Disk Size: 494.4 GB (494384795648 Bytes, ...)`.
func diskSizeBytes(payload string) int64 {
	size := acquire.ExtractField(payload, "Disk Size")
	_, rest, ok := strings.Cut(size, "(")
	if !ok {
		return -1
	}
	num, _, ok := strings.Cut(rest, " Bytes")
	if !ok {
		return -1
	}
	n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
	if err != nil {
		return -1
	}
	return n
}

// marketedCapacityGB maps a raw byte count to the capacity class the disk
// was sold as, 0 when it is larger than any known class.
func marketedCapacityGB(bytes int64) int64 {
	gb := bytes / 1_000_000_000
	for _, size := range marketedSizesGB {
		if gb <= size {
			return size
		}
	}
	return 0
}

// dfUsedPercent pulls the capacity column out of `df -k /` output, -1 when
// it cannot be found.
func dfUsedPercent(out string) int {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return -1
	}
	for _, field := range strings.Fields(lines[len(lines)-1]) {
		if strings.HasSuffix(field, "%") {
			return classify.Numeric(field, -1)
		}
	}
	return -1
}
