package acquire

import (
	"os"
	"path/filepath"
)

// The named source slots every phase reads through the cache. Markers are
// strings the genuine payload always carries; fallbacks are the single
// narrower query tried when the primary fails validation.
var (
	SourceHardware = Source{
		Name:     "hardware",
		Cmd:      []string{"system_profiler", "SPHardwareDataType"},
		Marker:   "Serial Number",
		Fallback: []string{"sysctl", "-n", "hw.model"},
	}

	SourceHardwareXML = Source{
		Name:     "hardware-xml",
		Cmd:      []string{"system_profiler", "SPHardwareDataType", "-xml"},
		Marker:   "_items",
		Fallback: []string{"system_profiler", "SPHardwareDataType"},
	}

	SourcePower = Source{
		Name:     "power",
		Cmd:      []string{"system_profiler", "SPPowerDataType"},
		Marker:   "Power",
		Fallback: []string{"pmset", "-g", "batt"},
	}

	SourcePowerXML = Source{
		Name:     "power-xml",
		Cmd:      []string{"system_profiler", "SPPowerDataType", "-xml"},
		Marker:   "_items",
		Fallback: []string{"ioreg", "-rn", "AppleSmartBattery"},
	}

	SourceGraphics = Source{
		Name:     "graphics",
		Cmd:      []string{"system_profiler", "SPDisplaysDataType"},
		Marker:   "Chipset Model",
		Fallback: []string{"ioreg", "-rc", "IOAccelerator"},
	}

	SourceMemory = Source{
		Name:     "memory",
		Cmd:      []string{"system_profiler", "SPMemoryDataType"},
		Marker:   "Memory",
		Fallback: []string{"sysctl", "-n", "hw.memsize"},
	}

	SourceCamera = Source{
		Name:   "camera",
		Cmd:    []string{"system_profiler", "SPCameraDataType"},
		Marker: "Camera",
	}

	SourceAudio = Source{
		Name:   "audio",
		Cmd:    []string{"system_profiler", "SPAudioDataType"},
		Marker: "Audio",
	}

	SourceNetwork = Source{
		Name:     "network",
		Cmd:      []string{"system_profiler", "SPAirPortDataType"},
		Marker:   "Wi-Fi",
		Fallback: []string{"networksetup", "-listallhardwareports"},
	}

	SourceBluetooth = Source{
		Name:   "bluetooth",
		Cmd:    []string{"system_profiler", "SPBluetoothDataType"},
		Marker: "Bluetooth",
	}

	// SourceRegistry is the low-level device-registry dump used to
	// cross-check what the friendlier inventories claim.
	SourceRegistry = Source{
		Name:     "device-registry",
		Cmd:      []string{"ioreg", "-rc", "IOPlatformExpertDevice"},
		Marker:   "IOPlatformSerialNumber",
		Fallback: []string{"ioreg", "-l", "-d", "2"},
	}

	SourceEnrollment = Source{
		Name:     "enrollment",
		Cmd:      []string{"profiles", "status", "-type", "enrollment"},
		Marker:   "Enrolled",
		Fallback: []string{"profiles", "list"},
	}

	SourceIntegrity = Source{
		Name:     "integrity",
		Cmd:      []string{"csrutil", "status"},
		Marker:   "System Integrity Protection",
		Fallback: []string{"spctl", "--status"},
	}

	SourceDisks = Source{
		Name:     "disks",
		Cmd:      []string{"diskutil", "list"},
		Marker:   "/dev/disk",
		Fallback: []string{"df", "-h"},
	}

	SourceBootDisk = Source{
		Name:     "boot-disk",
		Cmd:      []string{"diskutil", "info", "disk0"},
		Marker:   "SMART",
		Fallback: []string{"diskutil", "info", "/"},
	}
)

// SourceCrashReports lists historical diagnostic reports. The system-wide
// directory is primary; the user's own is the fallback. An empty listing is
// a legitimately clean machine, so no marker is required beyond content.
func SourceCrashReports() Source {
	src := Source{
		Name: "crash-reports",
		Cmd:  []string{"ls", "-1t", "/Library/Logs/DiagnosticReports"},
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		src.Fallback = []string{"ls", "-1t", filepath.Join(home, "Library", "Logs", "DiagnosticReports")}
	}
	return src
}
