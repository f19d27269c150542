package acquire

import (
	"errors"
	"strings"

	"howett.net/plist"

	"github.com/macaudit/macaudit/internal/classify"
)

// profilerSection mirrors the top level of `system_profiler <type> -xml`: a
// plist array of data-type dicts, each carrying an _items array.
type profilerSection struct {
	DataType string           `plist:"_dataType"`
	Items    []map[string]any `plist:"_items"`
}

// DecodeProfiler flattens a profiler XML payload into its item dicts.
func DecodeProfiler(raw string) ([]map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("empty payload")
	}
	var sections []profilerSection
	if _, err := plist.Unmarshal([]byte(raw), &sections); err != nil {
		return nil, err
	}
	var items []map[string]any
	for _, s := range sections {
		items = append(items, s.Items...)
	}
	if len(items) == 0 {
		return nil, errors.New("payload carries no items")
	}
	return items, nil
}

// BatteryInfo is the subset of SPPowerDataType the power phase classifies.
type BatteryInfo struct {
	CycleCount     int
	Condition      string
	MaxCapacityPct int
}

// ParseBattery extracts battery health from a profiler power payload. The
// second return is false when the payload has no battery section; callers
// fall back to text scraping or capability flags.
func ParseBattery(raw string) (BatteryInfo, bool) {
	items, err := DecodeProfiler(raw)
	if err != nil {
		return BatteryInfo{}, false
	}
	for _, it := range items {
		health, ok := it["sppower_battery_health_info"].(map[string]any)
		if !ok {
			continue
		}
		return BatteryInfo{
			CycleCount:     intField(health, "sppower_battery_cycle_count", -1),
			Condition:      strField(health, "sppower_battery_health"),
			MaxCapacityPct: intField(health, "sppower_battery_health_maximum_capacity", -1),
		}, true
	}
	return BatteryInfo{}, false
}

// HardwareInfo is the subset of SPHardwareDataType used for the identity
// check and the report snapshot.
type HardwareInfo struct {
	ModelName       string
	ModelIdentifier string
	Chip            string
	Serial          string
	Memory          string
}

// ParseHardware extracts the machine identity from a profiler hardware
// payload.
func ParseHardware(raw string) (HardwareInfo, bool) {
	items, err := DecodeProfiler(raw)
	if err != nil {
		return HardwareInfo{}, false
	}
	for _, it := range items {
		if strField(it, "machine_model") == "" && strField(it, "serial_number") == "" {
			continue
		}
		chip := strField(it, "chip_type")
		if chip == "" {
			chip = strField(it, "cpu_type")
		}
		return HardwareInfo{
			ModelName:       strField(it, "machine_name"),
			ModelIdentifier: strField(it, "machine_model"),
			Chip:            chip,
			Serial:          strField(it, "serial_number"),
			Memory:          strField(it, "physical_memory"),
		}, true
	}
	return HardwareInfo{}, false
}

func strField(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// intField tolerates the plist decoder's spread of numeric types, plus
// strings like "93 %".
func intField(m map[string]any, key string, def int) int {
	switch v := m[key].(type) {
	case uint64:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	case string:
		return classify.Numeric(v, def)
	default:
		return def
	}
}
