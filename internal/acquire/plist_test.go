package acquire

import "testing"

const powerXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<array>
  <dict>
    <key>_dataType</key><string>SPPowerDataType</string>
    <key>_items</key>
    <array>
      <dict>
        <key>_name</key><string>spbattery_information</string>
        <key>sppower_battery_health_info</key>
        <dict>
          <key>sppower_battery_cycle_count</key><integer>341</integer>
          <key>sppower_battery_health</key><string>Good</string>
          <key>sppower_battery_health_maximum_capacity</key><string>93 %</string>
        </dict>
      </dict>
      <dict>
        <key>_name</key><string>sppower_ac_charger_information</string>
      </dict>
    </array>
  </dict>
</array>
</plist>`

const hardwareXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<array>
  <dict>
    <key>_dataType</key><string>SPHardwareDataType</string>
    <key>_items</key>
    <array>
      <dict>
        <key>machine_model</key><string>MacBookPro18,3</string>
        <key>machine_name</key><string>MacBook Pro</string>
        <key>chip_type</key><string>Apple M1 Pro</string>
        <key>serial_number</key><string>C02TESTSERIAL</string>
        <key>physical_memory</key><string>16 GB</string>
      </dict>
    </array>
  </dict>
</array>
</plist>`

func TestParseBattery(t *testing.T) {
	info, ok := ParseBattery(powerXML)
	if !ok {
		t.Fatal("expected a battery section")
	}
	if info.CycleCount != 341 {
		t.Errorf("CycleCount = %d, want 341", info.CycleCount)
	}
	if info.Condition != "Good" {
		t.Errorf("Condition = %q, want Good", info.Condition)
	}
	if info.MaxCapacityPct != 93 {
		t.Errorf("MaxCapacityPct = %d, want 93", info.MaxCapacityPct)
	}
}

func TestParseBatteryAbsent(t *testing.T) {
	desktop := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<array>
  <dict>
    <key>_dataType</key><string>SPPowerDataType</string>
    <key>_items</key>
    <array>
      <dict><key>_name</key><string>sppower_information</string></dict>
    </array>
  </dict>
</array>
</plist>`
	if _, ok := ParseBattery(desktop); ok {
		t.Fatal("battery reported on a payload without one")
	}
	if _, ok := ParseBattery(""); ok {
		t.Fatal("battery reported on an empty payload")
	}
	if _, ok := ParseBattery("Battery Information:\n  Cycle Count: 12"); ok {
		t.Fatal("battery reported on a non-plist payload")
	}
}

func TestParseHardware(t *testing.T) {
	info, ok := ParseHardware(hardwareXML)
	if !ok {
		t.Fatal("expected a hardware item")
	}
	if info.ModelIdentifier != "MacBookPro18,3" {
		t.Errorf("ModelIdentifier = %q", info.ModelIdentifier)
	}
	if info.Serial != "C02TESTSERIAL" {
		t.Errorf("Serial = %q", info.Serial)
	}
	if info.Chip != "Apple M1 Pro" {
		t.Errorf("Chip = %q", info.Chip)
	}
	if info.Memory != "16 GB" {
		t.Errorf("Memory = %q", info.Memory)
	}
}
