package phases

import (
	"fmt"
	"strings"

	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/ledger"
	"github.com/macaudit/macaudit/internal/messages"
)

// runIdentity cross-checks the serial number three ways: System Profiler,
// the low-level device registry, and the operator reading it off the
// chassis. A disagreement between the first two points at a swapped logic
// board; a chassis mismatch points at a reshelled machine.
func runIdentity(e *Env) {
	hardware := e.Cache.Get(acquire.SourceHardware)
	registry := e.Cache.Get(acquire.SourceRegistry)

	profilerSerial := acquire.ExtractField(hardware, "Serial Number")
	registrySerial := acquire.RegistryField(registry, "IOPlatformSerialNumber")

	model := acquire.ExtractField(hardware, "Model Name")
	if ident := acquire.ExtractField(hardware, "Model Identifier"); ident != "" {
		model = strings.TrimSpace(model + " (" + ident + ")")
	}
	if model != "" {
		e.Record(ledger.SeverityInfo, "Machine reports itself as "+model)
	}

	switch {
	case profilerSerial == "" && registrySerial == "":
		e.Record(ledger.SeverityWarn, "No serial number readable from either inventory")
		e.Manual("Check the chassis serial against Apple's coverage lookup by hand")
	case profilerSerial != "" && registrySerial != "" && !strings.EqualFold(profilerSerial, registrySerial):
		e.Record(ledger.SeverityFail,
			fmt.Sprintf("Serial mismatch between System Profiler (%s) and the device registry (%s); the logic board may have been swapped", profilerSerial, registrySerial))
	default:
		serial := profilerSerial
		if serial == "" {
			serial = registrySerial
		}
		e.Record(ledger.SeverityPass, "Software serial number is consistent: "+serial)
	}

	entered, err := e.Term.ReadLine(messages.GetUIMessage("AskSerialEntry"))
	if err != nil || entered == "" {
		e.Manual("Compare the chassis serial number with the one in About This Mac")
		return
	}
	reference := profilerSerial
	if reference == "" {
		reference = registrySerial
	}
	switch {
	case reference == "":
		e.Record(ledger.SeverityInfo, "Chassis serial noted, but no software serial to compare against")
		e.Manual("Check the chassis serial against Apple's coverage lookup by hand")
	case strings.EqualFold(entered, reference):
		e.Record(ledger.SeverityPass, "Chassis serial matches the software serial")
	default:
		e.Record(ledger.SeverityFail,
			fmt.Sprintf("Chassis serial %s does not match the software serial %s; the machine may be reshelled", entered, reference))
	}
}
