package phases

import (
	"time"

	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/ledger"
)

// runConnectivity verifies the wireless radios exist and answer. The
// airport power query runs detached with its own deadline because
// networksetup is known to hang on some driver states.
func runConnectivity(e *Env) {
	network := e.Cache.Get(acquire.SourceNetwork)
	switch {
	case acquire.ContainsFold(network, "Wi-Fi"):
		e.Record(ledger.SeverityPass, "Wi-Fi interface is present")
	case network == "":
		e.Record(ledger.SeverityWarn, "No network hardware inventory available")
	default:
		e.Record(ledger.SeverityWarn, "No Wi-Fi interface reported")
	}

	if out, ok := acquire.RunDetached(5*time.Second, "networksetup", "-getairportpower", "en0"); ok {
		switch {
		case acquire.ContainsFold(out, "On"):
			e.Record(ledger.SeverityPass, "Wi-Fi radio is powered on")
		case acquire.ContainsFold(out, "Off"):
			e.Record(ledger.SeverityInfo, "Wi-Fi radio is powered off; turn it on and join a network before buying")
		}
	} else {
		e.Record(ledger.SeverityInfo, "Wi-Fi power query did not answer")
	}

	bluetooth := e.Cache.Get(acquire.SourceBluetooth)
	switch {
	case acquire.ContainsFold(bluetooth, "Bluetooth"):
		e.Record(ledger.SeverityPass, "Bluetooth controller is present")
	default:
		e.Record(ledger.SeverityWarn, "No Bluetooth controller reported")
	}

	e.Manual("Join a Wi-Fi network and load a page; pair a Bluetooth device if you carry one")
}
