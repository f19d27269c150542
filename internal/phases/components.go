package phases

import (
	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/app/ui"
	"github.com/macaudit/macaudit/internal/ledger"
	"github.com/macaudit/macaudit/internal/messages"
)

const toneFile = "/System/Library/Sounds/Submarine.aiff"

// runComponents covers the parts a seller hopes you will not try: camera,
// speakers, microphone and keyboard. Inventory claims are cross-checked
// against the low-level device registry, which a swapped or non-original
// part tends not to show up in; what the machine can exercise it does, and
// the rest goes on the checklist.
func runComponents(e *Env) {
	registry := e.Cache.Get(acquire.SourceRegistry)

	camera := e.Cache.Get(acquire.SourceCamera)
	switch {
	case acquire.ContainsFold(camera, "Camera"):
		if registry != "" && !acquire.ContainsFold(registry, "cam") {
			e.Record(ledger.SeverityWarn, "The inventory lists a camera but the device registry carries no camera device; a non-original part may be fitted")
		} else {
			e.Record(ledger.SeverityPass, "Camera present: "+firstCameraName(camera))
		}
		e.Manual("Open Photo Booth and confirm the camera image is sharp and free of spots")
	case e.Caps.HasCamera:
		e.Record(ledger.SeverityWarn, "A camera is expected on this model but none is reported; it may be disconnected or dead")
	default:
		e.Record(ledger.SeverityInfo, "No camera reported on this machine")
	}

	answer, err := e.Term.Confirm(messages.GetUIMessage("AskToneTest"))
	if err == nil && answer == ui.AnswerYes {
		e.Cache.RunQuick("afplay", toneFile)
		heard, err := e.Term.Confirm(messages.GetUIMessage("AskToneHeard"))
		switch {
		case err == nil && heard == ui.AnswerYes:
			e.Record(ledger.SeverityPass, "Operator confirmed clean speaker output")
		case err == nil && heard == ui.AnswerNo:
			e.Record(ledger.SeverityFail, "Operator reported missing or distorted speaker output")
		default:
			e.Record(ledger.SeverityInfo, "Speaker test result was ambiguous")
			e.Manual("Play music at mid volume and listen for crackle from each speaker")
		}
	} else {
		e.Manual("Play music at mid volume and listen for crackle from each speaker")
	}

	if e.Caps.HasMic {
		e.Manual("Record a short Voice Memo and play it back to verify the microphone")
	}
	if e.Caps.HasKeyboard {
		e.Manual("Type every key, including modifiers and function row, in a text editor")
		e.Manual("Move the cursor across the whole trackpad and test click zones in each corner")
	}
}

func firstCameraName(payload string) string {
	if name := acquire.ExtractField(payload, "Model ID"); name != "" {
		return name
	}
	return "built-in"
}
