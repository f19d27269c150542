package ui

import (
	"fmt"
	"strings"
)

const AsciiArt = `
███╗   ███╗ █████╗  ██████╗ █████╗ ██╗   ██╗██████╗ ██╗████████╗
████╗ ████║██╔══██╗██╔════╝██╔══██╗██║   ██║██╔══██╗██║╚══██╔══╝
██╔████╔██║███████║██║     ███████║██║   ██║██║  ██║██║   ██║
██║╚██╔╝██║██╔══██║██║     ██╔══██║██║   ██║██║  ██║██║   ██║
██║ ╚═╝ ██║██║  ██║╚██████╗██║  ██║╚██████╔╝██████╔╝██║   ██║
╚═╝     ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝ ╚═════╝ ╚═════╝ ╚═╝   ╚═╝
`

const (
	ColorReset  = "\033[0m"
	ColorGray   = "\033[90m" // Light gray
	ColorWhite  = "\033[97m" // White
	ColorRed    = "\033[91m" // Bright Red
	ColorGreen  = "\033[92m" // Bright Green
	ColorYellow = "\033[93m" // Bright Yellow

	ColorInfo = "\033[37m" // White/Light Gray for INFO
	ColorPass = "\033[32m" // Green for PASS
	ColorWarn = "\033[33m" // Yellow/Orange for WARN
	ColorFail = "\033[31m" // Red for FAIL
)

// PrintGradientAsciiArt prints the banner with a Green to Blue gradient.
func PrintGradientAsciiArt() {
	// Preserve left padding for visual alignment.
	lines := strings.Split(strings.Trim(AsciiArt, "\n"), "\n")
	for i, line := range lines {
		ratio := float64(i) / float64(len(lines)-1)

		var r, g, b int
		// Green (0,255,128) -> Cyan (0,255,255) -> Blue (0,128,255)
		if ratio < 0.5 {
			localRatio := ratio * 2
			r = 0
			g = 255
			b = 128 + int(127*localRatio)
		} else {
			localRatio := (ratio - 0.5) * 2
			r = 0
			g = 255 - int(127*localRatio)
			b = 255
		}

		fmt.Printf("\033[38;2;%d;%d;%dm%s\033[0m\n", r, g, b, line)
	}
}

// SeverityColor maps a severity label to its console color.
func SeverityColor(sev string) string {
	switch sev {
	case "FAIL":
		return ColorFail
	case "WARN":
		return ColorWarn
	case "PASS":
		return ColorPass
	case "INFO":
		return ColorInfo
	default:
		return ColorWhite
	}
}
