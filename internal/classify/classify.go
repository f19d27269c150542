package classify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/macaudit/macaudit/internal/ledger"
)

// Numeric reduces a raw upstream field to an integer by keeping only its
// digits. Malformed or empty input yields the caller-supplied default; it
// never fails, so rule evaluation can always proceed.
func Numeric(raw string, def int) int {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return def
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return def
	}
	return n
}

// Band is one row of a threshold table: values at or above Min classify as
// Severity. Message may carry a single %d verb for the value.
type Band struct {
	Min      int
	Severity ledger.Severity
	Message  string
}

// Evaluate walks the bands top-down and returns the first match. Tables are
// written highest-threshold first so the worst applicable band wins.
func Evaluate(value int, bands []Band) (ledger.Severity, string, bool) {
	for _, b := range bands {
		if value >= b.Min {
			msg := b.Message
			if strings.Contains(msg, "%d") {
				msg = fmt.Sprintf(msg, value)
			}
			return b.Severity, msg, true
		}
	}
	return "", "", false
}
