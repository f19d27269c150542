package acquire

import "strings"

// ExtractField scans "Label: value" lines and returns the trimmed value of
// the first matching line that carries one. Labels match by prefix, so
// "Serial Number" also matches "Serial Number (system)"; value-less section
// headers ("Memory:") are skipped rather than shadowing the real field.
// Missing fields yield "".
func ExtractField(text, label string) string {
	want := strings.ToLower(label)
	for _, line := range strings.Split(text, "\n") {
		k, v, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(k)), want) {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// RegistryField pulls a quoted value out of ioreg output, which prints
// properties as `"Key" = "value"` (or `"Key" = <value>` for non-strings).
func RegistryField(text, key string) string {
	needle := `"` + key + `"`
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, needle) {
			continue
		}
		_, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		return strings.Trim(strings.TrimSpace(v), `"<>`)
	}
	return ""
}

// ContainsFold is a case-insensitive strings.Contains.
func ContainsFold(text, needle string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(needle))
}
