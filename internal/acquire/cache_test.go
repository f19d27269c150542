package acquire

import (
	"context"
	"strings"
	"testing"
	"time"
)

func scriptedRunner(t *testing.T, outputs map[string]string, count map[string]int) Runner {
	t.Helper()
	return func(_ context.Context, name string, args ...string) (string, error) {
		key := strings.Join(append([]string{name}, args...), " ")
		count[key]++
		return outputs[key], nil
	}
}

func TestGetMemoizesValidPrimary(t *testing.T) {
	count := make(map[string]int)
	src := Source{
		Name:     "hardware",
		Cmd:      []string{"system_profiler", "SPHardwareDataType"},
		Marker:   "Serial Number",
		Fallback: []string{"sysctl", "-n", "hw.model"},
	}
	outputs := map[string]string{
		"system_profiler SPHardwareDataType": "Model Identifier: Mac14,9\nSerial Number (system): C02TEST",
	}
	c := NewCache(scriptedRunner(t, outputs, count), time.Second)

	first := c.Get(src)
	second := c.Get(src)
	if first != second {
		t.Fatalf("repeat read differs: %q vs %q", first, second)
	}
	if !strings.Contains(first, "C02TEST") {
		t.Fatalf("unexpected payload %q", first)
	}
	if count["system_profiler SPHardwareDataType"] != 1 {
		t.Fatalf("primary ran %d times, want 1", count["system_profiler SPHardwareDataType"])
	}
	if count["sysctl -n hw.model"] != 0 {
		t.Fatal("fallback ran despite valid primary")
	}
}

func TestGetFallsBackOnceOnInvalidPrimary(t *testing.T) {
	count := make(map[string]int)
	src := Source{
		Name:     "enrollment",
		Cmd:      []string{"profiles", "status", "-type", "enrollment"},
		Marker:   "Enrolled",
		Fallback: []string{"profiles", "list"},
	}
	outputs := map[string]string{
		"profiles status -type enrollment": "",
		"profiles list":                    "There are no configuration profiles installed",
	}
	c := NewCache(scriptedRunner(t, outputs, count), time.Second)

	got := c.Get(src)
	c.Get(src)
	c.Get(src)
	if got != outputs["profiles list"] {
		t.Fatalf("got %q, want fallback output", got)
	}
	if count["profiles status -type enrollment"] != 1 || count["profiles list"] != 1 {
		t.Fatalf("counts = %v, want one primary and one fallback", count)
	}
}

func TestGetPrefersValidatedFallbackOverUnvalidatedPrimary(t *testing.T) {
	count := make(map[string]int)
	src := Source{
		Name:     "boot-disk",
		Cmd:      []string{"diskutil", "info", "disk0"},
		Marker:   "SMART",
		Fallback: []string{"diskutil", "info", "/"},
	}
	outputs := map[string]string{
		"diskutil info disk0": "Could not find disk: disk0",
		"diskutil info /":     "Device Identifier: disk3s1\nSMART Status: Verified",
	}
	c := NewCache(scriptedRunner(t, outputs, count), time.Second)

	if got := c.Get(src); !strings.Contains(got, "SMART Status") {
		t.Fatalf("got %q, want validated fallback", got)
	}
}

func TestGetKeepsUnvalidatedPrimaryWhenFallbackEmpty(t *testing.T) {
	count := make(map[string]int)
	src := Source{
		Name:     "hardware",
		Cmd:      []string{"system_profiler", "SPHardwareDataType"},
		Marker:   "Serial Number",
		Fallback: []string{"sysctl", "-n", "hw.model"},
	}
	outputs := map[string]string{
		"system_profiler SPHardwareDataType": "Model Identifier: Mac14,9",
		"sysctl -n hw.model":                 "",
	}
	c := NewCache(scriptedRunner(t, outputs, count), time.Second)

	if got := c.Get(src); got != outputs["system_profiler SPHardwareDataType"] {
		t.Fatalf("got %q, want unvalidated primary kept", got)
	}
}

func TestGetMemoizesPermanentAbsence(t *testing.T) {
	count := make(map[string]int)
	src := Source{
		Name:     "camera",
		Cmd:      []string{"system_profiler", "SPCameraDataType"},
		Marker:   "Camera",
		Fallback: []string{"ioreg", "-rc", "AppleCamera"},
	}
	c := NewCache(scriptedRunner(t, map[string]string{}, count), time.Second)

	if got := c.Get(src); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
	c.Get(src)
	if count["system_profiler SPCameraDataType"] != 1 || count["ioreg -rc AppleCamera"] != 1 {
		t.Fatalf("counts = %v, want exactly one of each", count)
	}
}

func TestExtractField(t *testing.T) {
	text := "Memory:\n\n  Model Name: MacBook Pro\n  Serial Number (system): C02ABC\n  Memory: 16 GB\n"
	cases := []struct {
		label, want string
	}{
		{"Model Name", "MacBook Pro"},
		{"Serial Number", "C02ABC"},
		// The value-less "Memory:" section header must not shadow the field.
		{"Memory", "16 GB"},
		{"Battery", ""},
	}
	for _, tc := range cases {
		if got := ExtractField(text, tc.label); got != tc.want {
			t.Errorf("ExtractField(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestRunDetachedBoundedWait(t *testing.T) {
	out, ok := RunDetached(5*time.Second, "echo", "detached result")
	if !ok || !strings.Contains(out, "detached result") {
		t.Fatalf("got %q ok=%v", out, ok)
	}

	start := time.Now()
	_, ok = RunDetached(200*time.Millisecond, "sleep", "10")
	if ok {
		t.Fatal("expired query reported success")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("wait was not bounded: %v", elapsed)
	}
}
