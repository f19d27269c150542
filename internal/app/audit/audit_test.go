package audit

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/probe"
)

func scriptedCache(outputs map[string]string) *acquire.Cache {
	runner := func(_ context.Context, name string, args ...string) (string, error) {
		key := strings.Join(append([]string{name}, args...), " ")
		return outputs[key], nil
	}
	return acquire.NewCache(runner, time.Second)
}

func TestBuildSnapshotScrapesTextPayload(t *testing.T) {
	cache := scriptedCache(map[string]string{
		"system_profiler SPHardwareDataType": "Model Name: MacBook Pro\nModel Identifier: MacBookPro18,3\nChip: Apple M1 Pro\nMemory: 16 GB\nSerial Number (system): C02TEST",
	})
	snap := buildSnapshot(cache, &probe.Capabilities{OSVersion: "15.3", Arch: "apple-silicon", FormFactor: "laptop"})

	if snap.ModelID != "MacBookPro18,3" || snap.Serial != "C02TEST" {
		t.Fatalf("snapshot identity wrong: %+v", snap)
	}
	if snap.Memory != "16 GB" {
		t.Fatalf("Memory = %q", snap.Memory)
	}
}

func TestBuildSnapshotFillsMemoryFromMemoryInventory(t *testing.T) {
	cache := scriptedCache(map[string]string{
		"system_profiler SPHardwareDataType": "Model Name: Mac mini\nModel Identifier: Macmini8,1\nSerial Number (system): C07TEST",
		"system_profiler SPMemoryDataType":   "Memory:\n\n      Memory: 16 GB\n      Type: LPDDR5",
	})
	snap := buildSnapshot(cache, &probe.Capabilities{OSVersion: "14.6"})

	if snap.Memory != "16 GB" {
		t.Fatalf("Memory = %q, want the memory inventory fallback", snap.Memory)
	}
}
