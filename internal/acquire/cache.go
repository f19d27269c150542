package acquire

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"time"
)

// Runner executes one external command and returns its stdout. Injected so
// tests can script upstream output without a macOS host.
type Runner func(ctx context.Context, name string, args ...string) (string, error)

// Source names one upstream inventory, how to query it, the marker that
// proves the payload is the real thing (plain non-emptiness is not enough),
// and the single narrower fallback tried when validation fails.
type Source struct {
	Name     string
	Cmd      []string
	Marker   string
	Fallback []string
}

// Valid reports whether out looks like a genuine payload for this source.
func (s Source) Valid(out string) bool {
	t := strings.TrimSpace(out)
	if t == "" {
		return false
	}
	if s.Marker == "" {
		return true
	}
	return ContainsFold(t, s.Marker)
}

// Cache fetches each source at most once per run. Repeated failure is
// permanent absence: callers get "" and must render the slot as
// unavailable, never as an error.
type Cache struct {
	runner  Runner
	timeout time.Duration
	entries map[string]string

	// Log, when set, receives one line per real acquisition.
	Log func(format string, args ...any)
}

// NewCache builds a cache around an injected runner.
func NewCache(runner Runner, timeout time.Duration) *Cache {
	return &Cache{
		runner:  runner,
		timeout: timeout,
		entries: make(map[string]string),
	}
}

// NewSystemCache builds a cache that shells out to the host.
func NewSystemCache(timeout time.Duration) *Cache {
	return NewCache(execRunner, timeout)
}

// Get returns the memoized text for src, querying it on first use. On a
// validation miss it tries the fallback exactly once and memoizes whichever
// result is non-empty, preferring the validated one. No further retries.
func (c *Cache) Get(src Source) string {
	if v, ok := c.entries[src.Name]; ok {
		return v
	}

	primary := c.run(src.Cmd)
	if src.Valid(primary) {
		c.logf("source %s: %d bytes (primary)", src.Name, len(primary))
		c.entries[src.Name] = primary
		return primary
	}

	var fallback string
	if len(src.Fallback) > 0 {
		fallback = c.run(src.Fallback)
	}

	var chosen string
	switch {
	case src.Valid(fallback):
		chosen = fallback
		c.logf("source %s: %d bytes (fallback)", src.Name, len(fallback))
	case strings.TrimSpace(primary) != "":
		chosen = primary
		c.logf("source %s: %d bytes (primary, unvalidated)", src.Name, len(primary))
	case strings.TrimSpace(fallback) != "":
		chosen = fallback
		c.logf("source %s: %d bytes (fallback, unvalidated)", src.Name, len(fallback))
	default:
		c.logf("source %s: unavailable", src.Name)
	}
	c.entries[src.Name] = chosen
	return chosen
}

// RunQuick performs a cheap one-off query outside the cache, for probes that
// are phase-local and not worth a named slot.
func (c *Cache) RunQuick(name string, args ...string) string {
	return c.run(append([]string{name}, args...))
}

func (c *Cache) run(argv []string) string {
	if len(argv) == 0 {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	out, err := c.runner(ctx, argv[0], argv[1:]...)
	if err != nil && strings.TrimSpace(out) == "" {
		return ""
	}
	return out
}

func (c *Cache) logf(format string, args ...any) {
	if c.Log != nil {
		c.Log(format, args...)
	}
}

func execRunner(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = io.Discard
	err := cmd.Run()
	return out.String(), err
}
