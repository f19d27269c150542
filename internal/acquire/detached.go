package acquire

import (
	"io"
	"os"
	"os/exec"
	"time"
)

// RunDetached starts argv with its output streamed into a named temporary
// file and waits up to timeout for it to finish. If the wait expires the
// process is killed and both the result and the backing file are discarded;
// the caller sees the same "unavailable" shape as any other absent source.
func RunDetached(timeout time.Duration, name string, args ...string) (string, bool) {
	tmp, err := os.CreateTemp("", "macaudit-query-*")
	if err != nil {
		return "", false
	}
	path := tmp.Name()
	defer os.Remove(path)

	cmd := exec.Command(name, args...)
	cmd.Stdout = tmp
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		tmp.Close()
		return "", false
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		tmp.Close()
		if err != nil {
			return "", false
		}
	case <-time.After(timeout):
		_ = cmd.Process.Kill()
		<-done
		tmp.Close()
		return "", false
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(raw), true
}
