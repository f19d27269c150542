package stress

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/macaudit/macaudit/internal/app/ui"
	"github.com/macaudit/macaudit/internal/ledger"
	"github.com/macaudit/macaudit/internal/messages"
)

// Console is the operator interaction the stress test needs: flush stale
// input, ask permission, and poll for the early-stop keystroke.
type Console interface {
	Flush()
	Confirm(prompt string) (ui.Answer, error)
	WaitKey(d time.Duration) bool
}

// Options sizes the load. Command exists so tests can stand in a harmless
// process for the hot loop.
type Options struct {
	Duration time.Duration
	Workers  int           // one per CPU when zero
	Grace    time.Duration // SIGTERM-to-SIGKILL window, 2s when zero
	Command  []string      // defaults to {"yes"}
}

type worker struct {
	cmd  *exec.Cmd
	done chan struct{}
}

// Runner owns the load processes. Every exit path funnels through Drain,
// which must leave nothing running no matter how many times or from which
// goroutine it is called.
type Runner struct {
	opts Options

	mu      sync.Mutex
	workers []*worker
}

func New(opts Options) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Grace <= 0 {
		opts.Grace = 2 * time.Second
	}
	if len(opts.Command) == 0 {
		opts.Command = []string{"yes"}
	}
	return &Runner{opts: opts}
}

// Run asks permission, applies full CPU load for the configured duration,
// and records the outcome. Declining is not a defect; it queues a manual
// check instead.
func (r *Runner) Run(led *ledger.Ledger, con Console) {
	con.Flush()
	answer, err := con.Confirm(messages.GetUIMessage("AskStressTest"))
	if err != nil || answer != ui.AnswerYes {
		led.Record(ledger.SeverityInfo, "Stress test skipped")
		led.RecordManualCheck("Run the machine under full load for a minute and confirm it neither shuts down nor throttles audibly hard")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	go func() {
		<-ctx.Done()
		r.Drain()
	}()
	defer r.Drain()

	if err := r.spawn(); err != nil {
		led.Record(ledger.SeverityWarn, fmt.Sprintf("Could not start the load processes: %v", err))
		return
	}

	for s := int(r.opts.Duration.Seconds()); s > 0; s-- {
		select {
		case <-ctx.Done():
			fmt.Println()
			led.Record(ledger.SeverityWarn, "Stress test interrupted by a signal; load processes were cleaned up")
			return
		default:
		}
		fmt.Print(messages.GetUIMessage("StressCountdown", s))
		if con.WaitKey(time.Second) {
			fmt.Println()
			r.Drain()
			led.Record(ledger.SeverityInfo, messages.GetUIMessage("StressStopped"))
			led.RecordManualCheck("Re-run the full-length stress test before purchase")
			return
		}
	}
	fmt.Println()
	r.Drain()
	fmt.Println(messages.GetUIMessage("StressDone"))
	led.Record(ledger.SeverityPass,
		fmt.Sprintf("Machine held %d workers at full load for %ds without shutting down", r.opts.Workers, int(r.opts.Duration.Seconds())))
}

// spawn starts one load process per worker, each in its own process group
// so the drain can signal the group and reach any children.
func (r *Runner) spawn() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer devnull.Close()

	for i := 0; i < r.opts.Workers; i++ {
		cmd := exec.Command(r.opts.Command[0], r.opts.Command[1:]...)
		cmd.Stdout = devnull
		cmd.Stderr = devnull
		cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
		if err := cmd.Start(); err != nil {
			r.drainLocked()
			return err
		}
		w := &worker{cmd: cmd, done: make(chan struct{})}
		go func() {
			cmd.Wait()
			close(w.done)
		}()
		r.workers = append(r.workers, w)
	}
	return nil
}

// Drain terminates every load process and waits for it. Safe to call from
// any goroutine, any number of times; the registry is emptied before the
// first signal is sent so concurrent callers cannot double-signal.
func (r *Runner) Drain() {
	r.mu.Lock()
	workers := r.workers
	r.workers = nil
	r.mu.Unlock()
	drain(workers, r.opts.Grace)
}

func (r *Runner) drainLocked() {
	workers := r.workers
	r.workers = nil
	drain(workers, r.opts.Grace)
}

func drain(workers []*worker, grace time.Duration) {
	if len(workers) == 0 {
		return
	}
	for _, w := range workers {
		unix.Kill(-w.cmd.Process.Pid, unix.SIGTERM)
	}
	deadline := time.Now().Add(grace)
	for _, w := range workers {
		select {
		case <-w.done:
		case <-time.After(time.Until(deadline)):
			unix.Kill(-w.cmd.Process.Pid, unix.SIGKILL)
			<-w.done
		}
	}
}

// WorkerCount reports how many load processes are registered.
func (r *Runner) WorkerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workers)
}
