package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Answer is the outcome of a single-keystroke confirmation. An unrecognized
// key is reported as-is; callers decide what ambiguity means (usually an
// info finding plus a manual-check item), it never blocks the run.
type Answer int

const (
	AnswerYes Answer = iota
	AnswerNo
	AnswerUnknown
)

// Terminal is the concrete operator interface used by the pipeline. Tests
// substitute scripted implementations of the same methods.
type Terminal struct{}

func (Terminal) Flush()                                { FlushInput() }
func (Terminal) Confirm(prompt string) (Answer, error) { return Confirm(prompt) }
func (Terminal) ReadLine(prompt string) (string, error) {
	return ReadLine(prompt)
}
func (Terminal) WaitKey(d time.Duration) bool { return WaitKey(d) }

// FlushInput discards bytes already buffered on stdin so a stale keystroke
// from an earlier prompt cannot answer the next one. Every raw read goes
// through an explicit flush first.
func FlushInput() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		return
	}
	defer unix.SetNonblock(fd, false)

	buf := make([]byte, 64)
	for {
		n, err := unix.Read(fd, buf)
		if n <= 0 || err != nil {
			return
		}
	}
}

// Confirm prompts for a single y/n keystroke. Exactly one key is read; any
// other key is AnswerUnknown. Ctrl+C surfaces as an error.
func Confirm(prompt string) (Answer, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Print(prompt + " (y/n): ")
		var input string
		fmt.Scanln(&input)
		return classifyAnswer(input), nil
	}

	FlushInput()
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return AnswerUnknown, err
	}
	defer term.Restore(fd, oldState)

	fmt.Print(prompt + " (y/n): ")

	b := make([]byte, 1)
	if _, err := os.Stdin.Read(b); err != nil {
		return AnswerUnknown, err
	}
	if b[0] == 3 { // Ctrl+C
		fmt.Print("^C\r\n")
		return AnswerUnknown, fmt.Errorf("cancelled")
	}

	fmt.Printf("%c\r\n", b[0])
	return classifyAnswer(string(b[0])), nil
}

func classifyAnswer(input string) Answer {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return AnswerYes
	case "n", "no":
		return AnswerNo
	default:
		return AnswerUnknown
	}
}

// ReadLine prompts for one free-text line (the physically read serial, for
// example). The buffer is flushed first for the same reason as Confirm.
func ReadLine(prompt string) (string, error) {
	FlushInput()
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// WaitKey waits up to d for any keystroke and consumes it. Used by the
// stress countdown's one-second polling loop; a signal interrupting the
// select simply reads as "no key".
func WaitKey(d time.Duration) bool {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		time.Sleep(d)
		return false
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		time.Sleep(d)
		return false
	}
	defer term.Restore(fd, oldState)

	tv := unix.NsecToTimeval(d.Nanoseconds())
	var rfds unix.FdSet
	rfds.Set(fd)
	n, err := unix.Select(fd+1, &rfds, nil, nil, &tv)
	if err != nil || n == 0 {
		return false
	}

	buf := make([]byte, 1)
	os.Stdin.Read(buf)
	return true
}
