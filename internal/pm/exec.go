package pm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// StdioMode is the policy for connecting a child process's standard streams.
type StdioMode int

const (
	// ModeInteractive inherits stdin and forwards the child's stdout to
	// the terminal line by line through a LineFilter; stderr passes
	// through unfiltered.
	ModeInteractive StdioMode = iota
	// ModeSilent discards all streams.
	ModeSilent
	// ModeCaptured buffers stdout and stderr into the Result, forwarding
	// nothing.
	ModeCaptured
)

// Invocation is one configured execution request for the external binary.
type Invocation struct {
	Binary string
	Args   []string
	Dir    string
	Env    []string // KEY=VALUE pairs appended after os.Environ()
	Mode   StdioMode
}

// Command returns the command line as it is echoed to the log.
func (inv Invocation) Command() string {
	return strings.Join(append([]string{inv.Binary}, inv.Args...), " ")
}

// Result is the outcome of one Invocation. Stdout/Stderr are populated in
// ModeCaptured only.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// SpawnFunc executes an Invocation. The default runs a real process via
// Invoker; tests substitute a fake that records argument vectors.
type SpawnFunc func(inv Invocation) (*Result, error)

// Invoker spawns package manager processes and routes their output. The
// zero value wires the real process streams.
type Invoker struct {
	Stdout io.Writer // sink for filtered interactive stdout; default os.Stdout
	Stderr io.Writer // sink for interactive stderr; default os.Stderr
	Stdin  io.Reader // interactive stdin; default os.Stdin
}

// Run executes inv to completion. A non-zero exit status is not an error
// here — it is recorded in Result.ExitCode for the caller to interpret.
// Run itself errors only when the process cannot be spawned or its pipes
// cannot be set up.
func (iv *Invoker) Run(inv Invocation) (*Result, error) {
	cmd := exec.Command(inv.Binary, inv.Args...)
	cmd.Dir = inv.Dir
	// Later duplicate keys win, so the overrides take precedence.
	cmd.Env = append(os.Environ(), inv.Env...)

	res := &Result{}

	switch inv.Mode {
	case ModeSilent:
		return finish(cmd.Run(), res)

	case ModeCaptured:
		var outBuf, errBuf bytes.Buffer
		cmd.Stdout = &outBuf
		cmd.Stderr = &errBuf
		err := cmd.Run()
		res.Stdout = outBuf.String()
		res.Stderr = errBuf.String()
		return finish(err, res)
	}

	// Interactive: stdin is handed to the child directly, but stdout is
	// intercepted so the peer-dependency block can be dropped before the
	// surviving lines reach the real terminal.
	cmd.Stdin = iv.stdin()
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%s: %w", inv.Binary, err)
	}

	done := make(chan struct{}, 2)
	go func() {
		// The filter is owned by this stream and dies with it.
		filter := &LineFilter{}
		out := iv.stdout()
		scanner := newLineScanner(stdout)
		for scanner.Scan() {
			if line := scanner.Text(); filter.Keep(line) {
				fmt.Fprintln(out, line)
			}
		}
		drainRest(scanner, stdout)
		done <- struct{}{}
	}()
	go func() {
		errOut := iv.stderrSink()
		scanner := newLineScanner(stderr)
		for scanner.Scan() {
			fmt.Fprintln(errOut, scanner.Text())
		}
		drainRest(scanner, stderr)
		done <- struct{}{}
	}()
	<-done
	<-done

	return finish(cmd.Wait(), res)
}

// newLineScanner builds a scanner sized for pnpm's occasional very long
// progress lines (the default 64 KiB cap would abort the scan).
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return scanner
}

// drainRest keeps the pipe flowing if the scanner gave up (e.g. a line
// over its buffer cap); a full pipe would block the child and wedge Wait.
func drainRest(scanner *bufio.Scanner, r io.Reader) {
	if scanner.Err() != nil {
		io.Copy(io.Discard, r)
	}
}

// finish folds a Run/Wait error into res, keeping non-zero exits as data
// rather than errors.
func finish(err error, res *Result) (*Result, error) {
	if err == nil {
		return res, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return nil, err
}

func (iv *Invoker) stdout() io.Writer {
	if iv.Stdout != nil {
		return iv.Stdout
	}
	return os.Stdout
}

func (iv *Invoker) stderrSink() io.Writer {
	if iv.Stderr != nil {
		return iv.Stderr
	}
	return os.Stderr
}

func (iv *Invoker) stdin() io.Reader {
	if iv.Stdin != nil {
		return iv.Stdin
	}
	return os.Stdin
}
