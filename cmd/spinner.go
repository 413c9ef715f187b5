package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// runOp executes op, rendering a spinner when pnpm's own output is
// silenced and the terminal is interactive. When pnpm output streams
// live, the spinner would fight it for the cursor, so op runs bare.
func runOp(label string, silent bool, op func() error) error {
	if !silent || !isatty.IsTerminal(os.Stdout.Fd()) {
		return op()
	}
	sp := newSpinner(label)
	sp.start()
	err := op()
	sp.stop(err)
	return err
}

// spinner renders a rotating indicator with a label that updates in-place
// while an operation is running.
type spinner struct {
	mu    sync.Mutex
	out   io.Writer
	label string
	done  chan struct{}
}

func newSpinner(label string) *spinner {
	return &spinner{out: os.Stdout, label: label, done: make(chan struct{})}
}

// start launches the render loop in a goroutine.
func (s *spinner) start() {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

	go func() {
		i := 0
		for {
			select {
			case <-s.done:
				return
			case <-time.After(80 * time.Millisecond):
				s.mu.Lock()
				label := s.label
				s.mu.Unlock()

				frame := frames[i%len(frames)]
				i++

				// \r returns to column 0; \033[K clears to end of line.
				fmt.Fprintf(s.out, "\r\033[K  %s %s", frame, label)
			}
		}
	}()
}

// stop halts the spinner and clears its line. On success the caller
// prints the single completion line; only failures get a mark here.
func (s *spinner) stop(err error) {
	close(s.done)
	time.Sleep(90 * time.Millisecond) // let last frame finish

	s.mu.Lock()
	label := s.label
	s.mu.Unlock()

	fmt.Fprint(s.out, "\r\033[K")
	if err != nil {
		bad := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		fmt.Fprintf(s.out, "  %s %s\n", bad.Render("✗"), label)
	}
}

// printDone prints the styled completion line for non-spinner runs.
func printDone(label string, d time.Duration) {
	ok := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	fmt.Printf("\n%s%s\n", ok.Render("✓ "+label), dim.Render(fmt.Sprintf("  (%s)", d.Round(100*time.Millisecond))))
}
