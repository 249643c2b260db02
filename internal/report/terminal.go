// Package report prints runner results for a human at a terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/brettbar/leetdrill/internal/runner"
)

var (
	passColor = lipgloss.Color("#8BC34A")
	failColor = lipgloss.Color("#e53935")
)

// Terminal writes one block per case and a closing "passed x/y" line.
type Terminal struct {
	mu   sync.Mutex
	w    io.Writer
	pass func(...string) string
	fail func(...string) string
}

func NewTerminal(w io.Writer, color bool) *Terminal {
	t := &Terminal{w: w, pass: plain, fail: plain}
	if color {
		r := lipgloss.NewRenderer(w)
		t.pass = r.NewStyle().Foreground(passColor).Render
		t.fail = r.NewStyle().Foreground(failColor).Render
	}
	return t
}

func plain(strs ...string) string { return strings.Join(strs, " ") }

func (t *Terminal) Case(problem string, r runner.Result) {
	t.mu.Lock()
	defer t.mu.Unlock()

	status := t.fail("[FAIL] " + caseName(problem, r))
	if r.Passed {
		status = t.pass("[PASS] " + caseName(problem, r))
	}
	fmt.Fprintln(t.w, status)
	fmt.Fprintf(t.w, "  input:    %s\n", r.Input)
	if r.Err != nil {
		fmt.Fprintf(t.w, "  error:    %v\n", r.Err)
	} else {
		fmt.Fprintf(t.w, "  got:      %v\n", r.Got)
	}
	fmt.Fprintf(t.w, "  expected: %v\n\n", r.Expected)
}

func (t *Terminal) Summary(s runner.Summary) {
	t.mu.Lock()
	defer t.mu.Unlock()

	paint := t.fail
	if s.OK() {
		paint = t.pass
	}
	fmt.Fprintln(t.w, paint(fmt.Sprintf("%s: passed %d/%d", s.Problem, s.Passed, s.Total)))
}

func caseName(problem string, r runner.Result) string {
	if r.Label != "" && r.Label != fmt.Sprint(r.Index) {
		return fmt.Sprintf("%s case %d (%s)", problem, r.Index, r.Label)
	}
	return fmt.Sprintf("%s case %d", problem, r.Index)
}
