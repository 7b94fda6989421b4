package cli

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type renderProgressReporter struct {
	enabled bool
	label   string
	total   int
	start   time.Time
	spinner int
	lastLen int
}

func newRenderProgressReporter(label string, total int, asJSON bool) *renderProgressReporter {
	stat, err := os.Stderr.Stat()
	enabled := err == nil && (stat.Mode()&os.ModeCharDevice) != 0 && !asJSON
	return &renderProgressReporter{
		enabled: enabled,
		label:   label,
		total:   total,
		start:   time.Now(),
	}
}

func (r *renderProgressReporter) Update(page string, count int) {
	if !r.enabled {
		return
	}
	frames := [4]string{"-", "\\", "|", "/"}
	frame := frames[r.spinner%len(frames)]
	r.spinner++
	page = strings.TrimSpace(page)
	if len(page) > 88 {
		page = "..." + page[len(page)-85:]
	}

	status := fmt.Sprintf("%s %s %d writing %s", frame, r.label, count, page)
	if r.total > 0 {
		status = fmt.Sprintf("%s %s %d/%d writing %s", frame, r.label, count, r.total, page)
	}
	r.printStatus(status)
}

func (r *renderProgressReporter) Done(count int) {
	if !r.enabled {
		return
	}
	elapsed := time.Since(r.start).Round(time.Millisecond)
	status := fmt.Sprintf("%s complete (%d files in %s)", r.label, count, elapsed)
	r.printStatus(status)
	fmt.Fprintln(os.Stderr)
}

func (r *renderProgressReporter) printStatus(status string) {
	if r.lastLen > len(status) {
		status = status + strings.Repeat(" ", r.lastLen-len(status))
	}
	r.lastLen = len(status)
	fmt.Fprintf(os.Stderr, "\r%s", status)
}
