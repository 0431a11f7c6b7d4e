// Package trace provides the elapsed-clock logger the engine reports
// through. It is injected rather than global so the engine stays testable
// without capturing process-wide output.
package trace

import (
	"fmt"
	"io"
	"time"
)

// Logger receives walk events. Implementations must be safe to call with a
// nil-format argument list.
type Logger interface {
	Logf(format string, args ...any)
}

type nop struct{}

func (nop) Logf(string, ...any) {}

// Nop returns a logger that discards everything.
func Nop() Logger { return nop{} }

// Clock writes lines prefixed with wall-clock time elapsed since New was
// called, formatted [H:MM:SS].
type Clock struct {
	w     io.Writer
	start time.Time
	now   func() time.Time
}

// New returns a Clock logging to w with the elapsed origin captured now.
func New(w io.Writer) *Clock {
	return &Clock{w: w, start: time.Now(), now: time.Now}
}

// NewAt returns a Clock with an explicit origin and clock, for tests.
func NewAt(w io.Writer, start time.Time, now func() time.Time) *Clock {
	return &Clock{w: w, start: start, now: now}
}

func (c *Clock) Logf(format string, args ...any) {
	d := c.now().Sub(c.start)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	fmt.Fprintf(c.w, "[%d:%02d:%02d] %s\n", h, m, s, fmt.Sprintf(format, args...))
}
