package trace

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestClock_ElapsedPrefix(t *testing.T) {
	var buf bytes.Buffer
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fake := start
	c := NewAt(&buf, start, func() time.Time { return fake })

	c.Logf("starting scan of %s", "/srv")
	fake = start.Add(3*time.Minute + 7*time.Second)
	c.Logf("done")
	fake = start.Add(time.Hour + 2*time.Second)
	c.Logf("late")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "[0:00:00] starting scan of /srv") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[0:03:07] done") {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "[1:00:02] late") {
		t.Fatalf("unexpected third line: %q", lines[2])
	}
}

func TestNop_Discards(t *testing.T) {
	// must not panic, even with mismatched args
	Nop().Logf("ignored %s")
}
