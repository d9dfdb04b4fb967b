package obs

import (
	"bytes"
	"log"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": Debug, "LOG": Log, "info": Info, " warn ": Warn, "error": Error}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q)=%v,%v want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseLevel("loud"); ok {
		t.Fatal("expected unknown level to be rejected")
	}
}

func TestStdLoggerMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := StdLogger{L: log.New(&buf, "", 0), Min: Info}
	l.Logf(Debug, "hidden")
	l.Logf(Warn, "shown %d", 1)
	if got := buf.String(); got != "[WARN] shown 1\n" {
		t.Fatalf("output=%q", got)
	}
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelLog})
	l := SlogLogger{L: slog.New(h)}
	l.Logf(Debug, "hidden")
	l.Logf(Log, "route %s", "GET /")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked: %q", out)
	}
	if !strings.Contains(out, `msg="route GET /"`) {
		t.Fatalf("output=%q", out)
	}
}

type recordLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordLogger) Logf(level Level, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level.String()+" "+format)
}

func TestAsyncLoggerFlushesOnClose(t *testing.T) {
	rec := &recordLogger{}
	a := Async(rec, 8)
	a.Logf(Info, "one")
	a.Logf(Error, "two")
	a.Close()
	a.Logf(Info, "after close")

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.lines) != 2 {
		t.Fatalf("lines=%v", rec.lines)
	}
	if rec.lines[1] != "ERROR %s" {
		t.Fatalf("second line=%q", rec.lines[1])
	}
	if a.Dropped() != 1 {
		t.Fatalf("dropped=%d", a.Dropped())
	}
}
