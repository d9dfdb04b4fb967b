package obs

import (
	"fmt"
	"sync"
	"sync/atomic"
)

type entry struct {
	level Level
	msg   string
}

// AsyncLogger formats on the caller's goroutine and hands the line to a
// background writer. When the buffer is full the line is dropped.
type AsyncLogger struct {
	next    Logger
	ch      chan entry
	done    chan struct{}
	once    sync.Once
	dropped atomic.Uint64
}

// Async wraps next so that Logf never waits on the underlying sink.
func Async(next Logger, size int) *AsyncLogger {
	if next == nil {
		next = NopLogger{}
	}
	if size <= 0 {
		size = 256
	}
	a := &AsyncLogger{next: next, ch: make(chan entry, size), done: make(chan struct{})}
	go a.run()
	return a
}

func (a *AsyncLogger) run() {
	defer close(a.done)
	for e := range a.ch {
		a.next.Logf(e.level, "%s", e.msg)
	}
}

func (a *AsyncLogger) Logf(level Level, format string, args ...interface{}) {
	e := entry{level: level, msg: fmt.Sprintf(format, args...)}
	defer func() {
		// send on closed channel after Close
		if recover() != nil {
			a.dropped.Add(1)
		}
	}()
	select {
	case a.ch <- e:
	default:
		a.dropped.Add(1)
	}
}

// Dropped reports how many lines were discarded.
func (a *AsyncLogger) Dropped() uint64 { return a.dropped.Load() }

// Close flushes pending lines and stops the writer goroutine.
func (a *AsyncLogger) Close() {
	a.once.Do(func() { close(a.ch) })
	<-a.done
}
