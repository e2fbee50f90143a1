// Package debuglog keeps the session-only debug trace shown next to the auth
// forms. Lines are human readable and never persisted.
package debuglog

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	timeLayout = "15:04:05"
	separator  = " — "
	maxLines   = 200
)

// Trace is an in-memory line sink. It satisfies zapcore.WriteSyncer so a
// zap logger can write into it.
type Trace struct {
	mu    sync.Mutex
	lines []string
	now   func() time.Time
}

func NewTrace() *Trace {
	return &Trace{now: time.Now}
}

// Add appends a "15:04:05 — msg" line stamped with the current time.
func (t *Trace) Add(msg string) {
	t.append(t.now().Format(timeLayout) + separator + msg)
}

// Write takes one encoded zap entry per call.
func (t *Trace) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			t.append(line)
		}
	}
	return len(p), nil
}

func (t *Trace) Sync() error { return nil }

func (t *Trace) append(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, line)
	if len(t.lines) > maxLines {
		t.lines = t.lines[len(t.lines)-maxLines:]
	}
}

// Lines returns a copy of the trace, oldest first.
func (t *Trace) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

func (t *Trace) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = nil
}

// NewLogger returns a zap logger whose entries land in trace as
// "15:04:05 — message" lines, structured fields appended as JSON.
func NewLogger(trace *Trace) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "ts",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: separator,
	})
	core := zapcore.NewCore(enc, trace, zapcore.DebugLevel)
	return zap.New(core)
}
