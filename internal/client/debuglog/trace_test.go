package debuglog

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTrace_AddFormatsLine(t *testing.T) {
	tr := NewTrace()
	tr.now = func() time.Time { return time.Date(2026, 1, 2, 9, 5, 7, 0, time.Local) }

	tr.Add("Attempting login")

	assert.Equal(t, []string{"09:05:07 — Attempting login"}, tr.Lines())
}

func TestTrace_Reset(t *testing.T) {
	tr := NewTrace()
	tr.Add("one")
	tr.Add("two")
	require.Len(t, tr.Lines(), 2)

	tr.Reset()
	assert.Empty(t, tr.Lines())
}

func TestTrace_Bounded(t *testing.T) {
	tr := NewTrace()
	for i := 0; i < maxLines+10; i++ {
		tr.Add(fmt.Sprintf("line %d", i))
	}

	lines := tr.Lines()
	require.Len(t, lines, maxLines)
	assert.Contains(t, lines[len(lines)-1], fmt.Sprintf("line %d", maxLines+9))
}

func TestNewLogger_WritesIntoTrace(t *testing.T) {
	tr := NewTrace()
	log := NewLogger(tr)

	log.Info("Login successful")
	log.Warn("Request failed", zap.Int("status", 401))

	lines := tr.Lines()
	require.Len(t, lines, 2)
	assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}:\d{2} — Login successful$`), lines[0])
	assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}:\d{2} — Request failed — \{"status": ?401\}$`), lines[1])
}
