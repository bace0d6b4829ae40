package interactive

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daytime-project/daytime-go/pkg/log"
	"github.com/daytime-project/daytime-go/pkg/wallclock"
	"github.com/daytime-project/daytime-go/pkg/wallclock/mocks"
)

type recordingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recordingLogger) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// script feeds lines to the shell and returns the output of each line.
func script(t *testing.T, s *Shell, lines ...string) []string {
	t.Helper()
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		var buf bytes.Buffer
		require.True(t, s.Execute(line, &buf), "line %q ended the session", line)
		out = append(out, buf.String())
	}
	return out
}

func TestExpressions(t *testing.T) {
	events := &recordingLogger{}
	s := newShell(Config{Events: events, SessionID: "session-1"})

	out := script(t, s,
		"time 23:30:0 + duration 1:0:0",
		"d 1:0:0 <=> d 2:0:0",
		"time 1:0:0 < duration 1:0:0",
	)

	assert.Equal(t, "00:30:00\n", out[0])
	assert.Equal(t, "-1\n", out[1])
	assert.True(t, strings.HasPrefix(out[2], "Error: "), out[2])

	require.Len(t, events.events, 3)
	for i, e := range events.events {
		assert.Equal(t, log.SourceREPL, e.Source)
		assert.Equal(t, "session-1", e.RunID)
		assert.Equal(t, fmt.Sprintf("repl-%d", i+1), e.Record.Name)
	}
	assert.Equal(t, log.CategoryError, events.events[2].Category)
}

func TestLastResult(t *testing.T) {
	s := newShell(Config{})

	out := script(t, s,
		"last",
		"_ + duration 1:0:0",
		"time 22:0:0 + duration 3:0:0",
		"_ - time 0:15:0",
		"last",
		"time 1:0:0 == time 1:0:0",
		"last",
	)

	assert.Equal(t, "No result yet\n", out[0])
	assert.Equal(t, "Error: no previous result for _\n", out[1])
	assert.Equal(t, "01:00:00\n", out[2])
	assert.Equal(t, "00:45:00\n", out[3])
	assert.Equal(t, "time 00:45:00\n", out[4])
	assert.Equal(t, "true\n", out[5])
	assert.Equal(t, "time 00:45:00\n", out[6], "comparisons do not replace the last value")
}

func TestClockCommands(t *testing.T) {
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC))

	s := newShell(Config{Clock: clock})
	out := script(t, s, "now", "until 7:30:0", "since 17:45:0", "until", "until 25:0:0")

	assert.Equal(t, "18:00:00\n", out[0])
	assert.Equal(t, "13:30:00 until 07:30:00 (now 18:00:00)\n", out[1])
	assert.Equal(t, "00:15:00 since 17:45:00 (now 18:00:00)\n", out[2])
	assert.Equal(t, "Usage: until <h:mm:ss>\n", out[3])
	assert.Contains(t, out[4], "Error: ")
}

func TestParseCommand(t *testing.T) {
	s := newShell(Config{Clock: wallclock.Fixed(time.Time{})})

	out := script(t, s, "parse time 9:5:7", "p d 100:0:0", "parse time", "parse time 9:60:0")

	assert.Contains(t, out[0], "time 09:05:07")
	assert.Contains(t, out[1], "duration 100:00:00")
	assert.Equal(t, "Usage: parse <time|duration> <h:mm:ss>\n", out[2])
	assert.Contains(t, out[3], "minutes must be within 0-59")
}

func TestMiscCommands(t *testing.T) {
	s := newShell(Config{})

	out := script(t, s, "", "   ", "# comment", "help")
	assert.Empty(t, out[0])
	assert.Empty(t, out[1])
	assert.Empty(t, out[2])
	assert.Contains(t, out[3], "daytime Commands:")

	for _, quit := range []string{"quit", "exit", "q", "QUIT"} {
		assert.False(t, s.Execute(quit, &bytes.Buffer{}), quit)
	}
}

func TestDefaults(t *testing.T) {
	s := newShell(Config{})
	assert.Equal(t, "daytime> ", s.cfg.Prompt)
	assert.Len(t, s.SessionID(), 36)
	assert.IsType(t, wallclock.System{}, s.cfg.Clock)
}
