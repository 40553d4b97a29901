package logger

import (
	"bytes"
	"io"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	entries []*LogEntry
}

func (l *recordingLogger) Log(entry *LogEntry) {
	l.log(entry)
}

func (l *recordingLogger) log(entry *LogEntry) {
	l.entries = append(l.entries, entry)
}

func TestMetaSuffix(t *testing.T) {
	t.Run("nil meta has no suffix", func(t *testing.T) {
		var m Meta
		assert.Equal(t, "", m.stringSuffix())
	})

	t.Run("well known properties are kept in order", func(t *testing.T) {
		m := Meta{
			"path":   "/orders",
			"method": "GET",
			"other":  "ignored",
		}
		assert.Equal(t, " (GET /orders)", m.stringSuffix())
	})
}

func TestFileLoggerWritesJSONLines(t *testing.T) {
	buf := new(bytes.Buffer)

	l := NewFileLogger("test")
	l.startWithWriter(buf, io.NopCloser(nil))

	src := NewSource("QUERY", l)
	src.Info("filters applied", Meta{"path": "/orders/search"})
	src.Error("query failed", "unknown key", nil)

	require.NoError(t, l.Stop())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first LogEntry
	require.NoError(t, jsoniter.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "INFO", first.Level)
	assert.Equal(t, "QUERY", first.Source)
	assert.Equal(t, "filters applied", first.Message)
	assert.Equal(t, "warehouse", first.Service)
	assert.Empty(t, first.Error)

	var second LogEntry
	require.NoError(t, jsoniter.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "ERROR", second.Level)
	assert.Equal(t, "unknown key", second.Error)
}

func TestFileLoggerForwarding(t *testing.T) {
	l := NewFileLogger("test")
	rec := new(recordingLogger)

	require.NoError(t, l.NewForwarding(rec))
	assert.Error(t, l.NewForwarding(rec), "duplicate forwarding must be rejected")
	assert.Error(t, l.NewForwarding(l), "forwarding to self must be rejected")

	src := NewSource("TEST", l)
	src.Warning("not started yet", nil)

	require.Len(t, rec.entries, 1)
	assert.Equal(t, "WARNING", rec.entries[0].Level)

	require.NoError(t, l.RemoveForwarding(rec))
	assert.Error(t, l.RemoveForwarding(rec))

	src.Warning("dropped", nil)
	assert.Len(t, rec.entries, 1)
}

func TestDebugAndTraceToggles(t *testing.T) {
	l := NewFileLogger("test")
	rec := new(recordingLogger)
	require.NoError(t, l.NewForwarding(rec))

	src := NewSource("TEST", l)

	Debug.Store(false)
	Trace.Store(false)
	src.Debug("hidden", nil)
	src.Trace("hidden", nil)
	assert.Empty(t, rec.entries)

	Debug.Store(true)
	Trace.Store(true)
	defer Debug.Store(false)
	defer Trace.Store(false)

	src.Debug("shown", nil)
	src.Trace("shown", nil)
	assert.Len(t, rec.entries, 2)
}

func TestStopWithoutStart(t *testing.T) {
	l := NewFileLogger("test")
	assert.Error(t, l.Stop())
}
