package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLogger_FormatsAndFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo, true)

	log.Debug("hidden %d", 1)
	log.Info("RecordPayment: booking id=%d", 42)
	log.Warn("GetByID: booking id=%d not found", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "RecordPayment: booking id=42")
	assert.Contains(t, out, "GetByID: booking id=7 not found")
}

func TestLogger_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo, true)

	code := -1
	log.exit = func(c int) { code = c }

	log.Fatal("boom: %v", "db down")
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "boom: db down")
}
