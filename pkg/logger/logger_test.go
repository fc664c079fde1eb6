package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: InfoLevel, Output: &buf}).
		WithFields(map[string]interface{}{"command": "csv"})

	log.Info("SQL document written", "path", "out.sql")
	log.Debug("hidden")
	log.Error(errors.New("boom"), "Failed to write SQL")

	out := buf.String()
	assert.Contains(t, out, "SQL document written")
	assert.Contains(t, out, "command=csv")
	assert.Contains(t, out, "path=out.sql")
	assert.Contains(t, out, "error=boom")
	assert.NotContains(t, out, "hidden")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, WarnLevel, ParseLevel("warn"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}
