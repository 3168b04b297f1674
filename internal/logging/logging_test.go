package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Verbose: true, Output: &buf})

	log.Debug("processed", "path", "src/dev/a.lsl", "changed", true)

	out := buf.String()
	assert.Contains(t, out, "processed")
	assert.Contains(t, out, "path=src/dev/a.lsl")
	assert.Contains(t, out, "changed=true")
}

func TestNewQuietDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Output: &buf})

	log.Debug("hidden")
	log.Info("hidden too")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
