package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuffer(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return buf
}

func TestDebug_SilentByDefault(t *testing.T) {
	buf := withBuffer(t, false)

	Debug("hidden %d", 1)
	Info("hidden")
	Warn("hidden")

	assert.Empty(t, buf.String())
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	buf := withBuffer(t, true)

	Debug("fetch %s", "Paris")
	Info("sections: %d", 3)
	Warn("slow")

	assert.True(t, IsVerbose())
	assert.Equal(t, "[DEBUG] fetch Paris\n[INFO] sections: 3\n[WARN] slow\n", buf.String())
}
