package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorLogger(t *testing.T) {
	t.Run("rejects empty prefix", func(t *testing.T) {
		_, err := New("", "\033[32m", &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("rejects nil writer", func(t *testing.T) {
		_, err := New("APP", "\033[32m", nil)
		assert.Error(t, err)
	})

	t.Run("writes prefixed leveled lines", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", "\033[36m", &buf)
		assert.NoError(t, err)

		l.Info("built")
		l.Warning("slow build")
		l.Error("boom")

		out := buf.String()
		assert.Contains(t, out, "[MAZE]")
		assert.Contains(t, out, "[INFO] built")
		assert.Contains(t, out, "[WARNING] slow build")
		assert.Contains(t, out, "[ERROR] boom")
	})
}
