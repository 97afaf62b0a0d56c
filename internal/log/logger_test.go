package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("ZeroValueNotInitialized", func(t *testing.T) {
		assert.False(t, Logger{}.IsInitialized())
		assert.True(t, Discard().IsInitialized())
	})

	t.Run("InfoNsWritesJSON", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf, false)
		logger.InfoNs(NsDatabase, "database opened", KV{"name": ":memory:"})

		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "database opened", entry["msg"])
		assert.Equal(t, NsDatabase, entry["ns"])
		assert.Equal(t, ":memory:", entry["name"])
	})

	t.Run("DebugHiddenUnlessEnabled", func(t *testing.T) {
		buf := &bytes.Buffer{}
		NewLogger(buf, false).Debug("hidden")
		assert.Empty(t, buf.String())

		NewLogger(buf, true).Debug("shown")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
	})
}
