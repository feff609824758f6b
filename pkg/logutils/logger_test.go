package logutils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tuikit/pkg/utils"
)

func TestNew(t *testing.T) {
	t.Run("bad level", func(t *testing.T) {
		_, closer, err := New("loud", "", nil)
		require.Error(t, err)
		closer()
	})

	t.Run("console output waits in a deferred writer", func(t *testing.T) {
		var deferred utils.DeferredWriter
		l, closer, err := New("warn", "", &deferred)
		require.NoError(t, err)
		defer closer()

		l.Warn().Msg("theme replaced")

		var out bytes.Buffer
		require.NoError(t, deferred.Flush(&out))
		assert.Contains(t, out.String(), "theme replaced")
		assert.Contains(t, out.String(), "WRN")
	})

	t.Run("file is created and appended", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "logs", "tuikit.log")

		for _, msg := range []string{"first", "second"} {
			l, closer, err := New("info", file, nil)
			require.NoError(t, err)
			l.Info().Msg(msg)
			l.Debug().Msg("filtered")
			closer()
		}

		data, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Contains(t, string(data), "first")
		assert.Contains(t, string(data), "second")
		assert.NotContains(t, string(data), "filtered")
	})
}
