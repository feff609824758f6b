package iojson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	t.Run("indents", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, WriteWith(&out, &errOut, map[string]any{"values": []string{"a"}}))
		assert.Equal(t, "{\n  \"values\": [\n    \"a\"\n  ]\n}\n", out.String())
		assert.Empty(t, errOut.String())
	})

	t.Run("marshal failure goes to the error writer", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, WriteWith(&out, &errOut, map[string]any{"ch": make(chan int)}))
		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "json_error")
	})
}

func TestWriteError(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteError(&out, "cancelled", nil))
	assert.Equal(t, "{\n  \"message\": \"cancelled\"\n}\n", out.String())

	assert.Contains(t, MarshalError("bad", map[string]any{"f": func() {}}), "json_error")
}
