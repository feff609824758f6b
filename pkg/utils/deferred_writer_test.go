package utils

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferredWriter_Flush(t *testing.T) {
	tests := []struct {
		name   string
		writes []string
		want   string
	}{
		{"nothing written", nil, ""},
		{"single write", []string{"picker opened\n"}, "picker opened\n"},
		{"writes keep order", []string{"open ", "pick ", "confirm"}, "open pick confirm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &DeferredWriter{}
			for _, w := range tt.writes {
				n, err := d.Write([]byte(w))
				require.NoError(t, err)
				assert.Equal(t, len(w), n)
			}

			var out bytes.Buffer
			require.NoError(t, d.Flush(&out))
			assert.Equal(t, tt.want, out.String())

			out.Reset()
			require.NoError(t, d.Flush(&out))
			assert.Empty(t, out.String(), "flush drains the buffer")
		})
	}
}

func TestDeferredWriter_ConcurrentLoggers(t *testing.T) {
	d := &DeferredWriter{}
	var wg sync.WaitGroup

	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger := zerolog.New(d)
			logger.Info().Str("widget", fmt.Sprintf("carousel-%d", i)).Msg("tick")
		}()
	}
	wg.Wait()

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "{"), "lines are not interleaved: %q", line)
	}
}

func TestDeferredWriter_Release(t *testing.T) {
	d := &DeferredWriter{}
	_, _ = d.Write([]byte("held "))

	var out bytes.Buffer
	require.NoError(t, d.Release(&out))
	assert.Equal(t, "held ", out.String())

	_, _ = d.Write([]byte("live"))
	assert.Equal(t, "held live", out.String(), "released writes go straight through")

	d.Hold()
	_, _ = d.Write([]byte(" again"))
	assert.Equal(t, "held live", out.String())

	require.NoError(t, d.Flush(&out))
	assert.Equal(t, "held live again", out.String())
}
