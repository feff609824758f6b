// Package utils holds small io helpers.
package utils

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter buffers writes in memory until Release is called, then
// writes straight through. It keeps log lines off the screen while a
// terminal UI is running. Safe for concurrent use.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
	out io.Writer
}

// Write buffers p, or writes it through once released.
func (d *DeferredWriter) Write(p []byte) (n int, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.out != nil {
		return d.out.Write(p)
	}
	return d.buf.Write(p)
}

// Flush writes all buffered data to w and clears the buffer. Later writes
// are still buffered.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.flushLocked(w)
}

// Release flushes the buffer to w and sends every later write to w.
func (d *DeferredWriter) Release(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.out = w
	return d.flushLocked(w)
}

// Hold starts buffering again after a Release.
func (d *DeferredWriter) Hold() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.out = nil
}

func (d *DeferredWriter) flushLocked(w io.Writer) error {
	if d.buf.Len() == 0 {
		return nil
	}
	_, err := d.buf.WriteTo(w)
	return err
}
