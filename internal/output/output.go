// Package output provides the write path shared by the log services.
//
// Every record is serialized into a single payload and handed to a Writer.
// SyncWriter serializes concurrent writes so payloads never interleave, and
// IsTerminal decides whether ANSI colors may be applied.
package output

import (
	"io"
	"os"
	"sync"

	"github.com/hyp3rd/ewrap"
	"github.com/mattn/go-isatty"
)

// Writer is the output the log services write encoded records to.
type Writer interface {
	// Write writes the given bytes to the underlying output.
	Write(p []byte) (n int, err error)
	// Sync ensures that all data has been written.
	Sync() error
	// Close closes the writer and releases any resources.
	Close() error
}

// SyncWriter guards an io.Writer with a mutex.
type SyncWriter struct {
	mu     sync.Mutex
	writer io.Writer
	closed bool
}

// Ensure SyncWriter implements the Writer interface.
var _ Writer = (*SyncWriter)(nil)

// NewSyncWriter wraps w.
func NewSyncWriter(w io.Writer) (*SyncWriter, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	return &SyncWriter{writer: w}, nil
}

// Underlying returns the wrapped writer.
func (w *SyncWriter) Underlying() io.Writer {
	return w.writer
}

// Write writes p in one call to the wrapped writer.
func (w *SyncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, ErrWriterClosed
	}

	n, err := w.writer.Write(p)
	if err != nil {
		return n, ewrap.Wrap(err, "failed to write to writer")
	}

	return n, nil
}

// Sync flushes the wrapped writer when it supports it. Standard streams are skipped.
func (w *SyncWriter) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if f, ok := w.writer.(*os.File); ok && isStandardStream(f) {
		return nil
	}

	if syncer, ok := w.writer.(interface{ Sync() error }); ok {
		err := syncer.Sync()
		if err != nil {
			return ewrap.Wrap(err, "failed to sync writer")
		}
	}

	return nil
}

// Close closes the wrapped writer when it is a closer. Standard streams are never closed.
func (w *SyncWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	w.closed = true

	if f, ok := w.writer.(*os.File); ok && isStandardStream(f) {
		return nil
	}

	if closer, ok := w.writer.(io.Closer); ok {
		err := closer.Close()
		if err != nil {
			return ewrap.Wrap(err, "failed to close writer")
		}
	}

	return nil
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	switch typed := w.(type) {
	case nil:
		return false
	case interface{ Underlying() io.Writer }:
		return IsTerminal(typed.Underlying())
	case interface{ Fd() uintptr }:
		fd := typed.Fd()

		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	default:
		return false
	}
}

func isStandardStream(f *os.File) bool {
	return f == os.Stdout || f == os.Stderr
}
