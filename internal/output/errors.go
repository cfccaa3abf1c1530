package output

import (
	"github.com/hyp3rd/ewrap"
)

// Common errors for the output package.
var (
	// ErrWriterClosed is returned when attempting to write to a closed writer.
	ErrWriterClosed = ewrap.New("writer is closed")

	// ErrNilWriter is returned when a writer is built around a nil io.Writer.
	ErrNilWriter = ewrap.New("underlying writer is nil")
)
