package raster

import "fmt"

// Logger receives progress messages from long-running operations.
type Logger interface {
	Printf(format string, args ...any)
}

// StdoutLogger writes messages to standard output.
type StdoutLogger struct{}

func (StdoutLogger) Printf(format string, args ...any) {
	fmt.Printf(format, args...)
}

// NopLogger discards messages.
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}
