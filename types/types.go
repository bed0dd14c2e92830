package types

import (
	"context"
	"io"
	"log"
	"time"
)

// Log levels
const (
	LogDebug = "DEBUG"
	LogInfo  = "INFO"
	LogWarn  = "WARN"
	LogError = "ERROR"
)

type Logger struct {
	DebugLog *log.Logger
	InfoLog  *log.Logger
	WarnLog  *log.Logger
	ErrorLog *log.Logger
}

// NewLogger creates a Logger writing every level to w. Debug output is
// discarded unless debug is set.
func NewLogger(w io.Writer, debug bool) *Logger {
	flags := log.Ldate | log.Ltime | log.Lmicroseconds
	debugOut := io.Discard
	if debug {
		debugOut = w
	}
	return &Logger{
		DebugLog: log.New(debugOut, LogDebug+": ", flags),
		InfoLog:  log.New(w, LogInfo+": ", flags),
		WarnLog:  log.New(w, LogWarn+": ", flags),
		ErrorLog: log.New(w, LogError+": ", flags),
	}
}

// DiscardLogger returns a Logger that drops everything.
func DiscardLogger() *Logger {
	return NewLogger(io.Discard, false)
}

// Sleeper blocks for d or until ctx is done, whichever comes first.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the real-time Sleeper. A non-positive duration returns at once
// without consulting ctx.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
