package pad

import "errors"

// Connection errors
var (
	ErrClosed            = errors.New("controller connection is closed")
	ErrSerialUnavailable = errors.New("serial port support not available in this build")
	ErrNegativeHold      = errors.New("hold duration must not be negative")
)
