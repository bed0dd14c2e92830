package pad

import (
	"fmt"
	"io"
)

// sendCommand writes a single command line to w
func sendCommand(w io.Writer, cmd Command) error {
	_, err := w.Write([]byte(string(cmd) + lineTerminator))
	if err != nil {
		return fmt.Errorf("failed to send command %q: %w", cmd, err)
	}
	return nil
}
