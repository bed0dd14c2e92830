//go:build !noserial

package pad

import (
	"fmt"
	"strings"

	"go.bug.st/serial"
)

// AvailablePorts lists the serial ports visible on this host.
func AvailablePorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	return ports, nil
}

// openError decorates an open failure with the ports the user could have
// meant.
func openError(port string, err error) error {
	ports, listErr := AvailablePorts()
	if listErr != nil || len(ports) == 0 {
		return fmt.Errorf("failed to open serial port %s: %w", port, err)
	}
	return fmt.Errorf("failed to open serial port %s (available: %s): %w",
		port, strings.Join(ports, ", "), err)
}
