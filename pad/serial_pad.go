//go:build !noserial

package pad

import (
	"github.com/tarm/serial"

	"rapid-fire/types"
)

// Open opens the named serial port at BaudRate and returns a Pad that
// owns it.
func Open(port string, logger *types.Logger) (*Pad, error) {
	if logger == nil {
		logger = types.DiscardLogger()
	}

	c := &serial.Config{
		Name: port,
		Baud: BaudRate,
	}
	s, err := serial.OpenPort(c)
	if err != nil {
		return nil, openError(port, err)
	}

	logger.InfoLog.Printf("Serial port %s opened at %d bps", port, BaudRate)
	return New(s, types.Sleep, logger), nil
}
