//go:build noserial

package pad

import (
	"fmt"

	"rapid-fire/types"
)

// Open always fails in builds without serial support.
func Open(port string, logger *types.Logger) (*Pad, error) {
	return nil, fmt.Errorf("%w: %s", ErrSerialUnavailable, port)
}

// AvailablePorts always fails in builds without serial support.
func AvailablePorts() ([]string, error) {
	return nil, ErrSerialUnavailable
}
