package pad

import (
	"context"
	"fmt"
	"io"
	"time"

	"rapid-fire/types"
)

// Presser is anything that can press a command and hold it.
type Presser interface {
	// Press sends cmd, holds it for hold, then sends RELEASE
	Press(ctx context.Context, cmd Command, hold time.Duration) error
	// Close releases the underlying connection
	Close() error
}

// Pad is a connection to a controller emulator. It owns conn and closes it
// at most once.
type Pad struct {
	conn   io.WriteCloser
	sleep  types.Sleeper
	logger *types.Logger
	closed bool
}

var _ Presser = (*Pad)(nil)

// New wraps an already open connection. A nil sleep uses types.Sleep.
func New(conn io.WriteCloser, sleep types.Sleeper, logger *types.Logger) *Pad {
	if sleep == nil {
		sleep = types.Sleep
	}
	if logger == nil {
		logger = types.DiscardLogger()
	}
	return &Pad{
		conn:   conn,
		sleep:  sleep,
		logger: logger,
	}
}

// Press writes cmd, waits for hold, then writes RELEASE.
//
// Nothing is written if ctx is already done. If ctx is cancelled while the
// command is held, Press returns ctx.Err() without writing RELEASE.
func (p *Pad) Press(ctx context.Context, cmd Command, hold time.Duration) error {
	if hold < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeHold, hold)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p.logger.DebugLog.Printf("Press %q for %s", cmd, hold)
	if err := p.write(cmd); err != nil {
		return err
	}
	if err := p.sleep(ctx, hold); err != nil {
		return err
	}
	return p.write(Release)
}

func (p *Pad) write(cmd Command) error {
	if p.closed {
		return ErrClosed
	}
	return sendCommand(p.conn, cmd)
}

// Close closes the connection. Only the first call reaches the port; later
// calls return ErrClosed.
func (p *Pad) Close() error {
	if p.closed {
		return ErrClosed
	}
	p.closed = true
	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("failed to close controller connection: %w", err)
	}
	return nil
}
