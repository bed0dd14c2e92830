package sequence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rapid-fire/pad"
	"rapid-fire/types"
)

const (
	warmUpPresses = 3
	buttonHold    = 100 * time.Millisecond
	hatPresses    = 3
	hatHold       = time.Second / 30
	idleInterval  = time.Second
)

// Sequencer drives the fixed rapid-fire script over a single controller
// connection.
type Sequencer struct {
	pad    pad.Presser
	sleep  types.Sleeper
	logger *types.Logger
}

// New creates a Sequencer. A nil sleep uses types.Sleep.
func New(p pad.Presser, sleep types.Sleeper, logger *types.Logger) *Sequencer {
	if sleep == nil {
		sleep = types.Sleep
	}
	if logger == nil {
		logger = types.DiscardLogger()
	}
	return &Sequencer{
		pad:    p,
		sleep:  sleep,
		logger: logger,
	}
}

// Run performs the warm-up and then loops until ctx is cancelled. On
// cancellation it runs Shutdown and returns nil. Any other error is
// returned as is and the connection is left for the caller.
func (s *Sequencer) Run(ctx context.Context) error {
	err := s.WarmUp(ctx)
	if err == nil {
		err = s.Loop(ctx)
	}

	if isInterrupt(err) {
		s.logger.InfoLog.Printf("Interrupted, releasing controller")
		return s.Shutdown()
	}
	return err
}

// WarmUp presses A three times with a one second pause after each.
func (s *Sequencer) WarmUp(ctx context.Context) error {
	s.logger.InfoLog.Printf("Warming up")
	for i := 0; i < warmUpPresses; i++ {
		if err := s.pad.Press(ctx, pad.ButtonA, buttonHold); err != nil {
			return err
		}
		if err := s.sleep(ctx, idleInterval); err != nil {
			return err
		}
	}
	return nil
}

// Loop alternates left and right hat triples until ctx is done. It only
// ever returns an error.
func (s *Sequencer) Loop(ctx context.Context) error {
	s.logger.InfoLog.Printf("Starting hat loop")
	start := time.Now()

	for count := 1; ; count++ {
		if err := s.burst(ctx, pad.HatLeft); err != nil {
			return err
		}
		if err := s.burst(ctx, pad.HatRight); err != nil {
			return err
		}
		s.logger.DebugLog.Printf("Completed loop %d after %s", count, time.Since(start).Round(time.Millisecond))
	}
}

// burst presses cmd hatPresses times back to back, then idles.
func (s *Sequencer) burst(ctx context.Context, cmd pad.Command) error {
	for i := 0; i < hatPresses; i++ {
		if err := s.pad.Press(ctx, cmd, hatHold); err != nil {
			return err
		}
	}
	return s.sleep(ctx, idleInterval)
}

// Shutdown sends a final RELEASE and closes the connection. It ignores
// any earlier cancellation so the release always reaches the device.
func (s *Sequencer) Shutdown() error {
	releaseErr := s.pad.Press(context.Background(), pad.Release, 0)
	if releaseErr != nil {
		releaseErr = fmt.Errorf("failed to release controller: %w", releaseErr)
	}
	return errors.Join(releaseErr, s.pad.Close())
}

func isInterrupt(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
