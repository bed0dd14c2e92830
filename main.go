package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"rapid-fire/pad"
	"rapid-fire/sequence"
	"rapid-fire/types"
)

var errUsage = errors.New("usage error")

type options struct {
	Port    string
	Verbose bool
}

// parseArgs parses the command line. It returns pflag.ErrHelp when help
// was requested.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := pflag.NewFlagSet("rapid-fire", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rapid-fire [flags] PORT\n\n")
		fmt.Fprintf(stderr, "Drives a controller emulator on serial port PORT at %d bps.\n\n", pad.BaudRate)
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("%w: expected exactly one serial port, got %d arguments", errUsage, fs.NArg())
	}

	opts.Port = fs.Arg(0)
	return opts, nil
}

// run opens the controller and drives it until ctx is cancelled.
func run(ctx context.Context, opts *options, logger *types.Logger) error {
	p, err := pad.Open(opts.Port, logger)
	if err != nil {
		return err
	}

	seq := sequence.New(p, types.Sleep, logger)
	if err := seq.Run(ctx); err != nil {
		if cerr := p.Close(); cerr != nil && !errors.Is(cerr, pad.ErrClosed) {
			logger.WarnLog.Printf("Error closing serial port: %s", cerr.Error())
		}
		return err
	}
	return nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := types.NewLogger(os.Stderr, opts.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.ErrorLog.Fatalf("Error driving controller: %v", err)
	}
	logger.InfoLog.Println("Controller released")
}
