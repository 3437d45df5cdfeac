// Command sbp inspects, round-trips, and converts Satisfactory .sbp
// blueprint files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ficsit-tools/sbp/internal/config"
)

var (
	configPath string
	verboseCnt int
	jsonLog    bool
	timeout    time.Duration

	cfg *config.Config
	log zerolog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sbp",
		Short: "Inspect and convert Satisfactory blueprint files",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfigAndLog()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().CountVarP(&verboseCnt, "verbose", "v", "increase log verbosity (-v for debug, -vv for trace)")
	root.PersistentFlags().BoolVar(&jsonLog, "json", false, "emit logs as JSON instead of console-formatted")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "bound parse/serialize operations with a timeout (0 disables the bound)")

	root.AddCommand(newInspectCmd())
	root.AddCommand(newRoundtripCmd())
	root.AddCommand(newConvertCmd())

	return root
}

func initConfigAndLog() error {
	var err error

	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	} else {
		cfg = config.Default()
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	switch verboseCnt {
	case 0:
		// keep the configured level
	case 1:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}

	var writer io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	if jsonLog {
		writer = os.Stderr
	}

	log = zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return nil
}

func fail(err error) error {
	log.Error().Err(err).Msg("command failed")
	return fmt.Errorf("sbp: %w", err)
}

// withTimeout runs fn to completion, bounding it by the global --timeout
// flag when set. The core codec is synchronous and takes no context of its
// own, so a parse/serialize call is run on a background goroutine and
// raced against ctx so a stuck or oversized file can't hang the CLI
// indefinitely; fn's goroutine is abandoned (not killed) on timeout, since
// the core holds no locks or resources that would leak beyond its pooled
// buffers being returned late.
func withTimeout(ctx context.Context, fn func() error) error {
	if timeout <= 0 {
		return fn()
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)

	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
