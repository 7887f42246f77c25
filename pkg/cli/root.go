package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/cacheops/ecinv/pkg/config"
	"github.com/cacheops/ecinv/pkg/logging"
)

const name = "ecinv"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type configKey struct{}

// New builds the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "AWS ElastiCache cluster inventory and reporting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "config file path (default: $HOME/.ecinv.yaml)",
				Sources: cli.EnvVars("ECINV_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			reportCmd(),
			fieldsCmd(),
		},
	}
}

// setup configures logging after flag parsing so --log-level takes
// effect before any command executes, then stashes the optional config
// file in the context for command actions.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
	slog.Debug("starting", "name", name, "version", version, "commit", commit, "date", date)

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	return context.WithValue(ctx, configKey{}, cfg), nil
}

func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}

// Execute runs the root command with a signal-aware context. A second
// interrupt kills the process through the default handler.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}

type hinter interface {
	Hint() string
}

// describeError appends the remediation hint carried by the tool's
// typed errors.
func describeError(err error) string {
	var h hinter
	if ok := asHinter(err, &h); ok {
		return fmt.Sprintf("Error: %v\nHint: %s", err, h.Hint())
	}
	return fmt.Sprintf("Error: %v", err)
}

func asHinter(err error, target *hinter) bool {
	for err != nil {
		if h, ok := err.(hinter); ok {
			*target = h
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}
