package main

import (
	"context"
	"os"

	"github.com/amaumene/trigger/internal/app"
	"github.com/amaumene/trigger/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log.SetOutput(os.Stderr)

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Fatal("trigger exited")
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Run a command when a secret URL path is requested",
		Long: `trigger listens for HTTP requests and runs COMMAND when the request
path, without its leading slash, equals SECRET_PATH.

Environment:
  LISTEN_ADDR   ip:port to bind (default 127.0.0.1:8080)
  SECRET_PATH   path segment that authorizes a run
  COMMAND       executable to run, without arguments
  LOG_LEVEL     log level (default info)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), envFile, logLevel)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "env file loaded at startup, ignored if missing")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level, overrides LOG_LEVEL")
	return cmd
}

func run(ctx context.Context, envFile, logLevel string) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if logLevel != "" {
		if cfg.LogLevel, err = config.ParseLogLevel(logLevel); err != nil {
			return err
		}
	}
	log.SetLevel(cfg.LogLevel)

	log.WithFields(log.Fields{
		"listen_addr": cfg.ListenAddr,
		"env_file":    envFile,
	}).Info("starting trigger")

	return app.New(cfg).Run(ctx)
}
