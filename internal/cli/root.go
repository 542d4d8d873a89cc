// Package cli wires the nbaviewer commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-viewer/internal/config"
	"github.com/preston-bernstein/nba-viewer/internal/logging"
)

// app is the state shared by subcommands after the root pre-run.
type app struct {
	version string
	cfg     config.Config
	logger  *slog.Logger
	logFile io.Closer
}

// NewRootCmd creates the root Cobra command for the nbaviewer CLI.
func NewRootCmd(version string) *cobra.Command {
	a := &app{version: version}

	var (
		envFile   string
		provider  string
		logLevel  string
		logFormat string
		logPath   string
	)

	cmd := &cobra.Command{
		Use:           "nbaviewer",
		Short:         "Browse NBA players and teams",
		Long:          "nbaviewer pages through NBA players from balldontlie and shows player and team detail.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}
			cfg := config.Load()
			if provider != "" {
				cfg.Provider = provider
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			if logFormat != "" {
				cfg.Log.Format = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			return a.setupLogging(cmd, logPath)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.cleanup()
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load when present")
	cmd.PersistentFlags().StringVar(&provider, "provider", "", "data provider: balldontlie or fixture")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
	cmd.PersistentFlags().StringVar(&logPath, "log-file", "", "write logs to this file instead of stderr")

	cmd.AddCommand(
		newBrowseCmd(a),
		newServeCmd(a),
		newPlayersCmd(a),
		newPlayerCmd(a),
		newTeamCmd(a),
	)
	return cmd
}

// setupLogging points logs at --log-file when given. browse never logs to the terminal
// it draws on, so without a file its logs are discarded.
func (a *app) setupLogging(cmd *cobra.Command, path string) error {
	var w io.Writer = cmd.ErrOrStderr()
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		w = f
	} else if cmd.Name() == browseCmdName {
		a.logger = logging.Discard()
		return nil
	}

	a.logger = logging.NewLogger(logging.Config{
		Level:   a.cfg.Log.Level,
		Format:  a.cfg.Log.Format,
		Service: a.cfg.Metrics.ServiceName,
		Version: a.version,
		Writer:  w,
	})
	return nil
}

func (a *app) cleanup() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}
