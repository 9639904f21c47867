/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jfmyers9/riptide/internal/config"
	"github.com/jfmyers9/riptide/internal/session"
	"github.com/jfmyers9/riptide/pkg/tidal"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var rootLogLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "riptide",
	Short: "Command line client for Tidal",
	Long: `riptide is a command line client for the Tidal streaming service.

It lets you search the catalog, inspect artists, albums, and playlists,
and manage your own playlists from the terminal. Sessions are stored in
the OS keyring, and your playlists can be mirrored into a local SQLite
library for offline browsing.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// setupLogger creates a logger with the specified configuration
func setupLogger(logLevel string) zerolog.Logger {
	// Parse log level
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	logger := zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger().
		Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	return logger
}

// newManager loads configuration and builds a session manager
func newManager() (*session.Manager, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := setupLogger(rootLogLevel)
	return session.NewManager(cfg, logger), cfg, nil
}

// newClient builds an authenticated Tidal client from the stored session
func newClient() (*tidal.Client, *config.Config, error) {
	manager, cfg, err := newManager()
	if err != nil {
		return nil, nil, err
	}

	client, err := manager.Client()
	if err != nil {
		return nil, nil, err
	}

	return client, cfg, nil
}
