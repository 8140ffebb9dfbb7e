package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bryanwahyu/roi-simulator/internal/config"
	"github.com/bryanwahyu/roi-simulator/internal/logging"
)

const defaultConfigPath = "config.yaml"

var cfgPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:           "roi",
		Short:         "Invoicing ROI simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		// tanpa subcommand langsung serve
		RunE: serve.RunE,
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "",
		"path to config.yaml (default $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(serve, newSimulateCmd(), newMigrateCmd())
	return root
}

// loadConfig resolves --config, then CONFIG_PATH, then ./config.yaml. Only
// the implicit default may be missing, in which case built-in defaults apply.
func loadConfig() (*config.Config, error) {
	path, explicit := cfgPath, cfgPath != ""
	if !explicit {
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path, explicit = v, true
		} else {
			path = defaultConfigPath
		}
	}

	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config load error: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	return logging.Stdout(cfg.Log.Level, cfg.Log.Pretty)
}
