// Command fractals renders and checks IFS and L-System fractal files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/fractals/config"
	"github.com/scottkirkwood/fractals/logging"
)

// app is what every subcommand shares once the root command has run
type app struct {
	configPath string
	logLevel   string

	cfg      *config.Config
	closeLog logging.Closer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "fractals",
		Short:         "Render Iterated Function Systems and L-Systems",
		Long:          "fractals renders IFS (chaos game) and L-System fractals stored as JSON to png, svg, pdf, bmp or tiff.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeLog != nil {
				return a.closeLog()
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file, FRACTALS_* variables override it")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (default from config)")

	rootCmd.AddCommand(newRenderCmd(a), newValidateCmd(a), newExamplesCmd(a))
	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.LoadFile(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logger, closer, err := logging.New(logging.Config{
		Name:  cfg.Name,
		Level: cfg.Level(),
		Dir:   cfg.LogDir,
	})
	if err != nil {
		return err
	}
	logging.SetLogger(logger)
	a.closeLog = closer
	logger.Debug("configuration loaded", "name", cfg.Name, "theme", cfg.Theme, "strict", cfg.Strict)
	return nil
}
