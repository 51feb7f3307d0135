// Command fractalwatch re-renders fractal JSON files whenever they are saved
// and shows the newest render in a window.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/scottkirkwood/fractals/config"
	"github.com/scottkirkwood/fractals/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
		noWindow   bool
	)
	cmd := &cobra.Command{
		Use:   "fractalwatch [folder]",
		Short: "Watch a folder of fractal files and re-render them on save",
		Long: `fractalwatch monitors a folder. Every time a fractal JSON file in it
changes it is validated and rendered to a png, which is shown in a preview
window. Arrow keys step through the renders, R resizes, Q or Esc quits.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			logger, closeLog, err := logging.New(logging.Config{Name: "fractalwatch", Level: cfg.Level(), Dir: cfg.LogDir})
			if err != nil {
				return err
			}
			defer closeLog()
			logging.SetLogger(logger)

			folder := "."
			if len(args) == 1 {
				folder = args[0]
			}
			if outDir == "" {
				outDir = filepath.Join(folder, "renders")
			}
			r := &renderer{cfg: cfg, outDir: outDir}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer watcher.Close()

			// out of the box fsnotify can watch a single file, or a single directory
			if err := watcher.Add(folder); err != nil {
				return fmt.Errorf("problem adding folder watcher: %w", err)
			}
			abs, _ := filepath.Abs(folder)
			logger.Info("Monitoring folder", "folder", abs, "output", outDir)

			w := newWatch(r)
			w.renderAll(folder)
			if noWindow {
				w.loop(watcher, nil)
				return nil
			}
			images := make(chan string, 1)
			go w.loop(watcher, images)
			startDriver(images, w.rendered())
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "folder for the renders (default <folder>/renders)")
	cmd.Flags().BoolVar(&noWindow, "no-window", false, "only render, do not open a preview window")
	return cmd
}
