package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/fractal"
	"github.com/scottkirkwood/fractals/ifs"
	"github.com/scottkirkwood/fractals/lsystem"
)

// example is a bundled fractal of either kind
type example struct {
	Kind     fractal.Kind
	Name     string
	contents func() ([]byte, error)
}

func allExamples() []example {
	var out []example
	for _, e := range ifs.Examples() {
		out = append(out, example{fractal.IFS, e.Name, e.Contents})
	}
	for _, e := range lsystem.Examples() {
		out = append(out, example{fractal.LSystem, e.Name, e.Contents})
	}
	return out
}

func findExample(name string) (example, error) {
	for _, e := range allExamples() {
		if e.Name == name || fractals.Slug(e.Name) == fractals.Slug(name) {
			return e, nil
		}
	}
	return example{}, fmt.Errorf("no example named %q, see `fractals examples`", name)
}

func newExamplesCmd(a *app) *cobra.Command {
	var exportDir string
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List the bundled example fractals",
		Long:  "Lists the bundled examples. With --export the JSON files are written to a folder so they can be edited.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, e := range allExamples() {
				if exportDir == "" {
					fmt.Fprintf(out, "%-8s %s\n", kindFlag(e.Kind), e.Name)
					continue
				}
				data, err := e.contents()
				if err != nil {
					return err
				}
				if err := fractals.MaybeCreateDir(exportDir); err != nil {
					return err
				}
				fname := filepath.Join(exportDir, kindFlag(e.Kind)+"-"+fractals.Slug(e.Name)+".json")
				if err := os.WriteFile(fname, data, 0664); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %s\n", fname)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&exportDir, "export", "", "write the examples as JSON files into this folder")
	return cmd
}

func kindFlag(k fractal.Kind) string {
	if k == fractal.LSystem {
		return "lsystem"
	}
	return "ifs"
}
