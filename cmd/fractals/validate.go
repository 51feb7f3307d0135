package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/fractals/fractal"
)

var errInvalid = errors.New("some fractals are invalid")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file.json...]",
		Short: "Check fractal files without rendering them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			bad := 0
			for _, fname := range args {
				if err := validateFile(fname); err != nil {
					bad++
					fmt.Fprintf(out, "%s:\n%s\n\n", fname, fractal.Message(err))
					continue
				}
				fmt.Fprintf(out, "%s: OK\n", fname)
			}
			if bad > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalid, bad, len(args))
			}
			return nil
		},
	}
}

func validateFile(fname string) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	kind, err := fractal.DetectKind(data)
	if err != nil {
		return err
	}
	c := fractal.NewContext()
	c.Kind = kind
	return c.Load(data)
}
