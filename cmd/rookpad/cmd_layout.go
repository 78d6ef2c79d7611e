package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rookpad/counter"
)

func newLayoutCommand(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the keypad and the rook adjacency map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), *verbose)
			defer logger.Sync() //nolint:errcheck

			engine, err := counter.New(counter.WithLogger(logger))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprint(w, engine.Keypad())
			fmt.Fprintln(w)
			fmt.Fprint(w, engine.Adjacency())

			return nil
		},
	}
}
