package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-comms/modem/constellation"
)

func newTablesCmd(a *app) *cobra.Command {
	var (
		plot          bool
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "tables [scheme ...]",
		Short: "Print constellation tables",
		Long:  "Print the bit-to-symbol table of each named scheme, or of all schemes when none is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := constellation.Tables()
			if len(args) > 0 {
				tables = tables[:0:0]
				for _, name := range args {
					t, err := constellation.Lookup(name)
					if err != nil {
						return errors.Wrapf(err, "scheme %q", name)
					}
					tables = append(tables, t)
				}
			}

			w := cmd.OutOrStdout()
			for i, t := range tables {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, header("%s: K=%d, %d symbols, Es=%.3f", t.Name(), t.BitsPerSymbol(), t.Len(), t.AverageEnergy()))
				if err := constellation.WriteTable(w, t); err != nil {
					return errors.Wrap(err, "writing table")
				}
				if plot {
					fmt.Fprintln(w)
					if err := constellation.Plot(w, t, width, height); err != nil {
						return errors.Wrapf(err, "plotting %s", t.Name())
					}
				}
				a.log.WithField("scheme", t.Name()).Debug("table printed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plot, "plot", false, "draw an ASCII scatter plot of each table")
	cmd.Flags().IntVar(&width, "width", 49, "plot width in characters")
	cmd.Flags().IntVar(&height, "height", 21, "plot height in lines")
	return cmd
}
