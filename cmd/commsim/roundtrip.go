package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-comms/modem/bits"
	"github.com/cwbudde/algo-comms/modem/constellation"
	"github.com/cwbudde/algo-comms/modem/mapping"
)

func newRoundtripCmd(a *app) *cobra.Command {
	var value, width int

	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Modulate and demodulate an integer through every table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width < 1 || width > 62 {
				return errors.Errorf("--bits must be in [1, 62], got %d", width)
			}
			in := bits.FromInt(value, width)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "Scheme\tK\tSymbols\tDecoded\tStatus")

			failed := 0
			for _, t := range constellation.Tables() {
				k := t.BitsPerSymbol()
				if width%k != 0 {
					fmt.Fprintf(tw, "%s\t%d\t-\t-\t%s\n", t.Name(), k, skipLabel("SKIP"))
					continue
				}

				symbols, err := mapping.Modulate(in, t)
				if err != nil {
					return errors.Wrapf(err, "modulating with %s", t.Name())
				}
				demod, err := a.demodulator(t)
				if err != nil {
					return err
				}
				out := demod.Demodulate(symbols)
				decoded := bits.ToInt(out)

				a.log.WithFields(logrus.Fields{
					"scheme":  t.Name(),
					"symbols": len(symbols),
					"decoded": decoded,
				}).Debug("round trip")

				ok := decoded == bits.ToInt(in)
				if !ok {
					failed++
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t", t.Name(), k, len(symbols), decoded)
				status(tw, ok)
				fmt.Fprintln(tw)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return errors.Errorf("%d scheme(s) failed the round trip", failed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&value, "value", 988, "integer to send")
	cmd.Flags().IntVar(&width, "bits", 12, "number of bits used to represent --value")
	return cmd
}

func (a *app) demodulator(t *constellation.Table) (*mapping.Demodulator, error) {
	var opts []mapping.Option
	if a.cfg.Workers > 0 {
		opts = append(opts, mapping.WithWorkers(a.cfg.Workers))
	}
	d, err := mapping.NewDemodulator(t, opts...)
	return d, errors.Wrap(err, "creating demodulator")
}
