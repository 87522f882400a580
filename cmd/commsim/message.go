package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-comms/modem/bits"
	"github.com/cwbudde/algo-comms/modem/constellation"
	"github.com/cwbudde/algo-comms/modem/link"
	"github.com/cwbudde/algo-comms/stats/envelope"
)

func newMessageCmd(a *app) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "message",
		Short: "Send a text message through the transmit chain and back",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if text == "" {
				return errors.New("--text must not be empty")
			}
			scheme, err := constellation.ParseScheme(a.cfg.Sampling.Scheme)
			if err != nil {
				return errors.Wrap(err, "resolving scheme")
			}
			types, err := a.cfg.pulseTypes()
			if err != nil {
				return errors.Wrap(err, "resolving pulse")
			}
			// The first pulse is used when "all" is configured.
			typ := types[0]
			opts := a.cfg.processorOptions()

			tx, err := link.NewTransmitter(scheme, typ, opts...)
			if err != nil {
				return errors.Wrap(err, "creating transmitter")
			}
			rx, err := link.NewReceiver(scheme, typ, opts...)
			if err != nil {
				return errors.Wrap(err, "creating receiver")
			}

			in := bits.FromString(text)
			padded := padBits(in, scheme.BitsPerSymbol())
			log := a.log.WithFields(logrus.Fields{
				"scheme": scheme.String(),
				"pulse":  typ.String(),
				"fsT":    a.cfg.Sampling.SamplesPerSymbol,
			})
			if len(padded) != len(in) {
				log.WithField("pad", len(padded)-len(in)).Debug("padding message to whole symbols")
			}

			burst, err := tx.Transmit(padded)
			if err != nil {
				return errors.Wrap(err, "transmitting")
			}
			out, err := rx.ReceiveSamples(burst.Samples)
			if err != nil {
				return errors.Wrap(err, "receiving")
			}
			out = out[:len(in)]

			bitErrors, err := bits.CountBitErrors(in, out)
			if err != nil {
				return errors.Wrap(err, "counting bit errors")
			}
			decoded, err := bits.ToString(out)
			if err != nil {
				return errors.Wrap(err, "decoding text")
			}
			log.WithField("bit_errors", bitErrors).Info("message looped back")

			env := envelope.Calculate(burst.Samples)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "scheme:   %s / %s pulse\n", scheme, typ)
			fmt.Fprintf(w, "bits:     %d (%d padded)\n", len(in), len(padded))
			fmt.Fprintf(w, "symbols:  %d\n", len(burst.Symbols))
			fmt.Fprintf(w, "samples:  %s\n", humanize.Comma(int64(len(burst.Samples))))
			fmt.Fprintf(w, "power:    %.3f (PAPR %.2f dB)\n", env.Power, env.PAPR_dB)
			fmt.Fprintf(w, "decoded:  %q\n", decoded)
			fmt.Fprintf(w, "errors:   %d ", bitErrors)
			status(w, bitErrors == 0 && decoded == text)
			fmt.Fprintln(w)

			if bitErrors != 0 {
				return errors.Errorf("%d bit errors", bitErrors)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "Hello, World!", "message to send")
	return cmd
}

// padBits appends zeros until len(b) is a multiple of k.
func padBits(b []uint8, k int) []uint8 {
	if rem := len(b) % k; rem != 0 {
		return append(b[:len(b):len(b)], make([]uint8, k-rem)...)
	}
	return b
}
