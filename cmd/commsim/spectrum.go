package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-comms/dsp/pulse"
	"github.com/cwbudde/algo-comms/dsp/window"
	"github.com/cwbudde/algo-comms/measure/bandwidth"
	"github.com/cwbudde/algo-comms/modem/bits"
	"github.com/cwbudde/algo-comms/modem/constellation"
	"github.com/cwbudde/algo-comms/modem/link"
)

type spectrumFlags struct {
	measured bool
	symbols  int
	window   string
	seed     int64
}

func newSpectrumCmd(a *app) *cobra.Command {
	var f spectrumFlags

	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Estimate the bandwidth of pulse shapes",
		Long: `Generate each selected pulse, compute its PSD with --fft-size points and
print the 3 dB, zero-to-zero and alpha-containment bandwidths.
With --measured, a random symbol burst of the configured scheme is also
transmitted and its Welch PSD estimate analysed the same way.
Bandwidths are in units of fs; multiply by T = fsT/fs for normalized values.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSpectrum(cmd.OutOrStdout(), f)
		},
	}

	cmd.Flags().BoolVar(&f.measured, "measured", false, "also analyse the PSD of a transmitted random burst")
	cmd.Flags().IntVar(&f.symbols, "symbols", 4096, "burst length in symbols for --measured")
	cmd.Flags().StringVar(&f.window, "window", "hann", "Welch window for --measured")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random bit seed for --measured")
	return cmd
}

func (a *app) runSpectrum(w io.Writer, f spectrumFlags) error {
	types, err := a.cfg.pulseTypes()
	if err != nil {
		return errors.Wrap(err, "resolving pulse")
	}
	scheme, err := constellation.ParseScheme(a.cfg.Sampling.Scheme)
	if err != nil {
		return errors.Wrap(err, "resolving scheme")
	}
	win, err := window.ParseType(f.window)
	if err != nil {
		return errors.Wrap(err, "resolving window")
	}
	if f.measured && f.symbols < 1 {
		return errors.Errorf("--symbols must be >= 1, got %d", f.symbols)
	}

	s := a.cfg.Sampling
	symbolPeriod := float64(s.SamplesPerSymbol) / s.SampleRate

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Pulse\tSource\tEnergy\t3dB\tZero-to-zero\t%.0f%% containment\tPeak (dB)\n", 100*s.Alpha)

	row := func(typ pulse.Type, source string, energy float64, an bandwidth.Analysis) {
		if math.IsNaN(an.ZeroToZero) {
			a.log.WithFields(logrus.Fields{"pulse": typ.String(), "source": source}).Warn("no spectral zero found above the peak")
		}
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%s\t%s\t%s\t%.2f\n",
			typ, source, energy,
			formatBandwidth(an.ThreeDB, symbolPeriod),
			formatBandwidth(an.ZeroToZero, symbolPeriod),
			formatBandwidth(an.Containment, symbolPeriod),
			an.PeakDB,
		)
	}

	for _, typ := range types {
		log := a.log.WithFields(logrus.Fields{
			"pulse":    typ.String(),
			"scheme":   scheme.String(),
			"fsT":      s.SamplesPerSymbol,
			"fs":       s.SampleRate,
			"fft_size": s.FFTSize,
		})
		log.Debug("computing spectrum")

		tx, err := link.NewTransmitter(scheme, typ, a.cfg.processorOptions()...)
		if err != nil {
			return errors.Wrapf(err, "pulse %s", typ)
		}
		an, err := tx.Bandwidth(s.Alpha)
		if err != nil {
			return errors.Wrapf(err, "analysing %s", typ)
		}
		row(typ, "pulse", pulse.Energy(tx.Pulse(), s.SampleRate), an)

		if !f.measured {
			continue
		}

		in, err := bits.NewSource(bits.WithSeed(f.seed)).Bits(f.symbols * scheme.BitsPerSymbol())
		if err != nil {
			return errors.Wrap(err, "generating bits")
		}
		burst, err := tx.Transmit(in)
		if err != nil {
			return errors.Wrap(err, "transmitting burst")
		}
		ff, ss, err := tx.MeasuredSpectrum(burst.Samples, win)
		if err != nil {
			return errors.Wrapf(err, "estimating %s burst spectrum", typ)
		}
		man, err := bandwidth.Analyze(ff, ss, s.Alpha)
		if err != nil {
			return errors.Wrapf(err, "analysing %s burst", typ)
		}
		log.WithField("samples", humanize.Comma(int64(len(burst.Samples)))).Debug("burst spectrum estimated")
		row(typ, "burst/"+win.String(), man.TotalPower*s.SampleRate/float64(s.FFTSize), man)
	}
	return tw.Flush()
}

// formatBandwidth prints b together with the normalized value b*T.
func formatBandwidth(b, symbolPeriod float64) string {
	if math.IsNaN(b) {
		return "n/a"
	}
	return fmt.Sprintf("%.4f (%.3f/T)", b, b*symbolPeriod)
}
