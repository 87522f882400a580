// Command commsim exercises the modulation and pulse shaping packages from
// the command line.
//
// Usage:
//
//	commsim [global flags] <command> [flags]
//
// Examples:
//
//	commsim tables 16qam --plot
//	commsim roundtrip --value 988 --bits 12
//	commsim spectrum --pulse all --fsT 16 --fs 16 --fft-size 4096
//	commsim spectrum --measured --window blackman --scheme 16qam
//	commsim message --text "Hello" --scheme 8psk
//
// Settings are layered from defaults, a config file (--config or
// ./commsim.yaml), COMMSIM_* environment variables such as
// COMMSIM_SAMPLING_FFT_SIZE, and flags.
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *Config
	log        *logrus.Logger
}

var (
	okLabel   = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	skipLabel = color.New(color.FgYellow).SprintFunc()
	header    = color.New(color.FgCyan, color.Bold).SprintfFunc()
)

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "commsim",
		Short:         "Digital modulation and pulse shaping toolbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.v, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = newLogger(cfg.Log)
			a.log.SetOutput(cmd.ErrOrStderr())
			a.log.WithField("config", a.v.ConfigFileUsed()).Debug("configuration loaded")
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (yaml, toml or json)")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text or json)")
	pf.Float64("fs", 1, "sample rate fs")
	pf.Int("fsT", 8, "samples per symbol period")
	pf.Int("fft-size", 1024, "FFT length for spectra")
	pf.Float64("alpha", 0.99, "power fraction for containment bandwidth")
	pf.String("pulse", "rect", "pulse shape (rect, half-sine, sine-squared or all)")
	pf.String("scheme", "qpsk", "modulation scheme")
	pf.Int("workers", 0, "demodulator goroutines (0 = GOMAXPROCS)")

	for key, flag := range map[string]string{
		"log.level":                   "log-level",
		"log.format":                  "log-format",
		"sampling.sample_rate":        "fs",
		"sampling.samples_per_symbol": "fsT",
		"sampling.fft_size":           "fft-size",
		"sampling.alpha":              "alpha",
		"sampling.pulse":              "pulse",
		"sampling.scheme":             "scheme",
		"workers":                     "workers",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		newTablesCmd(a),
		newRoundtripCmd(a),
		newSpectrumCmd(a),
		newMessageCmd(a),
	)
	return root
}

func status(w io.Writer, ok bool) {
	if ok {
		io.WriteString(w, okLabel("OK"))
	} else {
		io.WriteString(w, failLabel("FAIL"))
	}
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		logrus.New().WithError(err).Error("commsim failed")
		os.Exit(1)
	}
}
