package main

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTablesCommand(t *testing.T) {
	out, err := run(t, "tables", "bpsk", "16qam")
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	for _, want := range []string{"BPSK: K=1", "16QAM: K=4", "Bits  Symbol", "1011  -3.000 + j 3.000"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
	if strings.Contains(out, "QPSK") {
		t.Error("unrequested scheme printed")
	}
}

func TestTablesCommandPlot(t *testing.T) {
	out, err := run(t, "tables", "qpsk", "--plot", "--width", "21", "--height", "9")
	if err != nil {
		t.Fatalf("tables --plot: %v", err)
	}
	if !strings.Contains(out, "+") || !strings.Contains(out, "3") {
		t.Errorf("plot missing origin or labels:\n%s", out)
	}
}

func TestTablesCommandUnknownScheme(t *testing.T) {
	if _, err := run(t, "tables", "ook"); err == nil {
		t.Fatal("expected error for unknown scheme")
	}
}

func TestRoundtripCommand(t *testing.T) {
	out, err := run(t, "roundtrip", "--workers", "2")
	if err != nil {
		t.Fatalf("roundtrip: %v", err)
	}
	for _, name := range []string{"BPSK", "QPSK", "16QAM", "64QAM", "4PAM", "8PAM", "8PSK"} {
		if !strings.Contains(out, name) {
			t.Errorf("missing %s in\n%s", name, out)
		}
	}
	if strings.Count(out, "988") != 7 || strings.Contains(out, "FAIL") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRoundtripCommandSkipsIndivisible(t *testing.T) {
	out, err := run(t, "roundtrip", "--value", "5", "--bits", "4")
	if err != nil {
		t.Fatalf("roundtrip: %v", err)
	}
	if strings.Count(out, "SKIP") != 3 {
		t.Errorf("want 3 skipped schemes (64QAM, 8PAM, 8PSK):\n%s", out)
	}
}

func TestSpectrumCommand(t *testing.T) {
	out, err := run(t, "spectrum", "--pulse", "all", "--fs", "16", "--fsT", "16", "--fft-size", "4096", "--alpha", "0.9")
	if err != nil {
		t.Fatalf("spectrum: %v", err)
	}
	for _, want := range []string{"rect", "half-sine", "sine-squared", "90% containment", "1.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestSpectrumCommandMeasured(t *testing.T) {
	out, err := run(t, "spectrum", "--measured", "--symbols", "512", "--fft-size", "256", "--window", "blackman")
	if err != nil {
		t.Fatalf("spectrum --measured: %v", err)
	}
	if !strings.Contains(out, "burst/blackman") {
		t.Errorf("missing burst row in\n%s", out)
	}
	if _, err := run(t, "spectrum", "--measured", "--window", "kaiser"); err == nil {
		t.Fatal("expected error for unknown window")
	}
}

func TestSpectrumCommandEnvConfig(t *testing.T) {
	t.Setenv("COMMSIM_SAMPLING_FFT_SIZE", "2")
	if _, err := run(t, "spectrum"); err == nil {
		t.Fatal("expected validation error for fft_size < fsT")
	}
}

func TestMessageCommand(t *testing.T) {
	for _, scheme := range []string{"bpsk", "8psk", "64qam"} {
		out, err := run(t, "message", "--scheme", scheme, "--pulse", "sine-squared", "--text", "Hi there")
		if err != nil {
			t.Fatalf("%s: %v", scheme, err)
		}
		if !strings.Contains(out, "PAPR") {
			t.Errorf("%s: missing envelope stats:\n%s", scheme, out)
		}
		if !strings.Contains(out, `decoded:  "Hi there"`) || !strings.Contains(out, "errors:   0") {
			t.Errorf("%s: unexpected output:\n%s", scheme, out)
		}
	}
}

func TestMessageCommandEmpty(t *testing.T) {
	if _, err := run(t, "message", "--text", ""); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestPadBits(t *testing.T) {
	in := []uint8{1, 0, 1, 1}
	if got := padBits(in, 3); len(got) != 6 || got[4] != 0 || got[5] != 0 {
		t.Fatalf("padBits = %v", got)
	}
	if got := padBits(in, 2); len(got) != 4 {
		t.Fatalf("padBits = %v", got)
	}
}
