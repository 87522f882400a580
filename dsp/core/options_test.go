package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(8), WithSamplesPerSymbol(16), WithFFTSize(2048))
	if cfg.SampleRate != 8 {
		t.Fatalf("sample rate = %v, want 8", cfg.SampleRate)
	}
	if cfg.SamplesPerSymbol != 16 {
		t.Fatalf("samples per symbol = %d, want 16", cfg.SamplesPerSymbol)
	}
	if cfg.FFTSize != 2048 {
		t.Fatalf("fft size = %d, want 2048", cfg.FFTSize)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithSamplesPerSymbol(-1), WithFFTSize(0), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
