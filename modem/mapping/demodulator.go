package mapping

import (
	"fmt"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/modem/constellation"
)

const defaultBlockSize = 4096

// Errors returned by NewDemodulator.
var (
	ErrWorkers   = fmt.Errorf("mapping: %w: worker count must be >= 1", core.ErrInvalidInput)
	ErrBlockSize = fmt.Errorf("mapping: %w: block size must be >= 1", core.ErrInvalidInput)
)

type config struct {
	workers   int
	blockSize int
}

func defaultConfig() config {
	return config{
		workers:   runtime.GOMAXPROCS(0),
		blockSize: defaultBlockSize,
	}
}

// Option configures a Demodulator.
type Option func(*config)

// WithWorkers bounds the number of goroutines deciding blocks concurrently.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		cfg.workers = n
	}
}

// WithBlockSize sets how many symbols each goroutine decides per task.
func WithBlockSize(n int) Option {
	return func(cfg *config) {
		cfg.blockSize = n
	}
}

// Demodulator performs hard-decision demodulation against a fixed table.
// It holds no mutable state and is safe for concurrent use.
type Demodulator struct {
	table     *constellation.Table
	workers   int
	blockSize int
}

// NewDemodulator returns a Demodulator for t.
func NewDemodulator(t *constellation.Table, opts ...Option) (*Demodulator, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrWorkers, cfg.workers)
	}
	if cfg.blockSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBlockSize, cfg.blockSize)
	}
	return &Demodulator{table: t, workers: cfg.workers, blockSize: cfg.blockSize}, nil
}

// Table returns the constellation the demodulator decides against.
func (d *Demodulator) Table() *constellation.Table { return d.table }

// Workers returns the configured goroutine bound.
func (d *Demodulator) Workers() int { return d.workers }

// BlockSize returns the configured symbols per task.
func (d *Demodulator) BlockSize() int { return d.blockSize }

// Demodulate is equivalent to [Demodulate] with the demodulator's table.
// Sequences longer than one block are split into contiguous blocks that write
// disjoint ranges of the output, so the result order matches the input.
func (d *Demodulator) Demodulate(symbols []complex128) []uint8 {
	k := d.table.BitsPerSymbol()
	out := make([]uint8, len(symbols)*k)
	if d.workers == 1 || len(symbols) <= d.blockSize {
		demodulateTo(out, symbols, d.table)
		return out
	}

	p := pool.New().WithMaxGoroutines(d.workers)
	for start := 0; start < len(symbols); start += d.blockSize {
		end := min(start+d.blockSize, len(symbols))
		p.Go(func() {
			demodulateTo(out[start*k:end*k], symbols[start:end], d.table)
		})
	}
	p.Wait()
	return out
}
