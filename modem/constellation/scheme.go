package constellation

import (
	"fmt"
	"strings"
)

// Scheme identifies one of the built-in constellations.
type Scheme int

const (
	BPSK Scheme = iota
	QPSK
	QAM16
	QAM64
	PAM4
	PAM8
	PSK8
)

type schemeInfo struct {
	name    string
	bits    int
	symbol  SymbolFunc
	aliases []string
}

var schemes = [...]schemeInfo{
	BPSK:  {name: "BPSK", bits: 1, symbol: bpskSymbol, aliases: []string{"bpsk", "2psk"}},
	QPSK:  {name: "QPSK", bits: 2, symbol: qpskSymbol, aliases: []string{"qpsk", "4psk", "4qam", "qam4"}},
	QAM16: {name: "16QAM", bits: 4, symbol: qam16Symbol, aliases: []string{"16qam", "qam16"}},
	QAM64: {name: "64QAM", bits: 6, symbol: qam64Symbol, aliases: []string{"64qam", "qam64"}},
	PAM4:  {name: "4PAM", bits: 2, symbol: pam4Symbol, aliases: []string{"4pam", "pam4"}},
	PAM8:  {name: "8PAM", bits: 3, symbol: pam8Symbol, aliases: []string{"8pam", "pam8"}},
	PSK8:  {name: "8PSK", bits: 3, symbol: psk8Symbol, aliases: []string{"8psk", "psk8"}},
}

func (s Scheme) valid() bool {
	return s >= 0 && int(s) < len(schemes)
}

// String returns the conventional scheme name, e.g. "16QAM".
func (s Scheme) String() string {
	if !s.valid() {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemes[s].name
}

// BitsPerSymbol returns K for the scheme, or 0 for an unknown scheme.
func (s Scheme) BitsPerSymbol() int {
	if !s.valid() {
		return 0
	}
	return schemes[s].bits
}

// SymbolFunc returns the closed-form bit-to-symbol formula of the scheme.
func (s Scheme) SymbolFunc() SymbolFunc {
	if !s.valid() {
		return nil
	}
	return schemes[s].symbol
}

// Schemes lists every built-in scheme.
func Schemes() []Scheme {
	return []Scheme{BPSK, QPSK, QAM16, QAM64, PAM4, PAM8, PSK8}
}

// ParseScheme resolves a scheme by name. Matching ignores case as well as
// "-", "_" and spaces, and accepts both "16qam" and "qam16" orders.
func ParseScheme(name string) (Scheme, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	for s, info := range schemes {
		for _, alias := range info.aliases {
			if norm == alias {
				return Scheme(s), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}
