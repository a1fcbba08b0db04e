// Package shortcode allocates the compact codes that key short links.
package shortcode

import (
	"crypto/rand"
	"math/big"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

const (
	// Charset contains every character a short code may use.
	Charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	// Length is the fixed short-code length.
	Length = 6
	// MaxAttempts bounds collision retries before allocation fails.
	MaxAttempts = 10
)

// Generator draws uniformly random short codes. A bloom filter tracks codes
// known to exist so most collision checks never reach the store; the store's
// put-if-absent remains the source of truth since the filter can report
// false positives but never false negatives.
type Generator struct {
	mu     sync.Mutex
	filter *bloom.BloomFilter
}

// NewGenerator creates a generator sized for the expected number of live
// codes at a 1% false-positive rate.
func NewGenerator(expectedCodes uint) *Generator {
	if expectedCodes == 0 {
		expectedCodes = 1_000_000
	}
	return &Generator{
		filter: bloom.NewWithEstimates(expectedCodes, 0.01),
	}
}

// Draw returns one uniformly random candidate code.
func (g *Generator) Draw() (string, error) {
	max := big.NewInt(int64(len(Charset)))
	buf := make([]byte, Length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = Charset[n.Int64()]
	}
	return string(buf), nil
}

// SeenBefore reports whether code was remembered earlier. A true result may
// be a false positive; a false result is definitive.
func (g *Generator) SeenBefore(code string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.filter.TestString(code)
}

// Remember records a code as allocated so later draws can skip it cheaply.
func (g *Generator) Remember(code string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.filter.AddString(code)
}
