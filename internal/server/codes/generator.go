package codes

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Code range: six digits, never a leading zero.
const (
	MinCode = 100_000
	MaxCode = 1_000_000
)

// Generator hands out one-time codes.
type Generator interface {
	Next() (int, error)
}

// RandomGenerator draws codes uniformly from [MinCode, MaxCode) using a
// cryptographic source.
type RandomGenerator struct {
	src io.Reader
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{src: rand.Reader}
}

var codeSpan = big.NewInt(MaxCode - MinCode)

func (g *RandomGenerator) Next() (int, error) {
	n, err := rand.Int(g.src, codeSpan)
	if err != nil {
		return 0, err
	}
	return MinCode + int(n.Int64()), nil
}
