package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Token identifiers are 128 bits of CSPRNG output, hex encoded.
const idByteLen = 16

// Generator produces opaque identifiers for issued access tokens.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	var buf [idByteLen]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}
	return hex.EncodeToString(buf[:]), nil
}
