package secret

import (
	"crypto/rand"
	"fmt"
	"io"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
)

// PreimageSize is the length of a Lightning payment preimage
const PreimageSize = 32

// RandomGenerator reads preimages from a cryptographically secure source
type RandomGenerator struct {
	source io.Reader
}

// NewRandomGenerator creates a generator backed by crypto/rand
func NewRandomGenerator() coreport.SecretGenerator {
	return &RandomGenerator{source: rand.Reader}
}

// Preimage implements core.SecretGenerator
func (g *RandomGenerator) Preimage() ([]byte, error) {
	buf := make([]byte, PreimageSize)
	if _, err := io.ReadFull(g.source, buf); err != nil {
		return nil, fmt.Errorf("failed to read preimage: %w", err)
	}
	return buf, nil
}
