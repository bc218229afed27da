package secret

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestRandomGenerator_Preimage(t *testing.T) {
	gen := NewRandomGenerator()

	first, err := gen.Preimage()
	require.NoError(t, err)
	assert.Len(t, first, PreimageSize)

	second, err := gen.Preimage()
	require.NoError(t, err)
	assert.False(t, bytes.Equal(first, second))
}

func TestRandomGenerator_SourceFailure(t *testing.T) {
	gen := &RandomGenerator{source: failingReader{}}

	preimage, err := gen.Preimage()

	assert.Nil(t, preimage)
	assert.ErrorContains(t, err, "entropy exhausted")
}
