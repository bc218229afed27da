package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
)

func TestNewPrincipal(t *testing.T) {
	t.Run("normalizes username", func(t *testing.T) {
		p, err := NewPrincipal("  Magnus_C ", "token")
		require.NoError(t, err)
		assert.Equal(t, "magnus_c", p.Username)
		assert.Equal(t, "token", p.AccessToken)
	})

	t.Run("rejects empty token", func(t *testing.T) {
		_, err := NewPrincipal("alice", "")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("rejects invalid username", func(t *testing.T) {
		_, err := NewPrincipal("a", "token")
		assert.ErrorIs(t, err, errs.ErrInvalidUsername)
	})
}

func TestValidateUsername(t *testing.T) {
	valid := []string{"ab", "alice", "bob-99", "under_score", "x123456789012345678901234567890"[:30]}
	for _, name := range valid {
		assert.NoError(t, ValidateUsername(name), name)
	}

	invalid := []string{"", "a", "has space", "semi;colon", "ünicode", "x1234567890123456789012345678901"}
	for _, name := range invalid {
		err := ValidateUsername(name)
		assert.ErrorIs(t, err, errs.ErrInvalidUsername, name)
		assert.ErrorIs(t, err, errs.ErrValidation, name)
	}
}
