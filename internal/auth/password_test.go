package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	require.True(t, h.Matches(hash, "secret1"))
	require.False(t, h.Matches(hash, "secret2"))
	require.False(t, h.Matches("not-a-hash", "secret1"))
}

func TestPasswordHasher_costFloor(t *testing.T) {
	h := NewPasswordHasher(4)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, MinCost, cost)
}

func TestPasswordHasher_tooLong(t *testing.T) {
	h := NewPasswordHasher(MinCost)

	_, err := h.Hash(strings.Repeat("x", MaxPasswordBytes+1))
	require.ErrorIs(t, err, ErrPasswordTooLong)

	// the limit is in bytes, not characters
	_, err = h.Hash(strings.Repeat("é", 40))
	require.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = h.Hash(strings.Repeat("x", MaxPasswordBytes))
	require.NoError(t, err)
}
