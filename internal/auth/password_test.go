package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasherRoundtrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", digest)

	assert.True(t, h.Compare(digest, "secret1"))
	assert.False(t, h.Compare(digest, "secret2"))
	assert.False(t, h.Compare(digest, ""))
}

func TestHasherSaltsPerPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("same password")
	require.NoError(t, err)
	b, err := h.Hash("same password")
	require.NoError(t, err)

	// Salts are random per digest, so equal passwords hash differently.
	assert.NotEqual(t, a, b)
	assert.True(t, h.Compare(a, "same password"))
	assert.True(t, h.Compare(b, "same password"))
}

func TestHasherCostEmbedded(t *testing.T) {
	h := NewHasher(5)

	digest, err := h.Hash("x")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestHasherRejectsBogusCost(t *testing.T) {
	h := NewHasher(99)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewHasher(-1)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestCompareGarbageDigest(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	assert.False(t, h.Compare("not a bcrypt digest", "whatever"))
}
