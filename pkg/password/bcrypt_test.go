package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher(t *testing.T) {
	h := NewHasher(MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	ok, err := h.Verify(hash, "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Verify("not-a-bcrypt-hash", "s3cret")
	assert.Error(t, err)
}

func TestNewHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, DefaultCost, NewHasher(0).cost)
	assert.Equal(t, DefaultCost, NewHasher(99).cost)
	assert.Equal(t, MinCost, NewHasher(MinCost).cost)
}
