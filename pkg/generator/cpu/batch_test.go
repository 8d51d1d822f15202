package cpu

import (
	"context"
	"crypto/ed25519"
	"errors"
	"testing"

	"github.com/Amr-9/SolHunter/pkg/generator"
	"github.com/Amr-9/SolHunter/pkg/generator/solana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBatch(t *testing.T) {
	kps, err := GenerateBatch(context.Background(), solana.NewSource, 100, 4)
	require.NoError(t, err)
	require.Len(t, kps, 100)

	seen := make(map[string]bool, len(kps))
	for _, kp := range kps {
		require.Len(t, kp.PublicKey, ed25519.PublicKeySize)
		addr := solana.Address(kp)
		assert.False(t, seen[addr], "duplicate %s", addr)
		seen[addr] = true
	}
}

func TestGenerateBatchEdgeCases(t *testing.T) {
	kps, err := GenerateBatch(context.Background(), solana.NewSource, 0, 4)
	require.NoError(t, err)
	assert.Empty(t, kps)

	kps, err = GenerateBatch(context.Background(), solana.NewSource, 3, 16)
	require.NoError(t, err)
	assert.Len(t, kps, 3)

	_, err = GenerateBatch(context.Background(), solana.NewSource, 3, 0)
	require.ErrorIs(t, err, ErrNoWorkers)

	require.NotPanics(t, func() {
		kps, err = GenerateBatch(context.Background(), solana.NewSource, -1, 4)
	})
	require.ErrorIs(t, err, ErrBadBatchSize)
	assert.Nil(t, kps)
}

type failingSource struct{ err error }

func (s failingSource) NewKeypair() (generator.Keypair, error) { return generator.Keypair{}, s.err }

func TestGenerateBatchError(t *testing.T) {
	errBoom := errors.New("boom")
	_, err := GenerateBatch(context.Background(), func() generator.KeySource { return failingSource{errBoom} }, 10, 2)
	require.ErrorIs(t, err, errBoom)
}
