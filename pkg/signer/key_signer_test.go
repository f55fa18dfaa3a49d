package signer

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assoc-x-project/assoc-go/pkg/address"
	"github.com/assoc-x-project/assoc-go/pkg/record"
	"github.com/assoc-x-project/assoc-go/pkg/verifier"
)

func TestKeySignerSignRecord(t *testing.T) {
	s, err := GenerateKeySigner()
	require.NoError(t, err)
	assert.Equal(t, record.KeyTypeK1, s.KeyType())

	aar := &record.Association{
		Initiator:   address.ToBinary(s.Address(), nil),
		Approver:    address.ToBinary(common.HexToAddress("0x02"), nil),
		ValidAt:     1000,
		InterfaceID: [4]byte{1, 2, 3, 4},
	}

	sig, err := s.SignRecord(context.Background(), aar)
	require.NoError(t, err)

	hash, err := aar.Hash()
	require.NoError(t, err)
	recovered, ok := verifier.RecoverSigner(hash, sig)
	require.True(t, ok)
	assert.Equal(t, s.Address(), recovered)
}

func TestKeySignerSignRevocation(t *testing.T) {
	s, err := GenerateKeySigner()
	require.NoError(t, err)

	id := common.HexToHash("0xab")
	sig, err := s.SignRevocation(context.Background(), id, 4242)
	require.NoError(t, err)

	digest := record.RevocationDigest(id, 4242)
	recovered, ok := verifier.RecoverSigner(common.BytesToHash(digest), sig)
	require.True(t, ok)
	assert.Equal(t, s.Address(), recovered)
}

func TestKeySignerHardErrors(t *testing.T) {
	s, err := GenerateKeySigner()
	require.NoError(t, err)

	t.Run("range error surfaces", func(t *testing.T) {
		aar := &record.Association{ValidAt: record.MaxTimestamp + 1}
		_, err := s.SignRecord(context.Background(), aar)
		assert.ErrorIs(t, err, record.ErrTimestampRange)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.SignRecord(ctx, &record.Association{})
		assert.Error(t, err)
	})
}
