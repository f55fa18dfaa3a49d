package store

import (
	"context"
	"crypto/ecdsa"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assoc-x-project/assoc-go/pkg/address"
	"github.com/assoc-x-project/assoc-go/pkg/record"
)

func completeRecord(t *testing.T, initiator, approver *ecdsa.PrivateKey) *record.SignedAssociation {
	t.Helper()
	sar := &record.SignedAssociation{
		Association: record.Association{
			Initiator:   address.ToBinary(crypto.PubkeyToAddress(initiator.PublicKey), nil),
			Approver:    address.ToBinary(crypto.PubkeyToAddress(approver.PublicKey), nil),
			ValidAt:     1000,
			ValidUntil:  0,
			InterfaceID: [4]byte{1, 2, 3, 4},
		},
		InitiatorKeyType: record.KeyTypeK1,
		ApproverKeyType:  record.KeyTypeK1,
	}
	hash, err := sar.Association.Hash()
	require.NoError(t, err)
	sar.InitiatorSignature, err = crypto.Sign(hash.Bytes(), initiator)
	require.NoError(t, err)
	sar.ApproverSignature, err = crypto.Sign(hash.Bytes(), approver)
	require.NoError(t, err)
	return sar
}

func revocationSig(t *testing.T, key *ecdsa.PrivateKey, sar *record.SignedAssociation, at uint64) []byte {
	t.Helper()
	hash, err := sar.Association.Hash()
	require.NoError(t, err)
	sig, err := crypto.Sign(record.RevocationDigest(hash, at), key)
	require.NoError(t, err)
	return sig
}

func TestPutAndGet(t *testing.T) {
	initiator, _ := crypto.GenerateKey()
	approver, _ := crypto.GenerateKey()
	sar := completeRecord(t, initiator, approver)
	s := NewMemoryStore(nil)

	stored, err := s.Put(context.Background(), sar)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)

	got, err := s.Get(context.Background(), stored.Hash)
	require.NoError(t, err)
	assert.Same(t, sar, got.Record)

	t.Run("duplicate rejected", func(t *testing.T) {
		_, err := s.Put(context.Background(), sar)
		assert.ErrorIs(t, err, ErrDuplicateRecord)
	})

	t.Run("unknown hash", func(t *testing.T) {
		_, err := s.Get(context.Background(), [32]byte{0xff})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPutRejectsIncomplete(t *testing.T) {
	initiator, _ := crypto.GenerateKey()
	approver, _ := crypto.GenerateKey()
	sar := completeRecord(t, initiator, approver)
	sar.ApproverSignature = nil

	s := NewMemoryStore(nil)
	_, err := s.Put(context.Background(), sar)
	assert.ErrorIs(t, err, ErrIncompleteRecord)
}

func TestList(t *testing.T) {
	initiator, _ := crypto.GenerateKey()
	approver, _ := crypto.GenerateKey()
	other, _ := crypto.GenerateKey()

	s := NewMemoryStore(nil)
	_, err := s.Put(context.Background(), completeRecord(t, initiator, approver))
	require.NoError(t, err)
	_, err = s.Put(context.Background(), completeRecord(t, initiator, other))
	require.NoError(t, err)

	records, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRevoke(t *testing.T) {
	initiator, _ := crypto.GenerateKey()
	approver, _ := crypto.GenerateKey()

	setup := func(t *testing.T) (*MemoryStore, *StoredRecord, *record.SignedAssociation) {
		sar := completeRecord(t, initiator, approver)
		s := NewMemoryStore(nil)
		stored, err := s.Put(context.Background(), sar)
		require.NoError(t, err)
		return s, stored, sar
	}

	t.Run("initiator revokes", func(t *testing.T) {
		s, stored, sar := setup(t)
		sig := revocationSig(t, initiator, sar, 5000)
		require.NoError(t, s.Revoke(context.Background(), stored.Hash, 5000, sig))
		assert.Equal(t, uint64(5000), sar.RevokedAt)
	})

	t.Run("approver revokes", func(t *testing.T) {
		s, stored, sar := setup(t)
		sig := revocationSig(t, approver, sar, 5000)
		require.NoError(t, s.Revoke(context.Background(), stored.Hash, 5000, sig))
		assert.Equal(t, uint64(5000), sar.RevokedAt)
	})

	t.Run("third party rejected", func(t *testing.T) {
		s, stored, sar := setup(t)
		stranger, _ := crypto.GenerateKey()
		sig := revocationSig(t, stranger, sar, 5000)
		err := s.Revoke(context.Background(), stored.Hash, 5000, sig)
		assert.ErrorIs(t, err, ErrUnauthorizedRevocation)
		assert.Zero(t, sar.RevokedAt)
	})

	t.Run("signature over different timestamp rejected", func(t *testing.T) {
		s, stored, sar := setup(t)
		sig := revocationSig(t, initiator, sar, 5000)
		err := s.Revoke(context.Background(), stored.Hash, 6000, sig)
		assert.ErrorIs(t, err, ErrUnauthorizedRevocation)
	})

	t.Run("revocation only moves earlier", func(t *testing.T) {
		s, stored, sar := setup(t)
		require.NoError(t, s.Revoke(context.Background(), stored.Hash, 5000, revocationSig(t, initiator, sar, 5000)))

		// Not later than the existing one: rejected.
		err := s.Revoke(context.Background(), stored.Hash, 5000, revocationSig(t, approver, sar, 5000))
		assert.ErrorIs(t, err, ErrRevocationConflict)
		err = s.Revoke(context.Background(), stored.Hash, 7000, revocationSig(t, approver, sar, 7000))
		assert.ErrorIs(t, err, ErrRevocationConflict)

		// Strictly earlier: accepted.
		require.NoError(t, s.Revoke(context.Background(), stored.Hash, 4000, revocationSig(t, approver, sar, 4000)))
		assert.Equal(t, uint64(4000), sar.RevokedAt)
	})

	t.Run("zero timestamp rejected", func(t *testing.T) {
		s, stored, sar := setup(t)
		err := s.Revoke(context.Background(), stored.Hash, 0, revocationSig(t, initiator, sar, 0))
		assert.ErrorIs(t, err, record.ErrTimestampRange)
	})

	t.Run("unknown record", func(t *testing.T) {
		s, _, sar := setup(t)
		err := s.Revoke(context.Background(), [32]byte{0xee}, 5000, revocationSig(t, initiator, sar, 5000))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
