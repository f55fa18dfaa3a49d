package signer

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/assoc-x-project/assoc-go/pkg/record"
)

// KeySigner is a RecordSigner backed by a raw secp256k1 private key.
type KeySigner struct {
	key  *ecdsa.PrivateKey
	addr common.Address
}

// NewKeySigner creates a KeySigner from an existing private key.
func NewKeySigner(key *ecdsa.PrivateKey) *KeySigner {
	return &KeySigner{
		key:  key,
		addr: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// GenerateKeySigner creates a KeySigner with a fresh key, for tests and
// examples.
func GenerateKeySigner() (*KeySigner, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return NewKeySigner(key), nil
}

// SignRecord implements RecordSigner.
func (s *KeySigner) SignRecord(ctx context.Context, aar *record.Association) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	hash, err := aar.Hash()
	if err != nil {
		return nil, fmt.Errorf("failed to hash record: %w", err)
	}
	sig, err := crypto.Sign(hash.Bytes(), s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign record: %w", err)
	}
	return sig, nil
}

// SignRevocation implements RecordSigner.
func (s *KeySigner) SignRevocation(ctx context.Context, id common.Hash, revokedAt uint64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	sig, err := crypto.Sign(record.RevocationDigest(id, revokedAt), s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign revocation: %w", err)
	}
	return sig, nil
}

// Address implements RecordSigner.
func (s *KeySigner) Address() common.Address {
	return s.addr
}

// KeyType implements RecordSigner.
func (s *KeySigner) KeyType() record.KeyType {
	return record.KeyTypeK1
}
