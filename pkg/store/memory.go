package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/assoc-x-project/assoc-go/pkg/record"
	"github.com/assoc-x-project/assoc-go/pkg/verifier"
)

// MemoryStore is an in-memory Store, the reference implementation of the
// index contract and the backend for tests and examples.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[common.Hash]*StoredRecord
	logger  *zap.Logger
}

// NewMemoryStore creates an empty MemoryStore. A nil logger disables
// logging.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryStore{
		records: make(map[common.Hash]*StoredRecord),
		logger:  logger,
	}
}

// Put stores a complete record under its structured hash.
func (s *MemoryStore) Put(ctx context.Context, sar *record.SignedAssociation) (*StoredRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if !sar.Complete() {
		return nil, ErrIncompleteRecord
	}
	hash, err := sar.Association.Hash()
	if err != nil {
		return nil, fmt.Errorf("failed to hash record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[hash]; exists {
		return nil, ErrDuplicateRecord
	}
	stored := &StoredRecord{
		ID:       uuid.NewString(),
		Hash:     hash,
		Record:   sar,
		StoredAt: time.Now(),
	}
	s.records[hash] = stored

	s.logger.Info("stored association record",
		zap.String("id", stored.ID),
		zap.String("hash", hash.Hex()),
		zap.String("pair", sar.PairKey()),
	)
	return stored, nil
}

// Get returns the record stored under hash.
func (s *MemoryStore) Get(ctx context.Context, hash common.Hash) (*StoredRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.records[hash]
	if !ok {
		return nil, ErrNotFound
	}
	return stored, nil
}

// List returns all stored records ordered by storage time.
func (s *MemoryStore) List(ctx context.Context) ([]*StoredRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*StoredRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StoredAt.Before(out[j].StoredAt) })
	return out, nil
}

// Revoke applies an authenticated revocation to the record stored under
// hash. The signature must recover to one of the record's two parties over
// the revocation message for exactly this hash and timestamp, and a
// non-zero existing revokedAt must be strictly later than revokedAt.
// revokedAt never resets to zero.
func (s *MemoryStore) Revoke(ctx context.Context, hash common.Hash, revokedAt uint64, sig []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if revokedAt == 0 || revokedAt > record.MaxTimestamp {
		return fmt.Errorf("revokedAt %d: %w", revokedAt, record.ErrTimestampRange)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.records[hash]
	if !ok {
		return ErrNotFound
	}

	digest := record.RevocationDigest(hash, revokedAt)
	signer, ok := verifier.RecoverSigner(common.BytesToHash(digest), sig)
	if !ok {
		return ErrUnauthorizedRevocation
	}
	sar := stored.Record
	if signer != sar.InitiatorAddress() && signer != sar.ApproverAddress() {
		return ErrUnauthorizedRevocation
	}

	if sar.RevokedAt != 0 && sar.RevokedAt <= revokedAt {
		return ErrRevocationConflict
	}
	sar.RevokedAt = revokedAt

	s.logger.Info("revoked association record",
		zap.String("id", stored.ID),
		zap.String("hash", hash.Hex()),
		zap.Uint64("revokedAt", revokedAt),
		zap.String("by", signer.Hex()),
	)
	return nil
}
