// Copyright (C) 2025 Assoc-X Project
//
// This file is part of assoc-go.
//
// assoc-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// assoc-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with assoc-go.  If not, see <https://www.gnu.org/licenses/>.

// Package store defines the off-chain index contract for signed association
// records: complete records in, authenticated monotonic revocation, records
// out. It deliberately does not define a storage schema; any backend that
// honors the contract is interchangeable.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/assoc-x-project/assoc-go/pkg/record"
)

var (
	// ErrNotFound is returned when no record exists under the given hash.
	ErrNotFound = errors.New("association record not found")

	// ErrIncompleteRecord is returned when a record without both
	// signatures is offered for persistence.
	ErrIncompleteRecord = errors.New("association record is not fully signed")

	// ErrDuplicateRecord is returned when the record hash already exists.
	ErrDuplicateRecord = errors.New("association record already stored")

	// ErrUnauthorizedRevocation is returned when the revocation signature
	// does not recover to either party on the record.
	ErrUnauthorizedRevocation = errors.New("revocation not signed by a record party")

	// ErrRevocationConflict is returned when a record is already revoked
	// at or before the proposed timestamp. Once set, revokedAt only ever
	// moves earlier.
	ErrRevocationConflict = errors.New("existing revocation is not later than proposed")
)

// StoredRecord is a persisted record with its index metadata.
type StoredRecord struct {
	// ID is the store-assigned identifier exposed at the API boundary.
	ID string

	// Hash is the record's structured hash, the lookup key.
	Hash common.Hash

	Record *record.SignedAssociation

	StoredAt time.Time
}

// Store is the off-chain index. Put accepts only complete (both-signed)
// records; Revoke is the single mutation allowed afterwards.
//
// Revoke enforces the authenticated revocation contract: the signature must
// be a plain-key signature over the literal message
// "Revoke association <id> at timestamp <unix-seconds>" (EIP-191 personal
// message) recovering to the record's initiator or approver, and a non-zero
// existing revokedAt must be strictly later than the proposed one.
type Store interface {
	Put(ctx context.Context, sar *record.SignedAssociation) (*StoredRecord, error)
	Get(ctx context.Context, hash common.Hash) (*StoredRecord, error)
	List(ctx context.Context) ([]*StoredRecord, error)
	Revoke(ctx context.Context, hash common.Hash, revokedAt uint64, sig []byte) error
}
