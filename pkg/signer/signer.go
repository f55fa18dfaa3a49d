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

// Package signer produces the signatures a party attaches to association
// records: the record signature over the structured hash, and the
// revocation authorization over the literal revocation message.
//
// Production deployments sign through a wallet; this package covers
// server-side holders of a raw key (services, tests, examples).
package signer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/assoc-x-project/assoc-go/pkg/record"
)

// RecordSigner signs association records on behalf of one party.
type RecordSigner interface {
	// SignRecord signs the record's structured hash.
	SignRecord(ctx context.Context, aar *record.Association) ([]byte, error)

	// SignRevocation signs the revocation message for the record id and
	// effective timestamp, authorizing the store to apply the revocation.
	SignRevocation(ctx context.Context, id common.Hash, revokedAt uint64) ([]byte, error)

	// Address is the account the produced signatures recover to.
	Address() common.Address

	// KeyType tags the scheme of the produced signatures.
	KeyType() record.KeyType
}
