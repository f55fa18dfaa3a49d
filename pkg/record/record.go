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

package record

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/assoc-x-project/assoc-go/pkg/address"
)

// Association is the unsigned claim that two accounts are controlled by the
// same entity. It is immutable once signed; its identity is the structured
// hash returned by Hash.
type Association struct {
	// Initiator is the interoperable (chain-qualified binary) identifier
	// of the account that created the claim.
	Initiator []byte

	// Approver is the interoperable identifier of the counterparty.
	Approver []byte

	// ValidAt is the earliest instant (unix seconds) at which the
	// association holds. Must fit in 40 bits.
	ValidAt uint64

	// ValidUntil is the exclusive upper bound of validity, or 0 for
	// unbounded. Must fit in 40 bits.
	ValidUntil uint64

	// InterfaceID is a 4-byte application-defined tag.
	InterfaceID [4]byte

	// Data is opaque application payload.
	Data []byte
}

// InitiatorAddress returns the plain EVM address of the initiator.
func (a *Association) InitiatorAddress() common.Address {
	return address.Extract(a.Initiator)
}

// ApproverAddress returns the plain EVM address of the approver.
func (a *Association) ApproverAddress() common.Address {
	return address.Extract(a.Approver)
}

// PairKey returns the canonical account-pair key for the record: both plain
// addresses lowercased, sorted, and joined. Two records between the same two
// accounts always produce the same key regardless of which side initiated.
func (a *Association) PairKey() string {
	return PairKey(a.InitiatorAddress(), a.ApproverAddress())
}

// PairKey builds the canonical key for an account pair.
func PairKey(x, y common.Address) string {
	a := strings.ToLower(x.Hex())
	b := strings.ToLower(y.Hex())
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}

// SignedAssociation wraps an Association with its signatures and revocation
// state. Signatures attach incrementally: the initiator signs first, then
// the approver; a record with zero or one signature is a legitimate
// intermediate state. RevokedAt is the only field that may change after
// both signatures exist, and it only ever moves toward earlier values once
// set (see the store package for the conflict rule).
type SignedAssociation struct {
	Association

	// RevokedAt is the instant revocation takes effect (exclusive upper
	// bound, same shape as ValidUntil), or 0 if not revoked.
	RevokedAt uint64

	// InitiatorKeyType tags the scheme of the initiator signature.
	InitiatorKeyType KeyType

	// ApproverKeyType tags the scheme of the approver signature.
	ApproverKeyType KeyType

	InitiatorSignature []byte
	ApproverSignature  []byte
}

// Complete reports whether both parties have signed. Only complete records
// are accepted for persistence.
func (s *SignedAssociation) Complete() bool {
	return len(s.InitiatorSignature) > 0 && len(s.ApproverSignature) > 0
}
