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

// Package record defines the association record data model, its canonical
// EIP-712 structured hash, and the JSON wire format used at persistence and
// API boundaries.
//
// # Records
//
// An Association is the unsigned claim that two accounts belong together:
//
//	aar := &record.Association{
//	    Initiator:  address.ToBinary(initiator, chainID),
//	    Approver:   address.ToBinary(approver, chainID),
//	    ValidAt:    uint64(time.Now().Unix()),
//	    ValidUntil: 0, // unbounded
//	}
//	hash, err := aar.Hash()
//
// The structured hash is the record's identity and the exact bytes both
// parties sign. A SignedAssociation wraps the claim with the two signatures,
// their key-type tags, and the revocation state.
//
// # Chain-agnostic hashing
//
// The EIP-712 domain is {name: "AssociatedAccounts", version: "1"} with no
// chainId field. The same signature therefore verifies on every network,
// regardless of which chain the signer's wallet was connected to. Adding a
// chainId to the domain would break cross-chain verification; do not.
//
// # Wire format
//
// Both record types marshal to JSON with hex strings for byte fields and
// decimal strings for the 40-bit timestamps, so values survive JSON number
// precision limits in every consumer:
//
//	{"initiator":"0x…","validAt":"1700000000","validUntil":"0",…}
package record
