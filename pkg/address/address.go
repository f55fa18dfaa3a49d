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

// Package address converts between chain-qualified binary account
// identifiers (interoperable addresses) and plain EVM addresses.
//
// An interoperable address is a versioned byte string whose last 20 bytes
// are the EVM address, preceded by a version, chain-type and chain-reference
// prefix. Extraction only ever looks at the trailing bytes, so a decoder
// never needs to understand the prefix of a newer encoding version.
package address

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Encoding prefix layout: version (2) || chainType (2) || chainRefLen (1) ||
// chainRef || addrLen (1) || addr.
const (
	encodingVersion = 0x0001

	// chainTypeEIP155 tags an EVM chain referenced by its EIP-155 chain id.
	chainTypeEIP155 = 0x0000
)

// Extract returns the EVM address carried by an interoperable address: its
// last 20 bytes. Inputs shorter than 20 bytes are treated verbatim as a raw
// address, right-aligned, rather than rejected; callers at the validation
// boundary deal with addresses from many encoders and a lenient decode
// degrades to a signature mismatch instead of a hard failure.
func Extract(binaryID []byte) common.Address {
	if len(binaryID) < common.AddressLength {
		return common.BytesToAddress(binaryID)
	}
	return common.BytesToAddress(binaryID[len(binaryID)-common.AddressLength:])
}

// ToBinary builds the chain-qualified interoperable encoding of addr.
// A nil chainID encodes an empty chain reference. Extract(ToBinary(a, id))
// round-trips for every address.
func ToBinary(addr common.Address, chainID *big.Int) []byte {
	var chainRef []byte
	if chainID != nil {
		chainRef = chainID.Bytes()
	}

	out := make([]byte, 0, 6+len(chainRef)+common.AddressLength)
	out = append(out, byte(encodingVersion>>8), byte(encodingVersion))
	out = append(out, byte(chainTypeEIP155>>8), byte(chainTypeEIP155))
	out = append(out, byte(len(chainRef)))
	out = append(out, chainRef...)
	out = append(out, byte(common.AddressLength))
	out = append(out, addr.Bytes()...)
	return out
}

// Equal compares two hex address strings case-insensitively. Address
// comparison throughout the library goes through here or through
// common.Address equality; never through raw string comparison.
func Equal(a, b string) bool {
	return strings.EqualFold(strings.TrimPrefix(a, "0x"), strings.TrimPrefix(b, "0x"))
}
