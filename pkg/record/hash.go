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
	"errors"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// ErrTimestampRange is returned when a timestamp does not fit in the 40-bit
// range the hash preimage encodes.
var ErrTimestampRange = errors.New("timestamp exceeds 40-bit range")

// MaxTimestamp is the largest timestamp the hash preimage can carry.
const MaxTimestamp = 1<<40 - 1

const primaryType = "AssociationRecord"

// The EIP-712 domain deliberately carries no chainId: the structured hash,
// and therefore the signature, is valid on every network. Do not add one.
var typedDataDomain = apitypes.TypedDataDomain{
	Name:    "AssociatedAccounts",
	Version: "1",
}

var typedDataTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
	},
	primaryType: {
		{Name: "initiator", Type: "bytes"},
		{Name: "approver", Type: "bytes"},
		{Name: "validAt", Type: "uint40"},
		{Name: "validUntil", Type: "uint40"},
		{Name: "interfaceId", Type: "bytes4"},
		{Name: "data", Type: "bytes"},
	},
}

// Hash computes the domain-separated EIP-712 structured hash of the record.
// These are the exact bytes each party signs, and the record's identity in
// both the on-chain store and the off-chain index.
//
// ValidAt and ValidUntil are carried as 64-bit values in memory but encoded
// as uint40 in the preimage; values outside that range are a hard error,
// the only hard error on the hashing path.
func (a *Association) Hash() (common.Hash, error) {
	if a.ValidAt > MaxTimestamp {
		return common.Hash{}, fmt.Errorf("validAt %d: %w", a.ValidAt, ErrTimestampRange)
	}
	if a.ValidUntil > MaxTimestamp {
		return common.Hash{}, fmt.Errorf("validUntil %d: %w", a.ValidUntil, ErrTimestampRange)
	}

	typedData := apitypes.TypedData{
		Types:       typedDataTypes,
		PrimaryType: primaryType,
		Domain:      typedDataDomain,
		Message: apitypes.TypedDataMessage{
			"initiator":   hexutil.Encode(a.Initiator),
			"approver":    hexutil.Encode(a.Approver),
			"validAt":     strconv.FormatUint(a.ValidAt, 10),
			"validUntil":  strconv.FormatUint(a.ValidUntil, 10),
			"interfaceId": hexutil.Encode(a.InterfaceID[:]),
			"data":        hexutil.Encode(a.Data),
		},
	}

	digest, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return common.Hash{}, fmt.Errorf("hash association record: %w", err)
	}
	return common.BytesToHash(digest), nil
}
