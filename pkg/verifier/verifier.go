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

package verifier

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/assoc-x-project/assoc-go/pkg/chain"
	"github.com/assoc-x-project/assoc-go/pkg/record"
)

// SignatureVerifier verifies a signature over a record hash against a
// claimed signer. Implementations return false for every failure on the
// verification path, including chain-query errors, reverts, missing code
// and malformed signature bytes; nothing on this path propagates as an
// error. A flaky network degrades to "signature invalid", never to a
// crashed validation.
type SignatureVerifier interface {
	Verify(ctx context.Context, signer common.Address, hash common.Hash, sig []byte, q chain.Query) bool
}

// RequiresChain reports whether verifying the given key type needs chain
// access. Callers without a Query can reject such records up front with a
// typed reason instead of a silent false.
func RequiresChain(kt record.KeyType) bool {
	switch kt {
	case record.KeyTypeERC1271, record.KeyTypeERC6492:
		return true
	default:
		return false
	}
}

// Registry maps key types to their verifier strategy.
type Registry struct {
	plain     *PlainKeyVerifier
	contract  *ContractVerifier
	universal *UniversalVerifier
}

// NewRegistry creates a Registry with the default strategy set and the
// default universal validator contract.
func NewRegistry() *Registry {
	contract := NewContractVerifier()
	return &Registry{
		plain:     NewPlainKeyVerifier(),
		contract:  contract,
		universal: NewUniversalVerifier(contract),
	}
}

// ForKeyType returns the verifier for the key type, or nil when the scheme
// is not implemented. A nil return fails closed upstream: the record is
// invalid with an unsupported-key-type reason.
func (r *Registry) ForKeyType(kt record.KeyType) SignatureVerifier {
	switch kt {
	case record.KeyTypeK1, record.KeyTypeDelegated:
		// DELEGATED is an alias for K1.
		return r.plain
	case record.KeyTypeERC1271:
		return r.contract
	case record.KeyTypeERC6492:
		return r.universal
	default:
		return nil
	}
}
