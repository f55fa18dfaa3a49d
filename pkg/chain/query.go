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

// Package chain defines the minimal chain-query capability the verifiers
// consume, plus adapters: an RPC-backed implementation and a caching
// wrapper. The validation core never manages connections or endpoints; it
// takes a Query as an explicit parameter, never as ambient global state.
package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Query is the chain access the signature verifiers need. Any client with
// these three methods is interchangeable; structural conformance is the
// whole contract.
//
// All three are reads. Call is a state-simulating call (eth_call): any side
// effects of the executed code, such as a factory deployment triggered by a
// counterfactual signature wrapper, are visible only for the duration of
// the call and never committed.
type Query interface {
	// CodeAt returns the contract code deployed at addr, or an empty slice
	// for an externally-owned account.
	CodeAt(ctx context.Context, addr common.Address) ([]byte, error)

	// ReadContract executes a view call against a deployed contract.
	ReadContract(ctx context.Context, addr common.Address, calldata []byte) ([]byte, error)

	// Call executes a state-simulating, non-committing call.
	Call(ctx context.Context, addr common.Address, calldata []byte) ([]byte, error)
}

// HasCode reports whether addr currently has deployed contract code. A
// failed code query reads as "no code"; the resolver and verifiers fail
// closed rather than propagate chain errors.
func HasCode(ctx context.Context, q Query, addr common.Address) bool {
	if q == nil {
		return false
	}
	code, err := q.CodeAt(ctx, addr)
	return err == nil && len(code) > 0
}
