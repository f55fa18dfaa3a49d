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

// Package verifier implements multi-scheme signature verification for
// association records, covering three fundamentally different signer types:
// plain keys, deployed smart-contract accounts, and not-yet-deployed
// smart-contract accounts.
//
// # Strategies
//
// All three verifiers share one interface and are interchangeable:
//
//	registry := verifier.NewRegistry()
//	v := registry.ForKeyType(record.KeyTypeK1)
//	ok := v.Verify(ctx, signer, recordHash, sig, query)
//
//   - PlainKeyVerifier recovers a secp256k1 address from a 65-byte
//     signature and compares it to the claimed signer.
//   - ContractVerifier calls isValidSignature(bytes32,bytes) on the signer
//     and checks for the 0x1626ba7e magic return.
//   - UniversalVerifier handles wrapped counterfactual signatures through
//     the universal validator contract, simulating the wallet's deployment
//     inside a single non-committing call.
//
// # Key-type resolution
//
// The resolver classifies a signature/signer pair in strict priority order:
// wrapper magic suffix, then deployed code, then plain key:
//
//	resolver := verifier.NewDefaultKeyTypeResolver()
//	kt := resolver.Resolve(ctx, signer, sig, query)
//
// # Failure model
//
// Nothing on the verification path returns an error. Reverts, missing code,
// malformed wrapper bytes, ABI mismatches and RPC failures all collapse to
// a boolean false, so an unreliable endpoint degrades to "signature
// invalid" rather than aborting validation. Timeout, retry and cancellation
// policy belong to the caller through the context and the injected chain
// query.
package verifier
