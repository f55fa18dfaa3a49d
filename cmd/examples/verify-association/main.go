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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/assoc-x-project/assoc-go/pkg/address"
	"github.com/assoc-x-project/assoc-go/pkg/record"
	"github.com/assoc-x-project/assoc-go/pkg/validation"
	"github.com/assoc-x-project/assoc-go/pkg/verifier"
)

// This example builds an association between two plain-key accounts, signs
// it with both keys, and validates it.
func main() {
	fmt.Println("=== Verify Association Example ===")
	fmt.Println()

	ctx := context.Background()

	// Step 1: Two throwaway accounts.
	initiatorKey, err := crypto.GenerateKey()
	if err != nil {
		log.Fatal(err)
	}
	approverKey, err := crypto.GenerateKey()
	if err != nil {
		log.Fatal(err)
	}
	initiatorAddr := crypto.PubkeyToAddress(initiatorKey.PublicKey)
	approverAddr := crypto.PubkeyToAddress(approverKey.PublicKey)
	fmt.Printf("Step 1: Accounts\n  initiator: %s\n  approver:  %s\n\n", initiatorAddr, approverAddr)

	// Step 2: The unsigned claim, valid from now, unbounded.
	sar := &record.SignedAssociation{
		Association: record.Association{
			Initiator:   address.ToBinary(initiatorAddr, nil),
			Approver:    address.ToBinary(approverAddr, nil),
			ValidAt:     uint64(time.Now().Unix()),
			ValidUntil:  0,
			InterfaceID: [4]byte{0x00, 0x00, 0x00, 0x01},
		},
	}

	hash, err := sar.Association.Hash()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Step 2: Structured hash (record identity)\n  %s\n\n", hash.Hex())

	// Step 3: Initiator signs first, then the approver.
	sar.InitiatorSignature, err = crypto.Sign(hash.Bytes(), initiatorKey)
	if err != nil {
		log.Fatal(err)
	}
	sar.ApproverSignature, err = crypto.Sign(hash.Bytes(), approverKey)
	if err != nil {
		log.Fatal(err)
	}

	// Key types are decidable only now that the signatures exist.
	resolver := verifier.NewDefaultKeyTypeResolver()
	sar.InitiatorKeyType = resolver.Resolve(ctx, initiatorAddr, sar.InitiatorSignature, nil)
	sar.ApproverKeyType = resolver.Resolve(ctx, approverAddr, sar.ApproverSignature, nil)
	fmt.Printf("Step 3: Signed\n  initiator key type: %s\n  approver key type:  %s\n\n",
		sar.InitiatorKeyType, sar.ApproverKeyType)

	// Step 4: Validate. No chain query needed for plain keys.
	engine := validation.NewEngine()
	verdict, err := engine.Validate(ctx, sar, initiatorAddr, approverAddr, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Step 4: Verdict\n  valid: %v\n\n", verdict.Valid)

	// Step 5: The wire form that crosses the persistence boundary.
	wire, err := json.MarshalIndent(sar, "  ", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Step 5: Wire format\n  %s\n", wire)
}
