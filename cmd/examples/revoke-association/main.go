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
	"fmt"
	"log"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/assoc-x-project/assoc-go/pkg/address"
	"github.com/assoc-x-project/assoc-go/pkg/record"
	"github.com/assoc-x-project/assoc-go/pkg/store"
	"github.com/assoc-x-project/assoc-go/pkg/validation"
)

// This example stores a complete association in the off-chain index and
// revokes it with an authenticated revocation message.
func main() {
	fmt.Println("=== Revoke Association Example ===")
	fmt.Println()

	ctx := context.Background()
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	initiatorKey, _ := crypto.GenerateKey()
	approverKey, _ := crypto.GenerateKey()
	initiatorAddr := crypto.PubkeyToAddress(initiatorKey.PublicKey)
	approverAddr := crypto.PubkeyToAddress(approverKey.PublicKey)

	sar := &record.SignedAssociation{
		Association: record.Association{
			Initiator:   address.ToBinary(initiatorAddr, nil),
			Approver:    address.ToBinary(approverAddr, nil),
			ValidAt:     uint64(time.Now().Unix()),
			InterfaceID: [4]byte{0x00, 0x00, 0x00, 0x01},
		},
		InitiatorKeyType: record.KeyTypeK1,
		ApproverKeyType:  record.KeyTypeK1,
	}

	hash, err := sar.Association.Hash()
	if err != nil {
		log.Fatal(err)
	}
	sar.InitiatorSignature, _ = crypto.Sign(hash.Bytes(), initiatorKey)
	sar.ApproverSignature, _ = crypto.Sign(hash.Bytes(), approverKey)

	// Step 1: Persist the complete record.
	idx := store.NewMemoryStore(logger)
	stored, err := idx.Put(ctx, sar)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Step 1: Stored\n  id:   %s\n  hash: %s\n\n", stored.ID, stored.Hash.Hex())

	// Step 2: The approver authorizes the revocation by signing the
	// literal revocation message for this record and timestamp.
	revokedAt := uint64(time.Now().Unix())
	fmt.Printf("Step 2: Message to sign\n  %q\n\n", record.RevocationMessage(hash, revokedAt))

	revSig, err := crypto.Sign(record.RevocationDigest(hash, revokedAt), approverKey)
	if err != nil {
		log.Fatal(err)
	}
	if err := idx.Revoke(ctx, hash, revokedAt, revSig); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Step 3: Revoked")

	// Step 4: Validation now reports the revocation.
	engine := validation.NewEngineWithClock(func() uint64 { return revokedAt + 10 })
	verdict, err := engine.Validate(ctx, sar, initiatorAddr, approverAddr, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Step 4: Verdict\n  valid: %v, reason: %s\n\n", verdict.Valid, verdict.Reason)

	// Step 5: A second revocation may only move the timestamp earlier.
	laterSig, _ := crypto.Sign(record.RevocationDigest(hash, revokedAt+100), initiatorKey)
	err = idx.Revoke(ctx, hash, revokedAt+100, laterSig)
	fmt.Printf("Step 5: Later re-revocation rejected\n  %v\n", err)
}
