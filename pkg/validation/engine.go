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

// Package validation decides whether a signed association record currently
// holds: timestamp window, revocation state, and per-party signature
// verification under each party's key type.
package validation

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/assoc-x-project/assoc-go/pkg/chain"
	"github.com/assoc-x-project/assoc-go/pkg/record"
	"github.com/assoc-x-project/assoc-go/pkg/verifier"
)

// Clock supplies "now" in unix seconds. Substitutable strictly for
// deterministic testing; production engines use the wall clock.
type Clock func() uint64

// Engine validates signed association records. Zero shared mutable state:
// one engine may serve any number of concurrent Validate calls.
type Engine struct {
	registry *verifier.Registry
	now      Clock
}

// NewEngine creates an Engine with the default verifier registry and the
// wall clock.
func NewEngine() *Engine {
	return NewEngineWithClock(func() uint64 { return uint64(time.Now().Unix()) })
}

// NewEngineWithClock creates an Engine with a caller-supplied clock.
func NewEngineWithClock(now Clock) *Engine {
	return &Engine{
		registry: verifier.NewRegistry(),
		now:      now,
	}
}

// Validate runs the ordered check sequence against a single record,
// short-circuiting on the first failure:
//
//	1. now >= validAt            else NotYetValid
//	2. validUntil window open    else Expired
//	3. revokedAt window open     else Revoked
//	4. initiator signature       else InvalidInitiatorSignature
//	5. approver signature        else InvalidApproverSignature
//
// Every timestamp comparison uses a single "now" snapshot taken once per
// call. An empty signature is skipped, not failed: a record legitimately
// exists with zero, one or two signatures at different lifecycle points,
// and the engine validates whatever is present.
//
// The only hard error is a structurally invalid record (timestamp outside
// the 40-bit range); everything on the verification path folds into the
// verdict.
func (e *Engine) Validate(ctx context.Context, sar *record.SignedAssociation, initiator, approver common.Address, q chain.Query) (Verdict, error) {
	if err := ctx.Err(); err != nil {
		return Verdict{}, fmt.Errorf("context error: %w", err)
	}

	now := e.now()

	if now < sar.ValidAt {
		return Invalid(ReasonNotYetValid), nil
	}
	if sar.ValidUntil != 0 && now >= sar.ValidUntil {
		return Invalid(ReasonExpired), nil
	}
	// revokedAt is an exclusive upper bound, same shape as validUntil.
	if sar.RevokedAt != 0 && now >= sar.RevokedAt {
		return Invalid(ReasonRevoked), nil
	}

	hash, err := sar.Association.Hash()
	if err != nil {
		return Verdict{}, err
	}

	if len(sar.InitiatorSignature) > 0 {
		if v := e.verifySignature(ctx, hash, initiator, sar.InitiatorKeyType, sar.InitiatorSignature, q, ReasonInvalidInitiatorSignature); !v.Valid {
			return v, nil
		}
	}
	if len(sar.ApproverSignature) > 0 {
		if v := e.verifySignature(ctx, hash, approver, sar.ApproverKeyType, sar.ApproverSignature, q, ReasonInvalidApproverSignature); !v.Valid {
			return v, nil
		}
	}

	return Ok, nil
}

// ValidateRecord is Validate with the party addresses taken from the
// record's own interoperable identifiers.
func (e *Engine) ValidateRecord(ctx context.Context, sar *record.SignedAssociation, q chain.Query) (Verdict, error) {
	return e.Validate(ctx, sar, sar.InitiatorAddress(), sar.ApproverAddress(), q)
}

func (e *Engine) verifySignature(ctx context.Context, hash common.Hash, signer common.Address, kt record.KeyType, sig []byte, q chain.Query, failure Reason) Verdict {
	v := e.registry.ForKeyType(kt)
	if v == nil {
		return Invalid(ReasonUnsupportedKeyType)
	}
	if q == nil && verifier.RequiresChain(kt) {
		return Invalid(ReasonChainQueryUnavailable)
	}
	if !v.Verify(ctx, signer, hash, sig, q) {
		return Invalid(failure)
	}
	return Ok
}

// DefaultValidateConcurrency bounds the fan-out of ValidateAll. Each record
// may issue chain queries; an unbounded fan-out would hammer the endpoint.
const DefaultValidateConcurrency = 8

// ValidateAll validates a batch of records concurrently. Records are
// independent, completion is unordered, and verdicts land at the index of
// their record. The first hard error (range error, cancelled context)
// aborts the batch.
func (e *Engine) ValidateAll(ctx context.Context, sars []*record.SignedAssociation, q chain.Query) ([]Verdict, error) {
	verdicts := make([]Verdict, len(sars))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultValidateConcurrency)
	for i, sar := range sars {
		g.Go(func() error {
			v, err := e.ValidateRecord(gctx, sar, q)
			if err != nil {
				return err
			}
			verdicts[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return verdicts, nil
}
