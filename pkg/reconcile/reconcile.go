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

// Package reconcile merges association records from the authoritative
// on-chain store and the mutable off-chain index into one deduplicated,
// validity-annotated set.
package reconcile

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/assoc-x-project/assoc-go/pkg/chain"
	"github.com/assoc-x-project/assoc-go/pkg/record"
	"github.com/assoc-x-project/assoc-go/pkg/validation"
)

// Source tags where an entry came from.
type Source string

const (
	// SourceOnChain marks the authoritative on-chain store.
	SourceOnChain Source = "onchain"

	// SourceOffChain marks the mutable off-chain index.
	SourceOffChain Source = "offchain"
)

// Entry is one fully-validated record tagged with its account-pair key and
// origin.
type Entry struct {
	Record  *record.SignedAssociation
	Verdict validation.Verdict
	PairKey string
	Source  Source
}

// Merge deduplicates entries by account-pair key. An on-chain entry always
// wins over an off-chain entry for the same pair: the on-chain store is the
// harder-to-forge, canonical source. An entry is kept whole; fields are
// never merged across sources. Output is ordered by pair key for
// deterministic results.
func Merge(onchain, offchain []Entry) []Entry {
	byPair := make(map[string]Entry, len(onchain)+len(offchain))
	for _, e := range offchain {
		byPair[e.PairKey] = e
	}
	for _, e := range onchain {
		byPair[e.PairKey] = e
	}

	merged := make([]Entry, 0, len(byPair))
	for _, e := range byPair {
		merged = append(merged, e)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].PairKey < merged[j].PairKey })
	return merged
}

// Reconciler validates both collections through the engine and merges the
// results.
type Reconciler struct {
	engine *validation.Engine
	logger *zap.Logger
}

// NewReconciler creates a Reconciler. A nil logger disables logging.
func NewReconciler(engine *validation.Engine, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{engine: engine, logger: logger}
}

// Reconcile validates every record from each source and returns the merged
// set. Validation of individual records is concurrent and unordered; only
// structurally invalid records (40-bit range violations) abort the run.
func (r *Reconciler) Reconcile(ctx context.Context, onchain, offchain []*record.SignedAssociation, q chain.Query) ([]Entry, error) {
	onchainEntries, err := r.validateAll(ctx, onchain, SourceOnChain, q)
	if err != nil {
		return nil, err
	}
	offchainEntries, err := r.validateAll(ctx, offchain, SourceOffChain, q)
	if err != nil {
		return nil, err
	}

	merged := Merge(onchainEntries, offchainEntries)
	r.logger.Debug("reconciled association records",
		zap.Int("onchain", len(onchainEntries)),
		zap.Int("offchain", len(offchainEntries)),
		zap.Int("merged", len(merged)),
	)
	return merged, nil
}

func (r *Reconciler) validateAll(ctx context.Context, sars []*record.SignedAssociation, src Source, q chain.Query) ([]Entry, error) {
	verdicts, err := r.engine.ValidateAll(ctx, sars, q)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(sars))
	for i, sar := range sars {
		entries[i] = Entry{
			Record:  sar,
			Verdict: verdicts[i],
			PairKey: sar.PairKey(),
			Source:  src,
		}
	}
	return entries, nil
}
