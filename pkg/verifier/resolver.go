package verifier

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/assoc-x-project/assoc-go/pkg/chain"
	"github.com/assoc-x-project/assoc-go/pkg/record"
)

// KeyTypeResolver classifies which verification scheme applies to a
// signature/signer pair. The key type is a property of how the message was
// signed, so resolution necessarily happens after the signature exists;
// callers must not assume it is known before signing completes.
type KeyTypeResolver interface {
	Resolve(ctx context.Context, signer common.Address, sig []byte, q chain.Query) record.KeyType
}

// DefaultKeyTypeResolver resolves by structure first, chain state second:
//
//  1. wrapper magic suffix present      -> ERC6492
//  2. signer has deployed contract code -> ERC1271
//  3. otherwise                         -> K1
//
// The wrapper check outranks code presence. It is structurally unambiguous,
// while code presence can be a false signal for a wallet that signed before
// it was (re)deployed.
type DefaultKeyTypeResolver struct{}

// NewDefaultKeyTypeResolver creates a new DefaultKeyTypeResolver.
func NewDefaultKeyTypeResolver() *DefaultKeyTypeResolver {
	return &DefaultKeyTypeResolver{}
}

// Resolve implements KeyTypeResolver. It never fails: a failed or missing
// code query reads as "no code" and falls through to K1.
func (r *DefaultKeyTypeResolver) Resolve(ctx context.Context, signer common.Address, sig []byte, q chain.Query) record.KeyType {
	if IsWrapped(sig) {
		return record.KeyTypeERC6492
	}
	if chain.HasCode(ctx, q, signer) {
		return record.KeyTypeERC1271
	}
	return record.KeyTypeK1
}
