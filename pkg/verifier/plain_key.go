package verifier

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/assoc-x-project/assoc-go/pkg/chain"
)

// PlainKeyVerifier verifies standard 65-byte secp256k1 signatures by
// recovering the signer address from the signature and comparing it to the
// claimed signer. It needs no chain access.
type PlainKeyVerifier struct{}

// NewPlainKeyVerifier creates a new PlainKeyVerifier.
func NewPlainKeyVerifier() *PlainKeyVerifier {
	return &PlainKeyVerifier{}
}

// Verify implements SignatureVerifier. The chain query is unused.
func (v *PlainKeyVerifier) Verify(_ context.Context, signer common.Address, hash common.Hash, sig []byte, _ chain.Query) bool {
	recovered, ok := RecoverSigner(hash, sig)
	if !ok {
		return false
	}
	// common.Address equality is byte equality, which subsumes the
	// case-insensitive hex comparison of the wire format.
	return recovered == signer
}

// RecoverSigner recovers the address that produced sig over hash. Wallets
// emit the recovery id as 27/28 while the recovery code expects 0/1; both
// forms are accepted.
func RecoverSigner(hash common.Hash, sig []byte) (common.Address, bool) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, false
	}
	normalized := make([]byte, crypto.SignatureLength)
	copy(normalized, sig)
	if normalized[64] >= 27 {
		normalized[64] -= 27
	}
	if normalized[64] > 1 {
		return common.Address{}, false
	}
	pub, err := crypto.SigToPub(hash.Bytes(), normalized)
	if err != nil {
		return common.Address{}, false
	}
	return crypto.PubkeyToAddress(*pub), true
}
