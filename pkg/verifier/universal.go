package verifier

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/assoc-x-project/assoc-go/pkg/chain"
)

// WrapperMagicSuffix is the fixed 32-byte suffix tagging a wrapped,
// counterfactual signature. The tag is purely structural: a signature is
// wrapped iff its last 32 bytes equal this value, independent of any chain
// state.
var WrapperMagicSuffix = common.HexToHash("0x6492649264926492649264926492649264926492649264926492649264926492")

// DefaultUniversalValidator is the canonical deployment address of the
// universal signature validator contract used for counterfactual
// verification.
var DefaultUniversalValidator = common.HexToAddress("0x164af34fAF9879394370C7f09064127C043A35E9")

var (
	// (address factory, bytes factoryCalldata, bytes signature)
	wrapperArgs = abi.Arguments{{Type: addressType}, {Type: bytesType}, {Type: bytesType}}

	// isValidSig(address signer, bytes32 hash, bytes signature) returns (bool)
	isValidSigSelector = crypto.Keccak256([]byte("isValidSig(address,bytes32,bytes)"))[:4]
	isValidSigArgs     = abi.Arguments{{Type: addressType}, {Type: bytes32Type}, {Type: bytesType}}
)

// Wrapper is the decoded form of a counterfactual signature: deployment
// instructions bundled with the inner signature the account will validate
// once its code exists.
type Wrapper struct {
	Factory         common.Address
	FactoryCalldata []byte
	Signature       []byte
}

// IsWrapped reports whether sig carries the wrapper magic suffix.
func IsWrapped(sig []byte) bool {
	if len(sig) < common.HashLength {
		return false
	}
	return bytes.Equal(sig[len(sig)-common.HashLength:], WrapperMagicSuffix[:])
}

// Wrap encodes a counterfactual signature wrapper and appends the magic
// suffix. Unwrap(Wrap(w)) reproduces w exactly.
func Wrap(w Wrapper) ([]byte, error) {
	packed, err := wrapperArgs.Pack(w.Factory, w.FactoryCalldata, w.Signature)
	if err != nil {
		return nil, fmt.Errorf("failed to encode signature wrapper: %w", err)
	}
	return append(packed, WrapperMagicSuffix[:]...), nil
}

// Unwrap decodes a wrapped signature back into its parts.
func Unwrap(sig []byte) (Wrapper, error) {
	if !IsWrapped(sig) {
		return Wrapper{}, fmt.Errorf("signature does not carry the wrapper magic suffix")
	}
	values, err := wrapperArgs.Unpack(sig[:len(sig)-common.HashLength])
	if err != nil {
		return Wrapper{}, fmt.Errorf("failed to decode signature wrapper: %w", err)
	}
	w := Wrapper{}
	var ok bool
	if w.Factory, ok = values[0].(common.Address); !ok {
		return Wrapper{}, fmt.Errorf("malformed wrapper factory field")
	}
	if w.FactoryCalldata, ok = values[1].([]byte); !ok {
		return Wrapper{}, fmt.Errorf("malformed wrapper calldata field")
	}
	if w.Signature, ok = values[2].([]byte); !ok {
		return Wrapper{}, fmt.Errorf("malformed wrapper signature field")
	}
	return w, nil
}

// UniversalVerifier verifies counterfactual signatures for contract
// accounts that may not be deployed yet. The signature bundles the factory
// deployment instructions; the universal validator contract simulates the
// deployment and asks the resulting account to validate the inner
// signature, all inside one non-committing call.
type UniversalVerifier struct {
	contract *ContractVerifier

	// Validator is the universal validator contract to call. Defaults to
	// DefaultUniversalValidator.
	Validator common.Address
}

// NewUniversalVerifier creates a UniversalVerifier that falls back to the
// given ContractVerifier for already-deployed signers.
func NewUniversalVerifier(contract *ContractVerifier) *UniversalVerifier {
	return &UniversalVerifier{
		contract:  contract,
		Validator: DefaultUniversalValidator,
	}
}

// Verify implements SignatureVerifier.
//
// Path: a deployed signer with an unwrapped signature short-circuits to the
// contract-signature interface. Otherwise the universal validator decides,
// with the factory's side effects visible only for the duration of the
// simulated call. If the validator itself is unreachable (not deployed on
// this chain, reverts), the wrapper is unwrapped manually and the inner
// signature retried against the signer — but only when the signer already
// has code. Everything else is false.
func (v *UniversalVerifier) Verify(ctx context.Context, signer common.Address, hash common.Hash, sig []byte, q chain.Query) bool {
	if q == nil {
		return false
	}

	if !IsWrapped(sig) && chain.HasCode(ctx, q, signer) {
		return v.contract.Verify(ctx, signer, hash, sig, q)
	}

	if calldata, err := isValidSigCalldata(signer, hash, sig); err == nil {
		ret, err := q.Call(ctx, v.Validator, calldata)
		if err == nil {
			return decodeBool(ret)
		}
	}

	// Validator unavailable: manual unwrap, retry only against deployed code.
	w, err := Unwrap(sig)
	if err != nil {
		return false
	}
	if !chain.HasCode(ctx, q, signer) {
		return false
	}
	return v.contract.Verify(ctx, signer, hash, w.Signature, q)
}

func isValidSigCalldata(signer common.Address, hash common.Hash, sig []byte) ([]byte, error) {
	packed, err := isValidSigArgs.Pack(signer, [32]byte(hash), sig)
	if err != nil {
		return nil, err
	}
	return append(append([]byte{}, isValidSigSelector...), packed...), nil
}

func decodeBool(ret []byte) bool {
	return len(ret) == common.HashLength && ret[common.HashLength-1] == 1
}
