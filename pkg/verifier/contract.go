package verifier

import (
	"bytes"
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/assoc-x-project/assoc-go/pkg/chain"
)

// ERC1271MagicValue is the bytes4 a conforming contract account returns
// from isValidSignature when the signature is valid. It doubles as the
// method's own selector.
var ERC1271MagicValue = [4]byte{0x16, 0x26, 0xba, 0x7e}

var (
	bytes32Type, _ = abi.NewType("bytes32", "", nil)
	bytesType, _   = abi.NewType("bytes", "", nil)
	addressType, _ = abi.NewType("address", "", nil)

	// isValidSignature(bytes32 hash, bytes signature) returns (bytes4)
	isValidSignatureArgs = abi.Arguments{{Type: bytes32Type}, {Type: bytesType}}
)

// ContractVerifier verifies signatures produced by deployed smart-contract
// accounts via the on-chain isValidSignature interface. The contract itself
// decides what constitutes a valid signature; this verifier only checks
// that the returned value is the magic constant.
type ContractVerifier struct{}

// NewContractVerifier creates a new ContractVerifier.
func NewContractVerifier() *ContractVerifier {
	return &ContractVerifier{}
}

// Verify implements SignatureVerifier. Any call failure — revert, no code
// at the signer, ABI mismatch, missing chain access — yields false.
func (v *ContractVerifier) Verify(ctx context.Context, signer common.Address, hash common.Hash, sig []byte, q chain.Query) bool {
	if q == nil {
		return false
	}
	calldata, err := IsValidSignatureCalldata(hash, sig)
	if err != nil {
		return false
	}
	ret, err := q.ReadContract(ctx, signer, calldata)
	if err != nil {
		return false
	}
	return len(ret) >= 4 && bytes.Equal(ret[:4], ERC1271MagicValue[:])
}

// IsValidSignatureCalldata builds the calldata for
// isValidSignature(bytes32,bytes).
func IsValidSignatureCalldata(hash common.Hash, sig []byte) ([]byte, error) {
	packed, err := isValidSignatureArgs.Pack([32]byte(hash), sig)
	if err != nil {
		return nil, err
	}
	return append(ERC1271MagicValue[:], packed...), nil
}
