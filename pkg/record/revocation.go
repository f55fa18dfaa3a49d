package record

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
)

// RevocationMessage builds the literal message a party signs to authorize
// revoking an association off-chain. The id is the record's structured hash.
func RevocationMessage(id common.Hash, revokedAt uint64) string {
	return fmt.Sprintf("Revoke association %s at timestamp %d", id.Hex(), revokedAt)
}

// RevocationDigest returns the EIP-191 personal-message hash of the
// revocation message, the bytes a wallet actually signs via personal_sign.
func RevocationDigest(id common.Hash, revokedAt uint64) []byte {
	return accounts.TextHash([]byte(RevocationMessage(id, revokedAt)))
}
