package record

import "fmt"

// KeyType tags which signature scheme produced a signature on a record.
// The tag is a property of how the message was signed, not of the account
// itself: it can only be determined after the signature exists.
type KeyType byte

const (
	// KeyTypeDelegated is a delegated plain key. It verifies identically
	// to KeyTypeK1.
	KeyTypeDelegated KeyType = 0x00

	// KeyTypeK1 is a plain secp256k1 key (standard EOA signature).
	KeyTypeK1 KeyType = 0x01

	// KeyTypeR1 is a secp256r1 (P-256) key. Accepted as data; verification
	// is not implemented and fails closed.
	KeyTypeR1 KeyType = 0x02

	// KeyTypeBLS is a BLS key. Accepted as data; verification fails closed.
	KeyTypeBLS KeyType = 0x03

	// KeyTypeEdDSA is an Ed25519 key. Accepted as data; verification fails
	// closed.
	KeyTypeEdDSA KeyType = 0x04

	// KeyTypeWebAuthn is a WebAuthn assertion. Accepted as data;
	// verification fails closed.
	KeyTypeWebAuthn KeyType = 0x05

	// KeyTypeERC1271 is a deployed smart-contract account implementing the
	// isValidSignature interface.
	KeyTypeERC1271 KeyType = 0x06

	// KeyTypeERC6492 is a not-yet-deployed smart-contract account signing
	// with a wrapped, counterfactual signature.
	KeyTypeERC6492 KeyType = 0x07
)

// Supported reports whether this library implements verification for the
// key type. Unsupported types are carried as data but always fail
// verification.
func (k KeyType) Supported() bool {
	switch k {
	case KeyTypeDelegated, KeyTypeK1, KeyTypeERC1271, KeyTypeERC6492:
		return true
	default:
		return false
	}
}

func (k KeyType) String() string {
	switch k {
	case KeyTypeDelegated:
		return "DELEGATED"
	case KeyTypeK1:
		return "K1"
	case KeyTypeR1:
		return "R1"
	case KeyTypeBLS:
		return "BLS"
	case KeyTypeEdDSA:
		return "EdDSA"
	case KeyTypeWebAuthn:
		return "WEBAUTHN"
	case KeyTypeERC1271:
		return "ERC1271"
	case KeyTypeERC6492:
		return "ERC6492"
	default:
		return fmt.Sprintf("KeyType(0x%02x)", byte(k))
	}
}
