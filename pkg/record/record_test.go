package record

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairKeySymmetric(t *testing.T) {
	a := common.HexToAddress("0x1111111111111111111111111111111111111111")
	b := common.HexToAddress("0x2222222222222222222222222222222222222222")

	assert.Equal(t, PairKey(a, b), PairKey(b, a))
	assert.Equal(t,
		"0x1111111111111111111111111111111111111111:0x2222222222222222222222222222222222222222",
		PairKey(b, a),
	)
}

func TestComplete(t *testing.T) {
	sar := &SignedAssociation{Association: *testAssociation()}
	assert.False(t, sar.Complete())

	sar.InitiatorSignature = []byte{1}
	assert.False(t, sar.Complete())

	sar.ApproverSignature = []byte{2}
	assert.True(t, sar.Complete())
}

func TestSignedAssociationWireFormat(t *testing.T) {
	sar := &SignedAssociation{
		Association:        *testAssociation(),
		RevokedAt:          1500,
		InitiatorKeyType:   KeyTypeK1,
		ApproverKeyType:    KeyTypeERC6492,
		InitiatorSignature: []byte{0xaa, 0xbb},
		ApproverSignature:  []byte{0xcc},
	}

	data, err := json.Marshal(sar)
	require.NoError(t, err)

	// Timestamps travel as decimal strings, key types as hex2, bytes as hex.
	var raw map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "1000", raw["validAt"])
	assert.Equal(t, "2000", raw["validUntil"])
	assert.Equal(t, "1500", raw["revokedAt"])
	assert.Equal(t, "0x01", raw["initiatorKeyType"])
	assert.Equal(t, "0x07", raw["approverKeyType"])
	assert.Equal(t, "0xdeadbeef", raw["interfaceId"])
	assert.Equal(t, "0xaabb", raw["initiatorSignature"])

	var decoded SignedAssociation
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sar.Association.ValidAt, decoded.ValidAt)
	assert.Equal(t, sar.RevokedAt, decoded.RevokedAt)
	assert.Equal(t, sar.InitiatorKeyType, decoded.InitiatorKeyType)
	assert.Equal(t, sar.ApproverKeyType, decoded.ApproverKeyType)
	assert.Equal(t, sar.InitiatorSignature, decoded.InitiatorSignature)
	assert.Equal(t, sar.InterfaceID, decoded.InterfaceID)
}

func TestUnmarshalRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"timestamp out of range", `{"initiator":"0x11","approver":"0x22","validAt":"1099511627776","validUntil":"0","interfaceId":"0xdeadbeef","data":"0x"}`},
		{"non-decimal timestamp", `{"initiator":"0x11","approver":"0x22","validAt":"0xff","validUntil":"0","interfaceId":"0xdeadbeef","data":"0x"}`},
		{"short interfaceId", `{"initiator":"0x11","approver":"0x22","validAt":"0","validUntil":"0","interfaceId":"0xbeef","data":"0x"}`},
		{"malformed hex", `{"initiator":"zz","approver":"0x22","validAt":"0","validUntil":"0","interfaceId":"0xdeadbeef","data":"0x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var aar Association
			assert.Error(t, json.Unmarshal([]byte(tt.json), &aar))
		})
	}
}

func TestKeyTypeSupported(t *testing.T) {
	supported := []KeyType{KeyTypeDelegated, KeyTypeK1, KeyTypeERC1271, KeyTypeERC6492}
	for _, kt := range supported {
		assert.True(t, kt.Supported(), kt.String())
	}

	unsupported := []KeyType{KeyTypeR1, KeyTypeBLS, KeyTypeEdDSA, KeyTypeWebAuthn, KeyType(0x42)}
	for _, kt := range unsupported {
		assert.False(t, kt.Supported(), kt.String())
	}
}

func TestRevocationMessage(t *testing.T) {
	id := common.HexToHash("0xabcdef0000000000000000000000000000000000000000000000000000000001")

	msg := RevocationMessage(id, 1234)
	assert.Equal(t, "Revoke association "+id.Hex()+" at timestamp 1234", msg)

	digest := RevocationDigest(id, 1234)
	assert.Len(t, digest, 32)
	assert.NotEqual(t, RevocationDigest(id, 1235), digest)
}
