package record

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assoc-x-project/assoc-go/pkg/address"
)

func testAssociation() *Association {
	return &Association{
		Initiator:   address.ToBinary(common.HexToAddress("0x1111111111111111111111111111111111111111"), nil),
		Approver:    address.ToBinary(common.HexToAddress("0x2222222222222222222222222222222222222222"), nil),
		ValidAt:     1000,
		ValidUntil:  2000,
		InterfaceID: [4]byte{0xde, 0xad, 0xbe, 0xef},
		Data:        []byte("payload"),
	}
}

func TestHashDeterministic(t *testing.T) {
	aar := testAssociation()

	h1, err := aar.Hash()
	require.NoError(t, err)
	h2, err := aar.Hash()
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, common.Hash{}, h1)
}

func TestHashBindsEveryField(t *testing.T) {
	base, err := testAssociation().Hash()
	require.NoError(t, err)

	mutations := map[string]func(*Association){
		"initiator":   func(a *Association) { a.Initiator[len(a.Initiator)-1] ^= 1 },
		"approver":    func(a *Association) { a.Approver[len(a.Approver)-1] ^= 1 },
		"validAt":     func(a *Association) { a.ValidAt++ },
		"validUntil":  func(a *Association) { a.ValidUntil++ },
		"interfaceId": func(a *Association) { a.InterfaceID[0] ^= 1 },
		"data":        func(a *Association) { a.Data = append(a.Data, 0) },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			aar := testAssociation()
			mutate(aar)
			h, err := aar.Hash()
			require.NoError(t, err)
			assert.NotEqual(t, base, h, "hash must change when %s changes", field)
		})
	}
}

func TestHashEmptyData(t *testing.T) {
	aar := testAssociation()
	aar.Data = nil

	_, err := aar.Hash()
	assert.NoError(t, err)
}

func TestHashTimestampRange(t *testing.T) {
	t.Run("validAt too large", func(t *testing.T) {
		aar := testAssociation()
		aar.ValidAt = MaxTimestamp + 1
		_, err := aar.Hash()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTimestampRange)
	})

	t.Run("validUntil too large", func(t *testing.T) {
		aar := testAssociation()
		aar.ValidUntil = MaxTimestamp + 1
		_, err := aar.Hash()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTimestampRange)
	})

	t.Run("boundary value hashes", func(t *testing.T) {
		aar := testAssociation()
		aar.ValidAt = MaxTimestamp
		aar.ValidUntil = MaxTimestamp
		_, err := aar.Hash()
		assert.NoError(t, err)
	})
}
