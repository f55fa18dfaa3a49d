package verifier

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assoc-x-project/assoc-go/pkg/record"
)

func TestResolve(t *testing.T) {
	signer := common.HexToAddress("0x8888888888888888888888888888888888888888")
	plain := bytes.Repeat([]byte{0x01}, 65)
	wrapped, err := Wrap(Wrapper{Factory: signer, Signature: plain})
	require.NoError(t, err)

	r := NewDefaultKeyTypeResolver()

	t.Run("wrapper suffix resolves ERC6492", func(t *testing.T) {
		q := &mockQuery{}
		assert.Equal(t, record.KeyTypeERC6492, r.Resolve(context.Background(), signer, wrapped, q))
		assert.Zero(t, q.codeHits, "structural check needs no chain state")
	})

	t.Run("wrapper outranks deployed code", func(t *testing.T) {
		// Code presence can be a false signal for an already-deployed
		// wallet that signed before redeploying; the wrapper is not.
		q := &mockQuery{code: map[common.Address][]byte{signer: {0x60}}}
		assert.Equal(t, record.KeyTypeERC6492, r.Resolve(context.Background(), signer, wrapped, q))
	})

	t.Run("deployed code resolves ERC1271", func(t *testing.T) {
		q := &mockQuery{code: map[common.Address][]byte{signer: {0x60}}}
		assert.Equal(t, record.KeyTypeERC1271, r.Resolve(context.Background(), signer, plain, q))
	})

	t.Run("no code resolves K1", func(t *testing.T) {
		q := &mockQuery{}
		assert.Equal(t, record.KeyTypeK1, r.Resolve(context.Background(), signer, plain, q))
	})

	t.Run("failed code query reads as no code", func(t *testing.T) {
		q := &mockQuery{codeErr: errors.New("rpc unavailable")}
		assert.Equal(t, record.KeyTypeK1, r.Resolve(context.Background(), signer, plain, q))
	})

	t.Run("nil chain query resolves K1", func(t *testing.T) {
		assert.Equal(t, record.KeyTypeK1, r.Resolve(context.Background(), signer, plain, nil))
	})
}
