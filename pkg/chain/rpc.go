package chain

import (
	"context"
	"fmt"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// RPCQuery adapts an ethclient.Client to the Query interface.
type RPCQuery struct {
	client *ethclient.Client
}

// NewRPCQuery creates a Query backed by a connected RPC client.
func NewRPCQuery(client *ethclient.Client) *RPCQuery {
	return &RPCQuery{client: client}
}

// DialRPCQuery connects to an RPC endpoint and returns a Query over it.
func DialRPCQuery(ctx context.Context, endpoint string) (*RPCQuery, error) {
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial RPC endpoint: %w", err)
	}
	return &RPCQuery{client: client}, nil
}

// CodeAt returns the code at addr at the latest block.
func (q *RPCQuery) CodeAt(ctx context.Context, addr common.Address) ([]byte, error) {
	return q.client.CodeAt(ctx, addr, nil)
}

// ReadContract executes a view call at the latest block.
func (q *RPCQuery) ReadContract(ctx context.Context, addr common.Address, calldata []byte) ([]byte, error) {
	return q.client.CallContract(ctx, ethereum.CallMsg{To: &addr, Data: calldata}, nil)
}

// Call executes a state-simulating call. Over JSON-RPC this is the same
// eth_call as ReadContract; the distinction matters for implementations
// that route view reads and simulations differently.
func (q *RPCQuery) Call(ctx context.Context, addr common.Address, calldata []byte) ([]byte, error) {
	return q.client.CallContract(ctx, ethereum.CallMsg{To: &addr, Data: calldata}, nil)
}

// Close releases the underlying RPC connection.
func (q *RPCQuery) Close() {
	q.client.Close()
}
