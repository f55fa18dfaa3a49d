package chain

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultCodeTTL bounds how long a code-presence result is reused. Code at
// an address flips rarely, but an undeployed account can deploy at any
// moment, so entries must expire.
const DefaultCodeTTL = 30 * time.Second

// CachedQuery wraps a Query and caches CodeAt results with a TTL. Contract
// calls are never cached; their results depend on call arguments and state.
type CachedQuery struct {
	inner Query
	codes *gocache.Cache
}

// NewCachedQuery wraps inner with a code cache using DefaultCodeTTL.
func NewCachedQuery(inner Query) *CachedQuery {
	return NewCachedQueryTTL(inner, DefaultCodeTTL)
}

// NewCachedQueryTTL wraps inner with a code cache using the given TTL.
func NewCachedQueryTTL(inner Query, ttl time.Duration) *CachedQuery {
	return &CachedQuery{
		inner: inner,
		codes: gocache.New(ttl, 2*ttl),
	}
}

// CodeAt returns the cached code for addr, querying the inner client on a
// miss. Errors are not cached; a flaky endpoint retries on the next call.
func (q *CachedQuery) CodeAt(ctx context.Context, addr common.Address) ([]byte, error) {
	key := addr.Hex()
	if cached, found := q.codes.Get(key); found {
		return cached.([]byte), nil
	}
	code, err := q.inner.CodeAt(ctx, addr)
	if err != nil {
		return nil, err
	}
	q.codes.Set(key, code, gocache.DefaultExpiration)
	return code, nil
}

// ReadContract passes through to the inner client.
func (q *CachedQuery) ReadContract(ctx context.Context, addr common.Address, calldata []byte) ([]byte, error) {
	return q.inner.ReadContract(ctx, addr, calldata)
}

// Call passes through to the inner client.
func (q *CachedQuery) Call(ctx context.Context, addr common.Address, calldata []byte) ([]byte, error) {
	return q.inner.Call(ctx, addr, calldata)
}
