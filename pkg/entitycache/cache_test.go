package entitycache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/pkg/transport"
)

// countingTransport wraps InMemory and counts resolution calls, optionally
// failing the first n with a transient error.
type countingTransport struct {
	*transport.InMemory
	resolves  atomic.Int64
	failFirst atomic.Int64
}

func (c *countingTransport) ResolveEntity(ctx context.Context, userID int64) (*transport.Entity, error) {
	c.resolves.Add(1)
	if c.failFirst.Add(-1) >= 0 {
		return nil, errors.New("flood wait")
	}
	return c.InMemory.ResolveEntity(ctx, userID)
}

func newCountingTransport() *countingTransport {
	return &countingTransport{InMemory: transport.NewInMemory()}
}

func TestCache_ResolveCachesHits(t *testing.T) {
	tr := newCountingTransport()
	tr.AddEntity(1, &transport.Entity{UserID: 1, AccessHash: 111})
	c := New(tr, 10, time.Minute)
	ctx := context.Background()

	e, err := c.Resolve(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(111), e.AccessHash)

	_, err = c.Resolve(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tr.resolves.Load())
	assert.Equal(t, 1, c.Len())
}

func TestCache_ColdMissRetriesOnce(t *testing.T) {
	tr := newCountingTransport()
	tr.AddEntity(2, &transport.Entity{UserID: 2, AccessHash: 222})
	tr.failFirst.Store(1)
	c := New(tr, 10, time.Minute)

	e, err := c.Resolve(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(222), e.AccessHash)
	assert.Equal(t, int64(2), tr.resolves.Load())
}

func TestCache_PermanentFailureNotRetried(t *testing.T) {
	tr := newCountingTransport()
	c := New(tr, 10, time.Minute)

	_, err := c.Resolve(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, transport.IsPermanent(err))
	assert.Equal(t, int64(1), tr.resolves.Load())
}

func TestCache_InvalidateForcesReResolution(t *testing.T) {
	tr := newCountingTransport()
	tr.AddEntity(3, &transport.Entity{UserID: 3, AccessHash: 333})
	c := New(tr, 10, time.Minute)
	ctx := context.Background()

	_, err := c.Resolve(ctx, 3)
	require.NoError(t, err)
	c.Invalidate(3)
	_, err = c.Resolve(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), tr.resolves.Load())
}

func TestCache_WarmupSkipsFailures(t *testing.T) {
	tr := newCountingTransport()
	tr.AddEntity(10, &transport.Entity{UserID: 10, AccessHash: 1})
	tr.AddEntity(12, &transport.Entity{UserID: 12, AccessHash: 2})
	c := New(tr, 10, time.Minute)

	c.Warmup(context.Background(), []int64{10, 11, 12})
	assert.Equal(t, 2, c.Len())
}
