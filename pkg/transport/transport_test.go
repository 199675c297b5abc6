package transport

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// flaky fails the first n Send calls with a transient error, then succeeds.
type flaky struct {
	*InMemory
	failures int32
}

func (f *flaky) Send(ctx context.Context, chatID int64, text string) error {
	if atomic.AddInt32(&f.failures, -1) >= 0 {
		return errors.New("connection reset")
	}
	return f.InMemory.Send(ctx, chatID, text)
}

func TestInMemory_SendAndHistory(t *testing.T) {
	tr := NewInMemory()
	ctx := context.Background()

	require.NoError(t, tr.Send(ctx, 42, "hello"))
	require.NoError(t, tr.Send(ctx, 42, "again"))

	assert.Equal(t, []string{"hello", "again"}, tr.Sent(42))
}

func TestInMemory_ScanHistory(t *testing.T) {
	tr := NewInMemory()
	for i := int64(1); i <= 5; i++ {
		tr.AddHistory(models.InboundMessage{
			UserID: 42, ChatID: 42, MessageID: i * 10,
			Text: fmt.Sprintf("msg %d", i),
		})
	}

	msgs, err := tr.ScanHistory(context.Background(), 42, 20, 2)
	require.NoError(t, err)

	require.Len(t, msgs, 2)
	assert.Equal(t, int64(30), msgs[0].MessageID)
	assert.Equal(t, int64(40), msgs[1].MessageID)
}

func TestInMemory_BlockedChatIsPermanent(t *testing.T) {
	tr := NewInMemory()
	tr.Block(42)

	err := tr.Send(context.Background(), 42, "hello")
	assert.True(t, IsPermanent(err))
}

func TestInMemory_ResolveEntity(t *testing.T) {
	tr := NewInMemory()
	tr.AddEntity(42, &Entity{UserID: 42, AccessHash: 777})

	e, err := tr.ResolveEntity(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(777), e.AccessHash)

	_, err = tr.ResolveEntity(context.Background(), 99)
	assert.True(t, IsPermanent(err))
}

func TestRetrying_RecoversFromTransientErrors(t *testing.T) {
	f := &flaky{InMemory: NewInMemory(), failures: 2}
	tr := WithRetry(f)

	start := time.Now()
	err := tr.Send(context.Background(), 42, "hello")
	require.NoError(t, err)

	assert.Equal(t, []string{"hello"}, f.Sent(42))
	// Two backoff sleeps happened (1s then 2s, plus jitter).
	assert.GreaterOrEqual(t, time.Since(start), 3*time.Second)
}

func TestRetrying_PermanentErrorNotRetried(t *testing.T) {
	tr := NewInMemory()
	tr.Block(42)
	wrapped := WithRetry(tr)

	start := time.Now()
	err := wrapped.Send(context.Background(), 42, "hello")

	assert.True(t, IsPermanent(err))
	// No backoff sleeps for permanent failures.
	assert.Less(t, time.Since(start), time.Second)
}

func TestRetrying_ContextCancelStopsRetries(t *testing.T) {
	f := &flaky{InMemory: NewInMemory(), failures: 100}
	tr := WithRetry(f)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := tr.Send(ctx, 42, "hello")
	assert.Error(t, err)
	assert.Empty(t, f.Sent(42))
}
