package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/pkg/events"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/queue"
	"github.com/halfmoonlabs/chatloop/test/util"
)

func TestErasureService_EraseUser(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	reviews := NewReviewService(client, queue.New(rdb))
	statuses := NewStatusService(client)
	quarantines := NewQuarantineService(client, events.NewPublisher(db), 7*24*time.Hour)
	cursors := NewCursorService(client)
	erasure := NewErasureService(client)
	ctx := context.Background()

	const userID = int64(4242)
	req := createRequest(userID)
	_, err := reviews.Create(ctx, req)
	require.NoError(t, err)

	status := models.CustomerStatusCustomer
	_, err = statuses.Update(ctx, userID, "reviewer-a", models.UpdateUserStatusRequest{
		CustomerStatus: &status,
		LTVDeltaUSD:    floatPtr(100),
	})
	require.NoError(t, err)
	_, err = quarantines.SetProtocol(ctx, userID, true, "test", "reviewer-a")
	require.NoError(t, err)
	_, err = quarantines.Add(ctx, models.InboundMessage{UserID: userID, ChatID: userID, MessageID: 1, Text: "hi", ReceivedAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, cursors.Advance(ctx, userID, userID, 10, time.Now()))

	report, err := erasure.EraseUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, report.InteractionsTombstoned)
	assert.GreaterOrEqual(t, report.RowsDeleted, 5)

	// The interaction row survives with the user id tombstoned.
	item, err := reviews.Get(ctx, req.ReviewID)
	require.NoError(t, err)
	assert.Zero(t, item.UserID)
	assert.Equal(t, req.InboundText, item.InboundText)

	// Per-user rows are gone; defaults apply again.
	_, err = cursors.Get(ctx, userID)
	assert.ErrorIs(t, err, ErrNotFound)
	protocol, err := quarantines.GetProtocol(ctx, userID)
	require.NoError(t, err)
	assert.False(t, protocol.Active)
	rows, err := quarantines.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, rows)
	history, err := statuses.History(ctx, userID, 10)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = erasure.EraseUser(ctx, 0)
	assert.True(t, IsValidationError(err))
}
