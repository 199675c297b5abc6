package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/pkg/events"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/test/util"
)

func newTestQuarantineService(t *testing.T, ttl time.Duration) *QuarantineService {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	return NewQuarantineService(client, events.NewPublisher(db), ttl)
}

func TestQuarantineService_ProtocolToggle(t *testing.T) {
	svc := newTestQuarantineService(t, 7*24*time.Hour)
	ctx := context.Background()

	// Unknown users default to inactive.
	status, err := svc.GetProtocol(ctx, 500)
	require.NoError(t, err)
	assert.False(t, status.Active)

	status, err = svc.SetProtocol(ctx, 500, true, "payment dispute", "reviewer-a")
	require.NoError(t, err)
	assert.True(t, status.Active)
	require.NotNil(t, status.Since)

	// Toggling to the same value is a no-op.
	again, err := svc.SetProtocol(ctx, 500, true, "duplicate", "reviewer-b")
	require.NoError(t, err)
	require.NotNil(t, again.Performer)
	assert.Equal(t, "reviewer-a", *again.Performer)

	active, err := svc.ActiveProtocols(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{500}, active)

	status, err = svc.SetProtocol(ctx, 500, false, "resolved", "reviewer-a")
	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.Nil(t, status.Since)

	active, err = svc.ActiveProtocols(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestQuarantineService_AddListRelease(t *testing.T) {
	svc := newTestQuarantineService(t, 7*24*time.Hour)
	ctx := context.Background()

	first := models.InboundMessage{UserID: 600, ChatID: 600, MessageID: 10, Text: "hello?", ReceivedAt: time.Now().Add(-2 * time.Minute)}
	second := models.InboundMessage{UserID: 600, ChatID: 600, MessageID: 11, Text: "you there?", ReceivedAt: time.Now()}

	row1, err := svc.Add(ctx, first)
	require.NoError(t, err)
	_, err = svc.Add(ctx, second)
	require.NoError(t, err)

	rows, err := svc.List(ctx, 600)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "hello?", rows[0].Text)
	assert.Equal(t, "you there?", rows[1].Text)

	released, err := svc.MarkReleased(ctx, row1.ID, "reviewer-a")
	require.NoError(t, err)
	require.NotNil(t, released.ReleasedAt)

	// Released messages drop out of the listing and cannot release twice.
	rows, err = svc.List(ctx, 600)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "you there?", rows[0].Text)

	_, err = svc.MarkReleased(ctx, row1.ID, "reviewer-a")
	assert.ErrorIs(t, err, ErrIllegalTransition)

	_, err = svc.MarkReleased(ctx, "missing", "reviewer-a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuarantineService_DeleteExpired(t *testing.T) {
	svc := newTestQuarantineService(t, time.Minute)
	ctx := context.Background()

	old := models.InboundMessage{UserID: 700, ChatID: 700, MessageID: 1, Text: "stale", ReceivedAt: time.Now().Add(-2 * time.Hour)}
	fresh := models.InboundMessage{UserID: 700, ChatID: 700, MessageID: 2, Text: "fresh", ReceivedAt: time.Now()}
	_, err := svc.Add(ctx, old)
	require.NoError(t, err)
	_, err = svc.Add(ctx, fresh)
	require.NoError(t, err)

	deleted, err := svc.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	rows, err := svc.List(ctx, 700)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "fresh", rows[0].Text)

	// Nothing left to expire.
	deleted, err = svc.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
