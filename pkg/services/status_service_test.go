package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/ent/usercurrentstatus"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/test/util"
)

func TestStatusService_UpdateAndHistory(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewStatusService(client)
	ctx := context.Background()

	// First access creates the default PROSPECT row.
	row, err := svc.Get(ctx, 800)
	require.NoError(t, err)
	assert.Equal(t, usercurrentstatus.CustomerStatus(models.CustomerStatusProspect), row.CustomerStatus)
	assert.Zero(t, row.LtvTotalUsd)

	status := models.CustomerStatusCustomer
	reason := "first purchase"
	row, err = svc.Update(ctx, 800, "reviewer-a", models.UpdateUserStatusRequest{
		CustomerStatus: &status,
		LTVDeltaUSD:    floatPtr(49.99),
		Reason:         &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, usercurrentstatus.CustomerStatus(models.CustomerStatusCustomer), row.CustomerStatus)
	assert.InDelta(t, 49.99, row.LtvTotalUsd, 0.001)

	// LTV-only change still appends a transition.
	row, err = svc.Update(ctx, 800, "reviewer-a", models.UpdateUserStatusRequest{LTVDeltaUSD: floatPtr(10)})
	require.NoError(t, err)
	assert.InDelta(t, 59.99, row.LtvTotalUsd, 0.001)

	history, err := svc.History(ctx, 800, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.CustomerStatusCustomer, history[0].ToStatus)
	assert.Equal(t, models.CustomerStatusProspect, history[1].FromStatus)
	assert.Equal(t, "first purchase", history[1].Reason)

	// Invalid input never touches the row.
	bad := "VIP"
	_, err = svc.Update(ctx, 800, "reviewer-a", models.UpdateUserStatusRequest{CustomerStatus: &bad})
	assert.True(t, IsValidationError(err))
	_, err = svc.Update(ctx, 800, "reviewer-a", models.UpdateUserStatusRequest{})
	assert.True(t, IsValidationError(err))
}

func TestStatusService_SetNickname(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewStatusService(client)
	ctx := context.Background()

	row, err := svc.SetNickname(ctx, 801, "night owl")
	require.NoError(t, err)
	require.NotNil(t, row.Nickname)
	assert.Equal(t, "night owl", *row.Nickname)
}

func TestCursorService_AdvanceIsMonotonic(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCursorService(client)
	ctx := context.Background()

	_, err := svc.Get(ctx, 900)
	assert.ErrorIs(t, err, ErrNotFound)

	now := time.Now()
	require.NoError(t, svc.Advance(ctx, 900, 900, 50, now))
	require.NoError(t, svc.Advance(ctx, 900, 900, 80, now.Add(time.Minute)))

	// Stale advances are ignored.
	require.NoError(t, svc.Advance(ctx, 900, 900, 60, now.Add(2*time.Minute)))

	cur, err := svc.Get(ctx, 900)
	require.NoError(t, err)
	assert.Equal(t, int64(80), cur.LastProcessedMessageID)

	require.NoError(t, svc.Advance(ctx, 901, 901, 5, now.Add(-time.Hour)))
	all, err := svc.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Longest-idle user first.
	assert.Equal(t, int64(901), all[0].ID)
}

func TestRecoveryService_Lifecycle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewRecoveryService(client)
	ctx := context.Background()

	opID, err := svc.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Progress(ctx, opID, 12, 3, 1))
	require.NoError(t, svc.Complete(ctx, opID))

	halted, err := svc.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Halt(ctx, halted, "transport unreachable"))

	ops, err := svc.Latest(ctx, 5)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, halted, ops[0].ID)
	require.NotNil(t, ops[0].ErrorMessage)
	assert.Equal(t, "transport unreachable", *ops[0].ErrorMessage)
	assert.Equal(t, 12, ops[1].UsersScanned)
	assert.Equal(t, 3, ops[1].MessagesRecovered)
	require.NotNil(t, ops[1].FinishedAt)

	assert.ErrorIs(t, svc.Progress(ctx, "missing", 0, 0, 0), ErrNotFound)
}

func TestRecoveryService_PruneKeepsRunningAndRecent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewRecoveryService(client)
	ctx := context.Background()

	oldID, err := svc.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, oldID))

	runningID, err := svc.Begin(ctx)
	require.NoError(t, err)

	// Rows were just created, so a 24h retention removes nothing.
	n, err := svc.Prune(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)

	// Zero-ish retention removes the finished row but never a running one.
	n, err = svc.Prune(ctx, time.Nanosecond)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	ops, err := svc.Latest(ctx, 5)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, runningID, ops[0].ID)
}
