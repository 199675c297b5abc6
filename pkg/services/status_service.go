package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/halfmoonlabs/chatloop/ent"
	"github.com/halfmoonlabs/chatloop/ent/statustransition"
	"github.com/halfmoonlabs/chatloop/ent/usercurrentstatus"
	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// StatusService manages the per-user customer lifecycle state and its
// transition history.
type StatusService struct {
	client *ent.Client
}

// NewStatusService creates a new StatusService.
func NewStatusService(client *ent.Client) *StatusService {
	return &StatusService{client: client}
}

// Get returns the user's current status row, creating the default
// PROSPECT row on first access.
func (s *StatusService) Get(httpCtx context.Context, userID int64) (*ent.UserCurrentStatus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	row, err := s.client.UserCurrentStatus.Get(ctx, userID)
	if ent.IsNotFound(err) {
		row, err = s.client.UserCurrentStatus.Create().
			SetID(userID).
			SetCustomerStatus(usercurrentstatus.CustomerStatus(models.CustomerStatusProspect)).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get status for user %d: %w", userID, err)
	}
	return row, nil
}

// Update applies a manual status and/or LTV change, appending the
// transition row in the same transaction.
func (s *StatusService) Update(httpCtx context.Context, userID int64, performer string, req models.UpdateUserStatusRequest) (*ent.UserCurrentStatus, error) {
	if req.CustomerStatus == nil && req.LTVDeltaUSD == nil {
		return nil, NewValidationError("customer_status", "nothing to update")
	}
	if req.CustomerStatus != nil && !models.ValidCustomerStatus(*req.CustomerStatus) {
		return nil, NewValidationError("customer_status", "unknown status "+*req.CustomerStatus)
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.UserCurrentStatus.Get(ctx, userID)
	if ent.IsNotFound(err) {
		current, err = tx.UserCurrentStatus.Create().
			SetID(userID).
			SetCustomerStatus(usercurrentstatus.CustomerStatus(models.CustomerStatusProspect)).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load status for user %d: %w", userID, err)
	}

	from := string(current.CustomerStatus)
	to := from
	if req.CustomerStatus != nil {
		to = *req.CustomerStatus
	}
	delta := 0.0
	if req.LTVDeltaUSD != nil {
		delta = *req.LTVDeltaUSD
	}
	reason := "manual update"
	if req.Reason != nil {
		reason = *req.Reason
	}

	updated, err := tx.UserCurrentStatus.UpdateOneID(userID).
		SetCustomerStatus(usercurrentstatus.CustomerStatus(to)).
		SetLtvTotalUsd(current.LtvTotalUsd + delta).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update status for user %d: %w", userID, err)
	}

	err = tx.StatusTransition.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetFromStatus(from).
		SetToStatus(to).
		SetDeltaLtvUsd(delta).
		SetReason(reason).
		SetPerformer(performer).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record status transition for user %d: %w", userID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status update for user %d: %w", userID, err)
	}
	return updated, nil
}

// SetNickname sets the reviewer-visible nickname for a user.
func (s *StatusService) SetNickname(httpCtx context.Context, userID int64, nickname string) (*ent.UserCurrentStatus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	updated, err := s.client.UserCurrentStatus.UpdateOneID(userID).
		SetNickname(nickname).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set nickname for user %d: %w", userID, err)
	}
	return updated, nil
}

// History returns the user's status transitions, newest first.
func (s *StatusService) History(ctx context.Context, userID int64, limit int) ([]*ent.StatusTransition, error) {
	q := s.client.StatusTransition.Query().
		Where(statustransition.UserID(userID)).
		Order(ent.Desc(statustransition.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list status transitions for user %d: %w", userID, err)
	}
	return rows, nil
}
