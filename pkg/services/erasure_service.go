package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/halfmoonlabs/chatloop/ent"
	"github.com/halfmoonlabs/chatloop/ent/interaction"
	"github.com/halfmoonlabs/chatloop/ent/messagecursor"
	"github.com/halfmoonlabs/chatloop/ent/protocolauditlog"
	"github.com/halfmoonlabs/chatloop/ent/protocolstatus"
	"github.com/halfmoonlabs/chatloop/ent/quarantinemessage"
	"github.com/halfmoonlabs/chatloop/ent/statustransition"
	"github.com/halfmoonlabs/chatloop/ent/usercurrentstatus"
)

// ErasureReport summarizes what a user erasure removed.
type ErasureReport struct {
	InteractionsTombstoned int `json:"interactions_tombstoned"`
	RowsDeleted            int `json:"rows_deleted"`
}

// ErasureService handles user data deletion requests. Interaction rows are
// kept for business accounting but tombstoned (user_id set to 0); every
// other row keyed by the user is deleted outright. Conversation memory in
// Redis is the caller's responsibility.
type ErasureService struct {
	client *ent.Client
}

// NewErasureService creates a new ErasureService.
func NewErasureService(client *ent.Client) *ErasureService {
	return &ErasureService{client: client}
}

// EraseUser removes all personal data for a user in one transaction.
func (s *ErasureService) EraseUser(httpCtx context.Context, userID int64) (*ErasureReport, error) {
	if userID == 0 {
		return nil, NewValidationError("user_id", "must be non-zero")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	report := &ErasureReport{}

	report.InteractionsTombstoned, err = tx.Interaction.Update().
		Where(interaction.UserID(userID)).
		SetUserID(0).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to tombstone interactions for user %d: %w", userID, err)
	}

	deletions := []func() (int, error){
		func() (int, error) {
			return tx.QuarantineMessage.Delete().Where(quarantinemessage.UserID(userID)).Exec(ctx)
		},
		func() (int, error) {
			return tx.MessageCursor.Delete().Where(messagecursor.ID(userID)).Exec(ctx)
		},
		func() (int, error) {
			return tx.ProtocolStatus.Delete().Where(protocolstatus.ID(userID)).Exec(ctx)
		},
		func() (int, error) {
			return tx.ProtocolAuditLog.Delete().Where(protocolauditlog.UserID(userID)).Exec(ctx)
		},
		func() (int, error) {
			return tx.StatusTransition.Delete().Where(statustransition.UserID(userID)).Exec(ctx)
		},
		func() (int, error) {
			return tx.UserCurrentStatus.Delete().Where(usercurrentstatus.ID(userID)).Exec(ctx)
		},
	}
	for _, del := range deletions {
		n, err := del()
		if err != nil {
			return nil, fmt.Errorf("failed to erase rows for user %d: %w", userID, err)
		}
		report.RowsDeleted += n
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit erasure for user %d: %w", userID, err)
	}

	slog.Info("User data erased",
		"user_id", userID,
		"interactions_tombstoned", report.InteractionsTombstoned,
		"rows_deleted", report.RowsDeleted)
	return report, nil
}
