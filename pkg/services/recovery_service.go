package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/halfmoonlabs/chatloop/ent"
	"github.com/halfmoonlabs/chatloop/ent/recoveryoperation"
)

// RecoveryService persists the audit trail of recovery sweeps.
type RecoveryService struct {
	client *ent.Client
}

// NewRecoveryService creates a new RecoveryService.
func NewRecoveryService(client *ent.Client) *RecoveryService {
	return &RecoveryService{client: client}
}

// Begin opens a new running operation row and returns its id.
func (s *RecoveryService) Begin(httpCtx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	opID := uuid.NewString()
	err := s.client.RecoveryOperation.Create().
		SetID(opID).
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create recovery operation: %w", err)
	}
	return opID, nil
}

// Progress updates the running counters on an operation.
func (s *RecoveryService) Progress(httpCtx context.Context, opID string, usersScanned, messagesRecovered, errCount int) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := s.client.RecoveryOperation.UpdateOneID(opID).
		SetUsersScanned(usersScanned).
		SetMessagesRecovered(messagesRecovered).
		SetErrors(errCount).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update recovery operation %s: %w", opID, err)
	}
	return nil
}

// Complete marks an operation finished.
func (s *RecoveryService) Complete(httpCtx context.Context, opID string) error {
	return s.finish(opID, recoveryoperation.StatusCompleted, "")
}

// Halt marks an operation halted with the error that stopped it.
func (s *RecoveryService) Halt(httpCtx context.Context, opID, errMsg string) error {
	return s.finish(opID, recoveryoperation.StatusHalted, errMsg)
}

func (s *RecoveryService) finish(opID string, status recoveryoperation.Status, errMsg string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	update := s.client.RecoveryOperation.UpdateOneID(opID).
		SetStatus(status).
		SetFinishedAt(time.Now())
	if errMsg != "" {
		update = update.SetErrorMessage(errMsg)
	}
	err := update.Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to finish recovery operation %s: %w", opID, err)
	}
	return nil
}

// Prune deletes finished operation rows older than the retention window
// and returns how many were removed.
func (s *RecoveryService) Prune(httpCtx context.Context, retention time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	n, err := s.client.RecoveryOperation.Delete().
		Where(
			recoveryoperation.StartedAtLT(time.Now().Add(-retention)),
			recoveryoperation.StatusNEQ(recoveryoperation.StatusRunning),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune recovery operations: %w", err)
	}
	return n, nil
}

// Latest returns the most recent operations, newest first.
func (s *RecoveryService) Latest(ctx context.Context, limit int) ([]*ent.RecoveryOperation, error) {
	rows, err := s.client.RecoveryOperation.Query().
		Order(ent.Desc(recoveryoperation.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recovery operations: %w", err)
	}
	return rows, nil
}
