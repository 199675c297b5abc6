package services

import (
	"context"
	"fmt"
	"time"

	"github.com/halfmoonlabs/chatloop/ent"
	"github.com/halfmoonlabs/chatloop/ent/messagecursor"
)

// CursorService tracks the last fully processed transport message id per
// user. The recovery agent scans chat history strictly past the cursor.
type CursorService struct {
	client *ent.Client
}

// NewCursorService creates a new CursorService.
func NewCursorService(client *ent.Client) *CursorService {
	return &CursorService{client: client}
}

// Get returns the cursor for a user.
func (s *CursorService) Get(ctx context.Context, userID int64) (*ent.MessageCursor, error) {
	row, err := s.client.MessageCursor.Get(ctx, userID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cursor for user %d: %w", userID, err)
	}
	return row, nil
}

// Advance moves the cursor forward to messageID. Cursors never move
// backwards: a stale advance is silently ignored.
func (s *CursorService) Advance(httpCtx context.Context, userID, chatID, messageID int64, at time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	current, err := s.client.MessageCursor.Get(ctx, userID)
	if ent.IsNotFound(err) {
		err = s.client.MessageCursor.Create().
			SetID(userID).
			SetChatID(chatID).
			SetLastProcessedMessageID(messageID).
			SetLastProcessedAt(at).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create cursor for user %d: %w", userID, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load cursor for user %d: %w", userID, err)
	}
	if messageID <= current.LastProcessedMessageID {
		return nil
	}

	err = s.client.MessageCursor.UpdateOneID(userID).
		SetChatID(chatID).
		SetLastProcessedMessageID(messageID).
		SetLastProcessedAt(at).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance cursor for user %d: %w", userID, err)
	}
	return nil
}

// All returns every cursor, oldest last-processed first, so recovery
// sweeps the longest-idle users before the recently active ones.
func (s *CursorService) All(ctx context.Context) ([]*ent.MessageCursor, error) {
	rows, err := s.client.MessageCursor.Query().
		Order(ent.Asc(messagecursor.FieldLastProcessedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cursors: %w", err)
	}
	return rows, nil
}
