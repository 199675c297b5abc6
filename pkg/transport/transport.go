// Package transport defines the chat-platform port the core talks through.
// The concrete client (MTProto, bot API, a test double) plugs in behind the
// Transport interface; everything else in the pipeline is platform-blind.
package transport

import (
	"context"
	"errors"

	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// ErrPermanent wraps transport failures that retrying cannot fix: the user
// blocked the persona, the chat was deleted, the account is forbidden.
// Delivery marks the item failed and moves on.
var ErrPermanent = errors.New("permanent transport error")

// TypingEvent is a push notification that a user started or stopped typing.
type TypingEvent struct {
	UserID int64
	ChatID int64
	Typing bool
}

// Entity is the opaque per-user handle the platform requires on sends.
// Resolved once and cached; contents are platform-specific.
type Entity struct {
	UserID     int64
	AccessHash int64
}

// Transport is the capability set the core needs from the chat platform.
type Transport interface {
	// Updates delivers inbound private messages until ctx is done.
	Updates(ctx context.Context) (<-chan models.InboundMessage, error)

	// TypingEvents delivers typing notifications. Implementations without
	// typing support return a channel that never fires.
	TypingEvents(ctx context.Context) (<-chan TypingEvent, error)

	// Send posts one message to the chat.
	Send(ctx context.Context, chatID int64, text string) error

	// SetTyping toggles the typing indicator in the chat.
	SetTyping(ctx context.Context, chatID int64, typing bool) error

	// ScanHistory returns up to limit messages in the chat with transport
	// message id greater than sinceMessageID, oldest first.
	ScanHistory(ctx context.Context, chatID, sinceMessageID int64, limit int) ([]models.InboundMessage, error)

	// ResolveEntity returns the platform handle for a user.
	ResolveEntity(ctx context.Context, userID int64) (*Entity, error)
}

// IsPermanent reports whether err should not be retried.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrPermanent)
}
