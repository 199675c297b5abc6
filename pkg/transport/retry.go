package transport

import (
	"context"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/halfmoonlabs/chatloop/pkg/models"
)

// Backoff policy for transient transport errors.
const (
	retryAttempts    = 5
	retryBaseDelay   = time.Second
	retryMaxDelay    = 30 * time.Second
	retryJitterShare = 0.2
)

// Retrying decorates a Transport with exponential backoff on transient
// errors. Permanent errors pass through untouched on the first attempt.
type Retrying struct {
	inner Transport
}

// WithRetry wraps t in the standard backoff policy.
func WithRetry(t Transport) *Retrying {
	return &Retrying{inner: t}
}

func retryOpts(ctx context.Context, op string) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(retryAttempts),
		retry.Delay(retryBaseDelay),
		retry.MaxDelay(retryMaxDelay),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.MaxJitter(time.Duration(retryJitterShare * float64(retryBaseDelay))),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool { return !IsPermanent(err) }),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("Retrying transport call", "op", op, "attempt", n+1, "error", err)
		}),
	}
}

func (r *Retrying) Updates(ctx context.Context) (<-chan models.InboundMessage, error) {
	return r.inner.Updates(ctx)
}

func (r *Retrying) TypingEvents(ctx context.Context) (<-chan TypingEvent, error) {
	return r.inner.TypingEvents(ctx)
}

func (r *Retrying) Send(ctx context.Context, chatID int64, text string) error {
	return retry.Do(func() error {
		return r.inner.Send(ctx, chatID, text)
	}, retryOpts(ctx, "send")...)
}

func (r *Retrying) SetTyping(ctx context.Context, chatID int64, typing bool) error {
	return retry.Do(func() error {
		return r.inner.SetTyping(ctx, chatID, typing)
	}, retryOpts(ctx, "set_typing")...)
}

func (r *Retrying) ScanHistory(ctx context.Context, chatID, sinceMessageID int64, limit int) ([]models.InboundMessage, error) {
	return retry.DoWithData(func() ([]models.InboundMessage, error) {
		return r.inner.ScanHistory(ctx, chatID, sinceMessageID, limit)
	}, retryOpts(ctx, "scan_history")...)
}

func (r *Retrying) ResolveEntity(ctx context.Context, userID int64) (*Entity, error) {
	return retry.DoWithData(func() (*Entity, error) {
		return r.inner.ResolveEntity(ctx, userID)
	}, retryOpts(ctx, "resolve_entity")...)
}
