package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/halfmoonlabs/chatloop/ent"
	"github.com/halfmoonlabs/chatloop/ent/interaction"
	"github.com/halfmoonlabs/chatloop/ent/usercurrentstatus"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/queue"
)

const writeTimeout = 5 * time.Second

// ReviewService owns the review item lifecycle: creation by the supervisor,
// reviewer transitions via the API, and delivery outcome marks. Every
// user-visible transition commits in one transaction with its audit row.
type ReviewService struct {
	client *ent.Client
	queue  *queue.ReviewQueue
}

// NewReviewService creates a new ReviewService.
func NewReviewService(client *ent.Client, q *queue.ReviewQueue) *ReviewService {
	return &ReviewService{client: client, queue: q}
}

// Create persists a new pending review item and pushes it onto the
// priority queue.
func (s *ReviewService) Create(httpCtx context.Context, req models.CreateReviewItemRequest) (*ent.Interaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	builder := s.client.Interaction.Create().
		SetID(req.ReviewID).
		SetUserID(req.UserID).
		SetChatID(req.ChatID).
		SetInboundText(req.InboundText).
		SetLastMessageID(req.LastMessageID).
		SetDraftText(req.Draft).
		SetSafety(req.Safety).
		SetPriorityScore(req.PriorityScore).
		SetStatus(interaction.StatusPending).
		SetRecovered(req.Recovered)

	if len(req.RefinedBubbles) > 0 {
		builder = builder.SetRefinedBubbles(req.RefinedBubbles)
	}
	if req.LLM1 != nil {
		builder = builder.SetLlm1(*req.LLM1)
	}
	if req.LLM2 != nil {
		builder = builder.SetLlm2(*req.LLM2)
	}
	if req.ProcessingError != "" {
		builder = builder.SetProcessingError(req.ProcessingError)
	}
	if req.RecoveryTier != models.RecoveryTierNone {
		builder = builder.SetRecoveryTier(string(req.RecoveryTier))
	}

	item, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create review item: %w", err)
	}

	if err := s.queue.Push(ctx, item.ID, item.PriorityScore); err != nil {
		return nil, fmt.Errorf("review item %s persisted but not queued: %w", item.ID, err)
	}
	return item, nil
}

// Get returns the full review item.
func (s *ReviewService) Get(ctx context.Context, reviewID string) (*ent.Interaction, error) {
	item, err := s.client.Interaction.Get(ctx, reviewID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review item %s: %w", reviewID, err)
	}
	return item, nil
}

// ListPending returns up to limit pending items, highest priority first.
func (s *ReviewService) ListPending(ctx context.Context, limit int) ([]*ent.Interaction, error) {
	items, err := s.client.Interaction.Query().
		Where(interaction.StatusEQ(interaction.StatusPending)).
		Order(ent.Desc(interaction.FieldPriorityScore), ent.Asc(interaction.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	return items, nil
}

// StartReviewing transitions pending → reviewing and records the reviewer.
// Calling again with the same reviewer is a no-op.
func (s *ReviewService) StartReviewing(httpCtx context.Context, reviewID, reviewerID string) (*ent.Interaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	item, err := s.Get(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if item.Status == interaction.StatusReviewing {
		if item.ReviewerID != nil && *item.ReviewerID == reviewerID {
			return item, nil
		}
		return nil, fmt.Errorf("%w: item %s is held by another reviewer", ErrIllegalTransition, reviewID)
	}
	if item.Status != interaction.StatusPending {
		return nil, fmt.Errorf("%w: cannot review item in status %s", ErrIllegalTransition, item.Status)
	}

	updated, err := s.client.Interaction.UpdateOneID(reviewID).
		SetStatus(interaction.StatusReviewing).
		SetReviewerID(reviewerID).
		SetReviewStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start reviewing %s: %w", reviewID, err)
	}
	return updated, nil
}

// Approve finalizes an item: persists the reviewer's edits, records a
// status transition when the customer status or LTV changed, removes the
// item from the priority queue, and hands it to the delivery FIFO.
// Approving an already-approved item returns it unchanged.
func (s *ReviewService) Approve(httpCtx context.Context, reviewID, reviewerID string, req models.ApproveReviewRequest) (*ent.Interaction, error) {
	if err := validateApproval(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	item, err := tx.Interaction.Get(ctx, reviewID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load review item %s: %w", reviewID, err)
	}

	if item.Status == interaction.StatusApproved {
		return item, nil
	}
	if item.Status != interaction.StatusPending && item.Status != interaction.StatusReviewing {
		return nil, fmt.Errorf("%w: cannot approve item in status %s", ErrIllegalTransition, item.Status)
	}

	statusNow, err := s.applyStatusChange(ctx, tx, item.UserID, req.CustomerStatus, req.LTVDeltaUSD, approvalReason(reviewID), reviewerID)
	if err != nil {
		return nil, err
	}

	update := tx.Interaction.UpdateOneID(reviewID).
		SetStatus(interaction.StatusApproved).
		SetReviewerID(reviewerID).
		SetFinalBubbles(req.FinalBubbles).
		SetReviewCompletedAt(time.Now()).
		SetCustomerStatus(statusNow)
	if len(req.EditTags) > 0 {
		update = update.SetEditTags(req.EditTags)
	}
	if req.QualityScore != nil {
		update = update.SetQualityScore(*req.QualityScore)
	}
	if req.CTA != nil {
		update = update.SetCta(*req.CTA)
	}
	if req.ReviewerNotes != nil {
		update = update.SetReviewerNotes(*req.ReviewerNotes)
	}

	approved, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to approve review item %s: %w", reviewID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit approval of %s: %w", reviewID, err)
	}

	if err := s.queue.Remove(ctx, reviewID); err != nil {
		slog.Warn("Approved item left on priority queue", "review_id", reviewID, "error", err)
	}
	entry := &models.ApprovedEntry{
		ReviewID:      approved.ID,
		UserID:        approved.UserID,
		ChatID:        approved.ChatID,
		Bubbles:       req.FinalBubbles,
		InboundText:   approved.InboundText,
		LastMessageID: approved.LastMessageID,
		ApprovedAt:    time.Now(),
	}
	if err := s.queue.PushApproved(ctx, entry); err != nil {
		return nil, fmt.Errorf("item %s approved but not queued for delivery: %w", reviewID, err)
	}
	return approved, nil
}

// Reject transitions a pending or reviewing item to rejected.
func (s *ReviewService) Reject(httpCtx context.Context, reviewID, reviewerID string, req models.RejectReviewRequest) (*ent.Interaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	item, err := s.Get(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if item.Status == interaction.StatusRejected {
		return item, nil
	}
	if item.Status != interaction.StatusPending && item.Status != interaction.StatusReviewing {
		return nil, fmt.Errorf("%w: cannot reject item in status %s", ErrIllegalTransition, item.Status)
	}

	update := s.client.Interaction.UpdateOneID(reviewID).
		SetStatus(interaction.StatusRejected).
		SetReviewerID(reviewerID).
		SetReviewCompletedAt(time.Now())
	if req.Reason != nil {
		update = update.SetReviewerNotes(*req.Reason)
	}

	rejected, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reject review item %s: %w", reviewID, err)
	}
	if err := s.queue.Remove(ctx, reviewID); err != nil {
		slog.Warn("Rejected item left on priority queue", "review_id", reviewID, "error", err)
	}
	return rejected, nil
}

// Cancel releases a reviewing item back to pending.
func (s *ReviewService) Cancel(httpCtx context.Context, reviewID string) (*ent.Interaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	item, err := s.Get(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if item.Status != interaction.StatusReviewing {
		return nil, fmt.Errorf("%w: cannot cancel item in status %s", ErrIllegalTransition, item.Status)
	}

	updated, err := s.client.Interaction.UpdateOneID(reviewID).
		SetStatus(interaction.StatusPending).
		ClearReviewerID().
		ClearReviewStartedAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel review of %s: %w", reviewID, err)
	}
	return updated, nil
}

// MarkDelivered records a successful delivery.
func (s *ReviewService) MarkDelivered(httpCtx context.Context, reviewID string, at time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := s.client.Interaction.UpdateOneID(reviewID).
		SetDeliveredAt(at).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to mark %s delivered: %w", reviewID, err)
	}
	return nil
}

// MarkDeliveryFailed records a permanent delivery failure.
func (s *ReviewService) MarkDeliveryFailed(httpCtx context.Context, reviewID, reason string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := s.client.Interaction.UpdateOneID(reviewID).
		SetDeliveryError(reason).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to mark %s delivery-failed: %w", reviewID, err)
	}
	return nil
}

// applyStatusChange updates user_current_status and appends the transition
// row when the approval carries a status or LTV change. Returns the user's
// status after the change, for the interaction snapshot.
func (s *ReviewService) applyStatusChange(ctx context.Context, tx *ent.Tx, userID int64, newStatus *string, ltvDelta *float64, reason, performer string) (string, error) {
	current, err := tx.UserCurrentStatus.Get(ctx, userID)
	if ent.IsNotFound(err) {
		current, err = tx.UserCurrentStatus.Create().
			SetID(userID).
			SetCustomerStatus(usercurrentstatus.CustomerStatus(models.CustomerStatusProspect)).
			Save(ctx)
	}
	if err != nil {
		return "", fmt.Errorf("failed to load status for user %d: %w", userID, err)
	}

	from := string(current.CustomerStatus)
	to := from
	if newStatus != nil {
		to = *newStatus
	}
	delta := 0.0
	if ltvDelta != nil {
		delta = *ltvDelta
	}
	if to == from && delta == 0 {
		return from, nil
	}

	err = tx.UserCurrentStatus.UpdateOneID(userID).
		SetCustomerStatus(usercurrentstatus.CustomerStatus(to)).
		SetLtvTotalUsd(current.LtvTotalUsd + delta).
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to update status for user %d: %w", userID, err)
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
		return "", fmt.Errorf("failed to record status transition for user %d: %w", userID, err)
	}
	return to, nil
}

func approvalReason(reviewID string) string {
	return "review approval " + reviewID
}

func validateApproval(req models.ApproveReviewRequest) error {
	if len(req.FinalBubbles) == 0 || len(req.FinalBubbles) > 4 {
		return NewValidationError("final_bubbles", "must contain 1 to 4 bubbles")
	}
	for i, b := range req.FinalBubbles {
		if strings.TrimSpace(b) == "" {
			return NewValidationError("final_bubbles", fmt.Sprintf("bubble %d is empty", i))
		}
	}
	if unknown := models.InvalidEditTags(req.EditTags); len(unknown) > 0 {
		return NewValidationError("edit_tags", "unknown tags: "+strings.Join(unknown, ", "))
	}
	if req.QualityScore != nil && (*req.QualityScore < 1 || *req.QualityScore > 5) {
		return NewValidationError("quality_score", "must be between 1 and 5")
	}
	if req.CTA != nil && req.CTA.Inserted && req.CTA.Tier != "" && !models.ValidCTATier(req.CTA.Tier) {
		return NewValidationError("cta.tier", "unknown tier "+req.CTA.Tier)
	}
	if req.CustomerStatus != nil && !models.ValidCustomerStatus(*req.CustomerStatus) {
		return NewValidationError("customer_status", "unknown status "+*req.CustomerStatus)
	}
	return nil
}
