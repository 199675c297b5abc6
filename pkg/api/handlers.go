package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/halfmoonlabs/chatloop/ent"
	"github.com/halfmoonlabs/chatloop/pkg/models"
)

const defaultPendingLimit = 20

// reviewerID identifies the acting reviewer on mutating endpoints.
func reviewerID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Reviewer-ID")
	if id == "" {
		respondError(c, http.StatusBadRequest, CodeValidation, "X-Reviewer-ID header is required")
		return "", false
	}
	return id, true
}

func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid user_id")
		return 0, false
	}
	return id, true
}

// pendingItem is one entry of the pending list: the interaction plus the
// user's current status snapshot.
type pendingItem struct {
	Item       *ent.Interaction       `json:"item"`
	UserStatus *ent.UserCurrentStatus `json:"user_status,omitempty"`
}

func (s *Server) listPending(c *gin.Context) {
	limit := defaultPendingLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			respondError(c, http.StatusBadRequest, CodeValidation, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	ctx := c.Request.Context()
	items, err := s.reviews.ListPending(ctx, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]pendingItem, 0, len(items))
	for _, item := range items {
		entry := pendingItem{Item: item}
		if status, err := s.statuses.Get(ctx, item.UserID); err == nil {
			entry.UserStatus = status
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

func (s *Server) getReview(c *gin.Context) {
	item, err := s.reviews.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) startReviewing(c *gin.Context) {
	reviewer, ok := reviewerID(c)
	if !ok {
		return
	}
	item, err := s.reviews.StartReviewing(c.Request.Context(), c.Param("id"), reviewer)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) approveReview(c *gin.Context) {
	reviewer, ok := reviewerID(c)
	if !ok {
		return
	}
	var req models.ApproveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body: "+err.Error())
		return
	}
	item, err := s.reviews.Approve(c.Request.Context(), c.Param("id"), reviewer, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) rejectReview(c *gin.Context) {
	reviewer, ok := reviewerID(c)
	if !ok {
		return
	}
	var req models.RejectReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body: "+err.Error())
		return
	}
	item, err := s.reviews.Reject(c.Request.Context(), c.Param("id"), reviewer, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) cancelReview(c *gin.Context) {
	item, err := s.reviews.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) getUserStatus(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	status, err := s.statuses.Get(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) updateUserStatus(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	reviewer, ok := reviewerID(c)
	if !ok {
		return
	}
	var req models.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body: "+err.Error())
		return
	}
	status, err := s.statuses.Update(c.Request.Context(), userID, reviewer, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) setNickname(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var req struct {
		Nickname string `json:"nickname"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Nickname == "" {
		respondError(c, http.StatusBadRequest, CodeValidation, "nickname is required")
		return
	}
	status, err := s.statuses.SetNickname(c.Request.Context(), userID, req.Nickname)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) toggleQuarantine(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	reviewer, ok := reviewerID(c)
	if !ok {
		return
	}
	var req models.QuarantineToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body: "+err.Error())
		return
	}
	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}

	ctx := c.Request.Context()
	var err error
	if req.Active {
		err = s.quarantine.Activate(ctx, userID, reason, reviewer)
	} else {
		err = s.quarantine.Deactivate(ctx, userID, reason, reviewer)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	status, err := s.qsvc.GetProtocol(ctx, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) listQuarantine(c *gin.Context) {
	var userID int64
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, CodeValidation, "invalid user_id")
			return
		}
		userID = parsed
	}
	rows, err := s.qsvc.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": rows})
}

func (s *Server) releaseQuarantine(c *gin.Context) {
	reviewer, ok := reviewerID(c)
	if !ok {
		return
	}
	if err := s.quarantine.Release(c.Request.Context(), c.Param("q_id"), reviewer); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"released": true})
}

// eraseUser handles the GDPR deletion request: relational rows plus the
// user's conversation memory.
func (s *Server) eraseUser(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	report, err := s.erasure.EraseUser(ctx, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if err := s.memory.DeleteUser(ctx, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
