package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfmoonlabs/chatloop/pkg/batching"
	"github.com/halfmoonlabs/chatloop/pkg/events"
	"github.com/halfmoonlabs/chatloop/pkg/kv"
	"github.com/halfmoonlabs/chatloop/pkg/memory"
	"github.com/halfmoonlabs/chatloop/pkg/models"
	"github.com/halfmoonlabs/chatloop/pkg/quarantine"
	"github.com/halfmoonlabs/chatloop/pkg/queue"
	"github.com/halfmoonlabs/chatloop/pkg/services"
	"github.com/halfmoonlabs/chatloop/test/util"
)

const testToken = "test-credential"

type apiHarness struct {
	router  *gin.Engine
	reviews *services.ReviewService
	qsvc    *services.QuarantineService
	mem     *memory.Store
	queue   *queue.ReviewQueue
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	client, db := util.SetupTestDatabase(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	q := queue.New(rdb)
	reviews := services.NewReviewService(client, q)
	statuses := services.NewStatusService(client)
	qsvc := services.NewQuarantineService(client, events.NewPublisher(db), 7*24*time.Hour)
	mem := memory.NewStore(rdb, memory.Options{})
	tracker := batching.New(rdb, nopSink{}, batching.Options{Enabled: false})
	t.Cleanup(tracker.Stop)
	qm := quarantine.NewManager(qsvc, tracker)
	erasure := services.NewErasureService(client)

	srv := NewServer(reviews, statuses, qsvc, qm, erasure, mem, db, kv.NewClientFromRedis(rdb), testToken)
	return &apiHarness{
		router:  srv.Router(),
		reviews: reviews,
		qsvc:    qsvc,
		mem:     mem,
		queue:   q,
	}
}

type nopSink struct{}

func (nopSink) Enqueue(context.Context, *models.PipelineJob) error { return nil }

func (h *apiHarness) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("X-Reviewer-ID", "reviewer-a")
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *apiHarness) seedReview(t *testing.T, userID int64) string {
	t.Helper()
	reviewID := uuid.NewString()
	_, err := h.reviews.Create(context.Background(), models.CreateReviewItemRequest{
		ReviewID:       reviewID,
		UserID:         userID,
		ChatID:         userID,
		InboundText:    "hola",
		Draft:          "hola! como estas?",
		RefinedBubbles: []string{"hola!", "como estas?"},
		Safety:         models.SafetyReport{Recommendation: models.SafetyApprove},
		PriorityScore:  0.2,
	})
	require.NoError(t, err)
	return reviewID
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorDetail {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestAPI_AuthRequired(t *testing.T) {
	h := newAPIHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/reviews/pending", nil)
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, CodeUnauthorized, decodeError(t, rec).Code)
}

func TestAPI_HealthIsOpen(t *testing.T) {
	h := newAPIHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestAPI_ReviewLifecycle(t *testing.T) {
	h := newAPIHarness(t)
	reviewID := h.seedReview(t, 5001)

	rec := h.do(t, http.MethodGet, "/reviews/pending?limit=5", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pending struct {
		Items []pendingItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	require.Len(t, pending.Items, 1)
	assert.Equal(t, reviewID, pending.Items[0].Item.ID)
	require.NotNil(t, pending.Items[0].UserStatus)

	rec = h.do(t, http.MethodPost, "/reviews/"+reviewID+"/reviewing", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodPost, "/reviews/"+reviewID+"/approve", models.ApproveReviewRequest{
		FinalBubbles: []string{"hola!", "como estas? 😊"},
		EditTags:     []string{"CONTENT_EMOJI_ADD"},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	entry, err := h.queue.PopApproved(context.Background(), 100*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, reviewID, entry.ReviewID)

	// Cancel after approval is an illegal transition.
	rec = h.do(t, http.MethodPost, "/reviews/"+reviewID+"/cancel", nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, CodeConflict, decodeError(t, rec).Code)
}

func TestAPI_ValidationErrors(t *testing.T) {
	h := newAPIHarness(t)
	reviewID := h.seedReview(t, 5002)

	rec := h.do(t, http.MethodPost, "/reviews/"+reviewID+"/approve", models.ApproveReviewRequest{
		FinalBubbles: []string{"ok"},
		EditTags:     []string{"NOT_A_TAG"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, CodeValidation, detail.Code)

	rec = h.do(t, http.MethodGet, "/reviews/pending?limit=0", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodGet, "/reviews/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeNotFound, decodeError(t, rec).Code)

	// Mutations demand a reviewer identity.
	rec = h.do(t, http.MethodPost, "/reviews/"+reviewID+"/reviewing", nil,
		map[string]string{"X-Reviewer-ID": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_UserStatusEndpoints(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodGet, "/users/5003/status", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, models.CustomerStatusProspect, status["customer_status"])

	rec = h.do(t, http.MethodPost, "/users/5003/status", models.UpdateUserStatusRequest{
		CustomerStatus: strPtr(models.CustomerStatusCustomer),
		LTVDeltaUSD:    floatPtr(49.99),
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodPost, "/users/5003/nickname", gin.H{"nickname": "gym guy"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/users/5003/status", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, models.CustomerStatusCustomer, status["customer_status"])
	assert.Equal(t, "gym guy", status["nickname"])
}

func TestAPI_QuarantineEndpoints(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	rec := h.do(t, http.MethodPost, "/users/5004/quarantine",
		models.QuarantineToggleRequest{Active: true, Reason: strPtr("dispute")}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	row, err := h.qsvc.Add(ctx, models.InboundMessage{
		UserID: 5004, ChatID: 5004, MessageID: 1, Text: "hey", ReceivedAt: time.Now(),
	})
	require.NoError(t, err)

	rec = h.do(t, http.MethodGet, "/quarantine?user_id=5004", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Messages []json.RawMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Len(t, listing.Messages, 1)

	// Without user_id the listing spans all users.
	rec = h.do(t, http.MethodGet, "/quarantine", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Len(t, listing.Messages, 1)

	rec = h.do(t, http.MethodPost, "/quarantine/"+row.ID+"/release", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodPost, "/quarantine/"+row.ID+"/release", nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAPI_EraseUserClearsMemory(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	h.seedReview(t, 5005)
	require.NoError(t, h.mem.AppendUserTurn(ctx, 5005, "remember me"))

	rec := h.do(t, http.MethodDelete, "/users/5005", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	snapshot, err := h.mem.GetContext(ctx, 5005)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Recent)
}

func TestAPI_RateLimitQuarantineBucket(t *testing.T) {
	h := newAPIHarness(t)

	var lastCode int
	for i := 0; i < limitQuarantine+1; i++ {
		rec := h.do(t, http.MethodGet, fmt.Sprintf("/quarantine?user_id=%d", 6000+i), nil, nil)
		lastCode = rec.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }
