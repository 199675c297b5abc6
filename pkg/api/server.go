// Package api exposes the reviewer-facing HTTP surface: the review
// lifecycle, user status administration, the silence protocol, GDPR
// erasure, and health.
package api

import (
	"context"
	stdsql "database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/halfmoonlabs/chatloop/pkg/database"
	"github.com/halfmoonlabs/chatloop/pkg/delivery"
	"github.com/halfmoonlabs/chatloop/pkg/kv"
	"github.com/halfmoonlabs/chatloop/pkg/memory"
	"github.com/halfmoonlabs/chatloop/pkg/pipeline"
	"github.com/halfmoonlabs/chatloop/pkg/quarantine"
	"github.com/halfmoonlabs/chatloop/pkg/services"
	"github.com/halfmoonlabs/chatloop/pkg/version"
)

// Server wires the service layer to the HTTP routes.
type Server struct {
	reviews    *services.ReviewService
	statuses   *services.StatusService
	qsvc       *services.QuarantineService
	quarantine *quarantine.Manager
	erasure    *services.ErasureService
	memory     *memory.Store

	db *stdsql.DB
	kv *kv.Client

	supervisor *pipeline.Supervisor
	delivery   *delivery.Pool

	token    string
	limiters *rateLimiters
}

// SetSupervisor attaches the processing pool for health introspection.
func (s *Server) SetSupervisor(sup *pipeline.Supervisor) {
	s.supervisor = sup
}

// SetDeliveryPool attaches the delivery pool for health introspection.
func (s *Server) SetDeliveryPool(p *delivery.Pool) {
	s.delivery = p
}

// NewServer creates the API server.
func NewServer(reviews *services.ReviewService, statuses *services.StatusService,
	qsvc *services.QuarantineService, qm *quarantine.Manager, erasure *services.ErasureService,
	mem *memory.Store, db *stdsql.DB, kvClient *kv.Client, token string) *Server {
	return &Server{
		reviews:    reviews,
		statuses:   statuses,
		qsvc:       qsvc,
		quarantine: qm,
		erasure:    erasure,
		memory:     mem,
		db:         db,
		kv:         kvClient,
		token:      token,
		limiters:   newRateLimiters(),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.health)

	authed := r.Group("/", bearerAuth(s.token), withDeadline())

	reads := authed.Group("/", s.limiters.limit(bucketPendingReads, limitPendingReads))
	reads.GET("/reviews/pending", s.listPending)

	authed.GET("/reviews/:id", s.getReview)

	mutations := authed.Group("/", s.limiters.limit(bucketMutations, limitMutations))
	mutations.POST("/reviews/:id/reviewing", s.startReviewing)
	mutations.POST("/reviews/:id/approve", s.approveReview)
	mutations.POST("/reviews/:id/reject", s.rejectReview)
	mutations.POST("/reviews/:id/cancel", s.cancelReview)
	mutations.GET("/users/:user_id/status", s.getUserStatus)
	mutations.POST("/users/:user_id/status", s.updateUserStatus)
	mutations.POST("/users/:user_id/nickname", s.setNickname)

	quar := authed.Group("/", s.limiters.limit(bucketQuarantine, limitQuarantine))
	quar.POST("/users/:user_id/quarantine", s.toggleQuarantine)
	quar.GET("/quarantine", s.listQuarantine)
	quar.POST("/quarantine/:q_id/release", s.releaseQuarantine)
	quar.DELETE("/users/:user_id", s.eraseUser)

	return r
}

// health reports store reachability. Unauthenticated.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{"status": "healthy", "version": version.Full()}
	healthy := true

	dbHealth, err := database.Health(ctx, s.db)
	body["database"] = dbHealth
	if err != nil {
		healthy = false
	}

	if latency, err := s.kv.Health(ctx); err != nil {
		body["kv"] = gin.H{"reachable": false, "error": err.Error()}
		healthy = false
	} else {
		body["kv"] = gin.H{"reachable": true, "latency": latency.String()}
	}

	if s.supervisor != nil {
		body["pipeline"] = s.supervisor.Health()
	}
	if s.delivery != nil {
		body["delivery"] = s.delivery.Health()
	}

	if !healthy {
		body["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}

func contextWithTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}
