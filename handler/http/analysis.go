package http

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"priorart/src/core/analysis"
	"priorart/src/log"
	"priorart/src/ratelimit"
)

// AnalysisHandler exposes the prior-art analysis pipeline over HTTP. The
// session quota guard is owned here, not by the pipeline: the gate runs
// before the pipeline is invoked and the counter advances only after a
// successful run.
type AnalysisHandler struct {
	service analysis.Service
	limiter *ratelimit.SessionLimiter
	node    *snowflake.Node
}

func NewAnalysisHandler(service analysis.Service, limiter *ratelimit.SessionLimiter) (*AnalysisHandler, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}

	return &AnalysisHandler{
		service: service,
		limiter: limiter,
		node:    node,
	}, nil
}

// RegisterRoutes registers all API routes
func (h *AnalysisHandler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/analyses", h.CreateAnalysis)
	api.GET("/quota", h.GetQuota)
	api.GET("/health", h.CheckHealth)
}

type analysisRequest struct {
	Description string `json:"description" binding:"required"`
	SessionID   string `json:"sessionId"`
}

type analysisResponse struct {
	ID               string                        `json:"id"`
	SessionID        string                        `json:"sessionId"`
	FinalReport      string                        `json:"finalReport"`
	SearchArtifacts  analysis.TransformationResult `json:"searchArtifacts"`
	RemainingQueries int                           `json:"remainingQueries"`
}

// CreateAnalysis runs one prior-art analysis for the submitted invention
// description. Requests without a session ID are assigned a fresh one,
// returned in the response for the client to reuse.
func (h *AnalysisHandler) CreateAnalysis(c *gin.Context) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if !h.limiter.CanQuery(sessionID) {
		c.JSON(http.StatusTooManyRequests, ErrorResponse{
			Code:    "QUOTA_EXCEEDED",
			Message: h.limiter.UsageMessage(sessionID),
		})
		return
	}

	result, err := h.service.Run(c.Request.Context(), req.Description)
	if err != nil {
		log.Error(err, "analysis failed", "sessionId", sessionID)
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	h.limiter.Increment(sessionID)

	sendJSON(c, http.StatusOK, analysisResponse{
		ID:               h.node.Generate().String(),
		SessionID:        sessionID,
		FinalReport:      result.FinalReport,
		SearchArtifacts:  result.SearchArtifacts,
		RemainingQueries: h.limiter.Remaining(sessionID),
	})
}

type quotaResponse struct {
	SessionID        string `json:"sessionId"`
	MaxQueries       int    `json:"maxQueries"`
	RemainingQueries int    `json:"remainingQueries"`
	Message          string `json:"message"`
}

// GetQuota reports the remaining analyses for a session
func (h *AnalysisHandler) GetQuota(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_REQUEST",
			Message: "sessionId query parameter is required",
		})
		return
	}

	sendJSON(c, http.StatusOK, quotaResponse{
		SessionID:        sessionID,
		MaxQueries:       h.limiter.MaxQueries(),
		RemainingQueries: h.limiter.Remaining(sessionID),
		Message:          h.limiter.UsageMessage(sessionID),
	})
}

// CheckHealth reports service liveness
func (h *AnalysisHandler) CheckHealth(c *gin.Context) {
	sendJSON(c, http.StatusOK, gin.H{"status": "ok"})
}

// Common error response structure
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func sendError(c *gin.Context, status int, err error) {
	var code string
	var transformErr *analysis.TransformationError
	var synthesisErr *analysis.SynthesisError

	switch {
	case errors.Is(err, analysis.ErrEmptyDescription):
		code = "INVALID_REQUEST"
		status = http.StatusBadRequest
	case errors.As(err, &transformErr):
		code = "TRANSFORMATION_FAILED"
		status = http.StatusBadGateway
	case errors.As(err, &synthesisErr):
		code = "SYNTHESIS_FAILED"
		status = http.StatusBadGateway
	case status == http.StatusBadRequest:
		code = "INVALID_REQUEST"
	default:
		code = "INTERNAL_ERROR"
		status = http.StatusInternalServerError
	}

	c.JSON(status, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func sendJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}
