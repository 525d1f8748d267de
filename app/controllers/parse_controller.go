package controllers

import (
	"net/http"

	"github.com/cardparser/vcard/app/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ParseController exposes the parse pipeline over HTTP.
type ParseController struct {
	parseService *services.ParseService
	logger       *zap.Logger
}

// NewParseController builds a ParseController.
func NewParseController(parseService *services.ParseService, logger *zap.Logger) *ParseController {
	return &ParseController{parseService: parseService, logger: logger}
}

// parseRequest and its siblings below are bound with ShouldBindJSON and
// carry no binding struct tags, so gin's go-playground/validator has no
// rules to enforce on them — the card-text payload needs only the plain
// non-empty-string check done in each handler.
type parseRequest struct {
	Text string `json:"text"`
}

type batchParseRequest struct {
	Texts []string `json:"texts"`
}

type debugLayoutRequest struct {
	Text string `json:"text"`
}

// Parse handles POST /v1/parse: parses a single business card's raw OCR
// text and returns the resolved ContactRecord, serving a cache hit when
// the exact text has been seen before.
func (pc *ParseController) Parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text must not be empty"})
		return
	}

	entry, cached, err := pc.parseService.Parse(c.Request.Context(), req.Text)
	if err != nil {
		pc.logger.Error("parse failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": entry.Result,
		"cached": cached,
	})
}

// ParseBatch handles POST /v1/parse/batch: parses every text independently
// and returns the results in the same order. Unlike Parse, this bypasses
// the cache tier to avoid one slow card blocking the whole batch response.
func (pc *ParseController) ParseBatch(c *gin.Context) {
	var req batchParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Texts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "texts must not be empty"})
		return
	}

	records := pc.parseService.ParseBatch(req.Texts)
	c.JSON(http.StatusOK, gin.H{"results": records})
}

// DebugLayout handles POST /v1/debug/layout: returns the layout
// normalizer's intermediate chunks for a given raw text, for diagnosing
// why a detector did or didn't fire on a particular card.
func (pc *ParseController) DebugLayout(c *gin.Context) {
	var req debugLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text must not be empty"})
		return
	}

	chunks := pc.parseService.DebugLayout(req.Text)
	c.JSON(http.StatusOK, gin.H{"chunks": chunks})
}

// HealthCheck handles GET /health, /ready and /live.
func (pc *ParseController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
