package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/ArowuTest/lotto-tracker/internal/models"
	"github.com/ArowuTest/lotto-tracker/internal/services"
	"github.com/ArowuTest/lotto-tracker/internal/utils"
	"github.com/gin-gonic/gin"
)

// DrawHandler handles draw-related HTTP requests
type DrawHandler struct {
	tracker          services.DrawTracker
	defaultFixedSets string
}

// NewDrawHandler creates a new DrawHandler. defaultFixedSets is used when an update
// request does not carry its own numbers.
func NewDrawHandler(tracker services.DrawTracker, defaultFixedSets string) *DrawHandler {
	return &DrawHandler{
		tracker:          tracker,
		defaultFixedSets: defaultFixedSets,
	}
}

// SetEvaluation is the per-set detail returned by the evaluate endpoint
type SetEvaluation struct {
	Set     models.FixedSet `json:"set"`
	Tier    int             `json:"tier"`
	Label   string          `json:"label"`
	Matched int             `json:"matched"`
}

// GetDraws handles GET /draws
func (h *DrawHandler) GetDraws(c *gin.Context) {
	records := h.tracker.Records()
	c.JSON(http.StatusOK, gin.H{"records": records, "count": len(records)})
}

// UpdateDraws handles POST /draws/update
func (h *DrawHandler) UpdateDraws(c *gin.Context) {
	var request models.FixedSetsRequest
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw := request.Raw
	if strings.TrimSpace(raw) == "" {
		raw = h.defaultFixedSets
	}
	fixedSets := utils.ParseFixedSets(raw)

	result, records, err := h.tracker.TriggerUpdate(c.Request.Context(), fixedSets)
	if err != nil {
		_ = c.Error(err)
		c.JSON(updateErrorStatus(err), gin.H{"error": services.UserMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Draw history updated",
		"result":    result,
		"fixedSets": fixedSets,
		"count":     len(records),
	})
}

// EvaluateNumbers handles POST /draws/evaluate
func (h *DrawHandler) EvaluateNumbers(c *gin.Context) {
	var request models.EvaluateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var winning [models.NumbersPerDraw]int
	copy(winning[:], request.Numbers)
	fixedSets := utils.ParseFixedSets(request.Raw)

	details := make([]SetEvaluation, 0, len(fixedSets))
	for _, set := range fixedSets {
		tier, matched := services.Classify(set, winning, request.Bonus)
		details = append(details, SetEvaluation{Set: set, Tier: int(tier), Label: tier.String(), Matched: matched})
	}
	results := services.Evaluate(fixedSets, winning, request.Bonus)

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"summary": services.Summary(results),
		"details": details,
	})
}

// ParseFixedSets handles POST /fixed-sets/parse
func (h *DrawHandler) ParseFixedSets(c *gin.Context) {
	var request models.FixedSetsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixedSets": utils.ParseFixedSets(request.Raw)})
}

func updateErrorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrNetwork),
		errors.Is(err, models.ErrParse),
		errors.Is(err, models.ErrLookupExhausted):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
