package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/platecost/backend/internal/domain"
	"github.com/platecost/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	summarizer *usecase.SummarizerService
}

// NewHandler creates a new HTTP handler
func NewHandler(summarizer *usecase.SummarizerService) *Handler {
	return &Handler{summarizer: summarizer}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "platecost-backend",
		"version": "1.0.0",
	})
}

// SummarizeRecipe summarizes a recipe supplied in the request body.
func (h *Handler) SummarizeRecipe(c *gin.Context) {
	var recipe domain.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe payload: " + err.Error()})
		return
	}

	summary, err := h.summarizer.Summarize(c.Request.Context(), &recipe)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// SummarizeStoredRecipe summarizes a recipe from the recipe source by name.
func (h *Handler) SummarizeStoredRecipe(c *gin.Context) {
	summary, err := h.summarizer.SummarizeByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// SummarizeAllRecipes summarizes every recipe in the recipe source and
// returns the results keyed by recipe name.
func (h *Handler) SummarizeAllRecipes(c *gin.Context) {
	summaries, err := h.summarizer.SummarizeAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

// writeError maps domain errors to HTTP status codes. Summarization is
// all-or-nothing, so every error here means no summary was produced.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRecipeNotFound), errors.Is(err, domain.ErrNoCandidates):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnitConversion):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
