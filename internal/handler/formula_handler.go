package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adaptiv-labs/adaptiv/internal/blend"
	"github.com/adaptiv-labs/adaptiv/internal/formula"
	"github.com/adaptiv-labs/adaptiv/internal/pricing"
)

// FormulaRequest carries the positional quiz answers as the quiz UI
// submits them.
type FormulaRequest struct {
	Answers []string `json:"answers"`
}

// FormulaHandler serves the formulation surface: quiz adjustment, premade
// blends, and the start-from-scratch template. All pure computation, no
// injected dependencies.
type FormulaHandler struct{}

// AdjustFormula runs the quiz answers through the dosage pipeline and
// prices the result. A malformed answer array yields the base template
// unadjusted rather than an error.
func (h *FormulaHandler) AdjustFormula(c *gin.Context) {
	var req FormulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	ingredients := blend.Adjust(req.Answers)
	breakdown := pricing.CostBreakdown(ingredients)

	resp := gin.H{"ingredients": ingredients, "breakdown": breakdown}
	if answers, ok := blend.ParseAnswers(req.Answers); ok && answers.Flavor != "" {
		resp["flavor"] = answers.Flavor
	}
	c.JSON(http.StatusOK, resp)
}

// ListBlends prices every premade sport blend through the same pipeline
// the quiz uses.
func (h *FormulaHandler) ListBlends(c *gin.Context) {
	blends := make([]gin.H, 0, len(blend.Premade))
	for _, b := range blend.Premade {
		ingredients := b.Formula()
		blends = append(blends, gin.H{
			"name":        b.Name,
			"description": b.Description,
			"ingredients": ingredients,
			"breakdown":   pricing.CostBreakdown(ingredients),
		})
	}
	c.JSON(http.StatusOK, gin.H{"blends": blends})
}

// ScratchTemplate returns the start-from-scratch baseline with its price.
func (h *FormulaHandler) ScratchTemplate(c *gin.Context) {
	ingredients := formula.ScratchTemplate()
	c.JSON(http.StatusOK, gin.H{
		"ingredients": ingredients,
		"breakdown":   pricing.CostBreakdown(ingredients),
		"flavors":     formula.Flavors,
	})
}
