package catalog_controller

import (
	"fmt"
	"net/http"

	"github.com/RBazelais/BoltBucket/models"
	"github.com/RBazelais/BoltBucket/services"
	"github.com/gin-gonic/gin"
)

// QuoteRequest names one option id per category plus the model and base
// price. BasePrice is untyped for the same reason item prices are: clients
// send numbers and numeric strings.
type QuoteRequest struct {
	Model      string            `json:"model"`
	BasePrice  any               `json:"basePrice"`
	Selections map[string]string `json:"selections"`
}

type QuoteResponse struct {
	Total      float64 `json:"total"`
	Currency   string  `json:"currency"`
	Compatible bool    `json:"compatible"`
}

// QuoteBuild godoc
// @Summary Price a proposed build server-side
// @Description Resolves the submitted option ids against the catalog, checks compatibility and returns the authoritative total. Unlike item writes, nothing the client claims about prices is trusted here.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param quote body QuoteRequest true "Model, base price and one option id per category"
// @Success 200 {object} QuoteResponse
// @Failure 400 {object} models.ErrorBody
// @Router /api/quote [post]
func QuoteBuild(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request: "+err.Error()))
		return
	}

	selections := make(map[string]services.Selection, len(req.Selections))
	for category, id := range req.Selections {
		if id == "" {
			continue
		}
		opt, ok := optionCatalog.FindOption(category, id)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(
				fmt.Sprintf("Unknown option %q for category %q", id, category)))
			return
		}
		selections[category] = services.SelectOption(opt)
	}

	compatible := compatChecker.IsCompatible(services.Configuration{
		Model:      req.Model,
		Selections: selections,
	})

	c.JSON(http.StatusOK, QuoteResponse{
		Total:      services.ComputeTotal(req.BasePrice, selections),
		Currency:   "USD",
		Compatible: compatible,
	})
}
