package handlers

import (
	"net/http"

	"solar-feasibility/internal/api/models"
	"solar-feasibility/internal/tariff"

	"github.com/gin-gonic/gin"
)

// RatesHandler handles blended-rate requests.
type RatesHandler struct{}

// NewRatesHandler creates a rates handler.
func NewRatesHandler() *RatesHandler {
	return &RatesHandler{}
}

// BlendRates handles POST /api/v1/rates/blend.
func (h *RatesHandler) BlendRates(c *gin.Context) {
	var req models.BlendRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	book, err := tariff.OrganizeRates(req.Tariff.Rates)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_TARIFF",
				Message: err.Error(),
			},
		})
		return
	}

	missing := book.MissingSlots()
	if req.Strict && len(missing) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INCOMPLETE_TARIFF",
				Message: "tariff is missing season/period rates",
				Details: map[string]interface{}{
					"missing_slots": missing,
				},
			},
		})
		return
	}

	rates := tariff.BlendedRates(book, &req.Tariff, req.InclVAT)

	c.JSON(http.StatusOK, models.BlendRatesResponse{
		Status:       "completed",
		TariffName:   req.Tariff.Name,
		InclVAT:      req.InclVAT,
		Rates:        rates,
		MissingSlots: missing,
	})
}
