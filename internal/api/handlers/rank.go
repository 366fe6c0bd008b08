package handlers

import (
	"net/http"

	"solar-feasibility/internal/analysis"
	"solar-feasibility/internal/api/models"
	"solar-feasibility/internal/data"
	"solar-feasibility/internal/model"

	"github.com/gin-gonic/gin"
)

// RankHandler ranks catalog locations by expected yield.
type RankHandler struct {
	catalog *data.Catalog
}

// NewRankHandler creates a rank handler.
func NewRankHandler(catalog *data.Catalog) *RankHandler {
	return &RankHandler{catalog: catalog}
}

// RankLocations handles GET /api/v1/rank.
func (h *RankHandler) RankLocations(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	if req.ModuleType == "" {
		req.ModuleType = "standard"
	}
	if req.ArrayType == "" {
		req.ArrayType = "fixed_roof"
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}

	module, err := data.FindModuleType(req.ModuleType)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "UNKNOWN_MODULE_TYPE", Message: err.Error()},
		})
		return
	}
	array, err := data.FindArrayType(req.ArrayType)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "UNKNOWN_ARRAY_TYPE", Message: err.Error()},
		})
		return
	}

	// Ranking template; per-location ID and tilt are filled in by the
	// ranking itself.
	template := model.SystemConfig{
		Module:             module,
		Array:              array,
		AzimuthDeg:         req.AzimuthDeg,
		DCACRatio:          1.0,
		InverterEfficiency: 96,
	}
	template.ApplyLosses(model.DefaultLosses())

	ranked := analysis.RankByAnnualYield(h.catalog.All(), template, req.CapacityKWp)
	if len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	resp := models.RankResponse{Rankings: make([]models.Ranking, 0, len(ranked))}
	for i, r := range ranked {
		resp.Rankings = append(resp.Rankings, models.Ranking{
			Rank:       i + 1,
			LocationID: r.Location.ID,
			Name:       r.Location.Name,
			GHI:        r.Location.GHI,
			Efficiency: r.Efficiency,
			DailyKWh:   r.DailyKWh,
			AnnualKWh:  r.AnnualKWh,
		})
	}
	c.JSON(http.StatusOK, resp)
}
