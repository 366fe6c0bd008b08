package handlers

import (
	"net/http"

	"solar-feasibility/internal/api/models"
	"solar-feasibility/internal/data"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static reference catalogs.
type CatalogHandler struct {
	catalog *data.Catalog
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(catalog *data.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListLocations handles GET /api/v1/locations.
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations := h.catalog.All()
	out := make([]models.LocationInfo, 0, len(locations))
	for _, loc := range locations {
		out = append(out, models.LocationInfo{
			ID:             loc.ID,
			Name:           loc.Name,
			Latitude:       loc.Latitude,
			GHI:            loc.GHI,
			DNI:            loc.DNI,
			OptimalTiltDeg: loc.OptimalTiltDeg,
		})
	}
	c.JSON(http.StatusOK, gin.H{"locations": out})
}

// ListModuleTypes handles GET /api/v1/modules.
func (h *CatalogHandler) ListModuleTypes(c *gin.Context) {
	modules := data.DefaultModuleTypes()
	out := make([]models.ModuleTypeInfo, 0, len(modules))
	for _, m := range modules {
		out = append(out, models.ModuleTypeInfo{
			ID:         m.ID,
			Name:       m.Name,
			Efficiency: m.Efficiency,
		})
	}
	c.JSON(http.StatusOK, gin.H{"modules": out})
}

// ListArrayTypes handles GET /api/v1/arrays.
func (h *CatalogHandler) ListArrayTypes(c *gin.Context) {
	arrays := data.DefaultArrayTypes()
	out := make([]models.ArrayTypeInfo, 0, len(arrays))
	for _, a := range arrays {
		out = append(out, models.ArrayTypeInfo{
			ID:            a.ID,
			Name:          a.Name,
			YieldModifier: a.YieldModifier,
			TracksSun:     a.TracksSun,
			TrackingAxes:  a.TrackingAxes,
		})
	}
	c.JSON(http.StatusOK, gin.H{"arrays": out})
}
