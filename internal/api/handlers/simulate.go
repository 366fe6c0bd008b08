package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"solar-feasibility/internal/api/models"
	"solar-feasibility/internal/config"
	"solar-feasibility/internal/data"
	"solar-feasibility/internal/model"
	"solar-feasibility/internal/simulate"
	"solar-feasibility/internal/solar"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation requests.
type SimulateHandler struct {
	catalog   *data.Catalog
	presetDir string
}

// NewSimulateHandler creates a simulate handler. Presets are system YAML
// files under PRESET_DIR (default ./examples/systems).
func NewSimulateHandler(catalog *data.Catalog) *SimulateHandler {
	dir := os.Getenv("PRESET_DIR")
	if dir == "" {
		dir = "./examples/systems"
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &SimulateHandler{catalog: catalog, presetDir: dir}
}

// RunSimulation handles POST /api/v1/simulate.
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	sysCfg, capacity, err := h.buildSystem(req.System)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SYSTEM",
				Message: err.Error(),
			},
		})
		return
	}

	loc, err := h.catalog.ResolveFor(sysCfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_LOCATION",
				Message: err.Error(),
			},
		})
		return
	}

	irradiance := req.Irradiance
	if len(irradiance) == 0 && req.Forecast != nil {
		irradiance, err = h.fetchIrradiance(loc, req.Forecast)
		if err != nil {
			if fe, ok := err.(*data.ForecastError); ok {
				statusCode := http.StatusBadRequest
				if fe.StatusCode == http.StatusForbidden || fe.StatusCode == http.StatusUnauthorized {
					statusCode = http.StatusUnauthorized
				} else if fe.StatusCode == http.StatusTooManyRequests {
					statusCode = http.StatusTooManyRequests
				}
				c.JSON(statusCode, models.ErrorResponse{
					Error: models.ErrorDetail{
						Code:    fe.Code,
						Message: fe.Message,
						Details: map[string]interface{}{
							"status_code": fe.StatusCode,
							"retry_after": fe.RetryAfter,
						},
					},
				})
				return
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "FORECAST_FETCH_ERROR",
					Message: err.Error(),
				},
			})
			return
		}
	}

	engine := simulate.New()
	result, err := engine.Run(sysCfg, loc, capacity, irradiance)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, buildSimulateResponse(sysCfg, loc, capacity, result, req.Options.IncludeLedger))
}

// buildSystem merges an optional server-side preset with the request
// fields and resolves the result to a validated model config.
func (h *SimulateHandler) buildSystem(spec models.SystemSpec) (*model.SystemConfig, float64, error) {
	override := config.SystemConfig{
		Name:               spec.Name,
		LocationID:         spec.LocationID,
		ModuleType:         spec.ModuleType,
		ArrayType:          spec.ArrayType,
		CapacityKWp:        spec.CapacityKWp,
		TiltDeg:            spec.TiltDeg,
		AzimuthDeg:         spec.AzimuthDeg,
		DCACRatio:          spec.DCACRatio,
		InverterEfficiency: spec.InverterEfficiency,
		Losses:             spec.Losses,
	}

	merged := override
	if spec.SystemFile != "" {
		name := filepath.Base(spec.SystemFile)
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			name += ".yaml"
		}
		path := filepath.Join(h.presetDir, name)
		preset, err := config.LoadSystemPreset(path)
		if err != nil {
			log.Printf("SimulateHandler: preset %s not readable: %v", path, err)
			return nil, 0, fmt.Errorf("unknown system preset %q", spec.SystemFile)
		}
		merged = config.MergeSystem(preset, override)
	}

	if merged.DCACRatio == 0 {
		merged.DCACRatio = 1.0
	}
	if merged.InverterEfficiency == 0 {
		merged.InverterEfficiency = 96
	}
	if merged.CapacityKWp <= 0 {
		return nil, 0, fmt.Errorf("capacity_kwp must be > 0")
	}

	cfg, err := merged.ToModel()
	if err != nil {
		return nil, 0, err
	}
	return cfg, merged.CapacityKWp, nil
}

// fetchIrradiance pulls forecast samples and reduces them to the canonical
// 24-hour profile.
func (h *SimulateHandler) fetchIrradiance(loc data.Location, spec *models.ForecastSpec) ([]model.HourlyIrradiance, error) {
	start, err := time.Parse("2006-01-02", spec.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.Parse("2006-01-02", spec.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date: %w", err)
	}

	client := data.NewForecastClient(spec.APIKey, os.Getenv("FORECAST_BASE_URL"))
	resp, err := client.QueryIrradiance(data.QueryForecastParams{
		LocationID: loc.ID,
		StartTime:  start,
		EndTime:    end,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("forecast returned no samples for %s", loc.ID)
	}
	return solar.AverageIrradiance(resp.Data), nil
}

func buildSimulateResponse(cfg *model.SystemConfig, loc data.Location, capacity float64, result *simulate.Result, includeLedger bool) models.SimulateResponse {
	resp := models.SimulateResponse{
		Status: "completed",
		Summary: models.SimulateSummary{
			Source:           string(result.Source),
			LocationID:       loc.ID,
			CapacityKWp:      capacity,
			Efficiency:       result.Efficiency,
			TotalLossPercent: cfg.TotalLossPercent,
			DailyKWh:         result.DailyKWh,
			AnnualKWh:        result.DailyKWh * 365,
			PeakHour:         result.PeakHour,
			PeakKWh:          result.PeakKWh,
			CapacityFactor:   result.CapacityFactor,
		},
		Profile: make([]float64, 24),
	}
	for h, row := range result.Ledger {
		resp.Profile[h] = row.EnergyKWh
	}
	if includeLedger {
		resp.Ledger = make([]models.LedgerRow, 0, 24)
		for _, row := range result.Ledger {
			resp.Ledger = append(resp.Ledger, models.LedgerRow{
				Hour:         row.Hour,
				GHI:          row.GHI,
				EnergyKWh:    row.EnergyKWh,
				CumEnergyKWh: row.CumEnergyKWh,
				Daylight:     row.Daylight,
			})
		}
	}
	return resp
}
