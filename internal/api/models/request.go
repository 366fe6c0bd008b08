package models

import "solar-feasibility/internal/model"

// SimulateRequest represents the request body for running a generation
// simulation.
type SimulateRequest struct {
	System     SystemSpec               `json:"system" binding:"required"`
	Irradiance []model.HourlyIrradiance `json:"irradiance,omitempty"` // 24 entries; omit for the synthetic curve
	Forecast   *ForecastSpec            `json:"forecast,omitempty"`   // fetch samples from the forecast provider
	Options    SimulateOptions          `json:"options,omitempty"`
}

// SystemSpec defines the PV system. SystemFile names a server-side preset;
// explicit fields override it.
type SystemSpec struct {
	SystemFile         string              `json:"system_file,omitempty"`
	Name               string              `json:"name,omitempty"`
	LocationID         string              `json:"location_id,omitempty"`
	ModuleType         string              `json:"module_type,omitempty"`
	ArrayType          string              `json:"array_type,omitempty"`
	CapacityKWp        float64             `json:"capacity_kwp,omitempty"`
	TiltDeg            float64             `json:"tilt_deg,omitempty"`
	AzimuthDeg         float64             `json:"azimuth_deg,omitempty"`
	DCACRatio          float64             `json:"dc_ac_ratio,omitempty"`
	InverterEfficiency float64             `json:"inverter_efficiency,omitempty"`
	Losses             *model.SystemLosses `json:"losses,omitempty"`
}

// ForecastSpec defines a forecast fetch. The API key passes through from
// the client; the server holds no provider credentials.
type ForecastSpec struct {
	APIKey    string `json:"api_key" binding:"required"`
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" binding:"required"`   // YYYY-MM-DD
}

// SimulateOptions contains optional simulation parameters.
type SimulateOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// BlendRatesRequest represents a request to compute blended tariff rates.
type BlendRatesRequest struct {
	Tariff  model.Tariff `json:"tariff" binding:"required"`
	InclVAT bool         `json:"incl_vat,omitempty"`
	Strict  bool         `json:"strict,omitempty"` // reject tariffs with missing season/period rows
}

// RankRequest represents a request to rank catalog locations by yield.
type RankRequest struct {
	ModuleType  string  `form:"module_type"`
	ArrayType   string  `form:"array_type"`
	CapacityKWp float64 `form:"capacity_kwp" binding:"required"`
	AzimuthDeg  float64 `form:"azimuth_deg"`
	Limit       int     `form:"limit"` // default: 10
}
