package models

import (
	"solar-feasibility/internal/tariff"
)

// SimulateResponse represents the response from a simulation run.
type SimulateResponse struct {
	Status  string          `json:"status"`
	Summary SimulateSummary `json:"summary"`
	Profile []float64       `json:"profile"` // 24 hourly kWh values
	Ledger  []LedgerRow     `json:"ledger,omitempty"`
}

// SimulateSummary contains aggregated simulation results.
type SimulateSummary struct {
	Source           string  `json:"source"` // "MEASURED" or "SYNTHETIC"
	LocationID       string  `json:"location_id"`
	CapacityKWp      float64 `json:"capacity_kwp"`
	Efficiency       float64 `json:"efficiency"`
	TotalLossPercent float64 `json:"total_loss_percent"`
	DailyKWh         float64 `json:"daily_kwh"`
	AnnualKWh        float64 `json:"annual_kwh"`
	PeakHour         int     `json:"peak_hour"`
	PeakKWh          float64 `json:"peak_kwh"`
	CapacityFactor   float64 `json:"capacity_factor"`
}

// LedgerRow represents one hour in the simulation ledger.
type LedgerRow struct {
	Hour         int     `json:"hour"`
	GHI          float64 `json:"ghi_w_m2"`
	EnergyKWh    float64 `json:"energy_kwh"`
	CumEnergyKWh float64 `json:"cum_energy_kwh"`
	Daylight     bool    `json:"daylight"`
}

// BlendRatesResponse represents the response from a blended-rate
// computation.
type BlendRatesResponse struct {
	Status       string                  `json:"status"`
	TariffName   string                  `json:"tariff_name"`
	InclVAT      bool                    `json:"incl_vat"`
	Rates        tariff.BlendedRateResult `json:"rates"`
	MissingSlots []string                `json:"missing_slots,omitempty"`
}

// RankResponse represents the response from ranking locations.
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking represents one ranked location.
type Ranking struct {
	Rank       int     `json:"rank"`
	LocationID string  `json:"location_id"`
	Name       string  `json:"name"`
	GHI        float64 `json:"ghi"`
	Efficiency float64 `json:"efficiency"`
	DailyKWh   float64 `json:"daily_kwh"`
	AnnualKWh  float64 `json:"annual_kwh"`
}

// LocationInfo represents one catalog location.
type LocationInfo struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	GHI            float64 `json:"ghi"`
	DNI            float64 `json:"dni"`
	OptimalTiltDeg float64 `json:"optimal_tilt_deg"`
}

// ModuleTypeInfo represents one catalog module family.
type ModuleTypeInfo struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Efficiency float64 `json:"efficiency"`
}

// ArrayTypeInfo represents one catalog mounting arrangement.
type ArrayTypeInfo struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	YieldModifier float64 `json:"yield_modifier"`
	TracksSun     bool    `json:"tracks_sun"`
	TrackingAxes  int     `json:"tracking_axes"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
