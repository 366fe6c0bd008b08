package simulate

import (
	"fmt"

	"solar-feasibility/internal/data"
	"solar-feasibility/internal/model"
	"solar-feasibility/internal/solar"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run simulates one representative day for a system.
// irradiance is either nil (synthetic path) or the canonical 24-entry
// hourly profile (measured path).
func (e *Engine) Run(cfg *model.SystemConfig, loc data.Location, capacityKWp float64, irradiance []model.HourlyIrradiance) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("system config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("system config invalid: %w", err)
	}
	if capacityKWp <= 0 {
		return nil, fmt.Errorf("capacity must be > 0")
	}

	profile, err := solar.GenerationProfile(cfg, loc, capacityKWp, irradiance)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Source:     SourceSynthetic,
		Efficiency: solar.SystemEfficiency(cfg, loc),
	}
	if len(irradiance) == 24 {
		res.Source = SourceMeasured
	}

	cum := 0.0
	for h := 0; h < 24; h++ {
		cum += profile[h]

		row := LedgerRow{
			Hour:         h,
			EnergyKWh:    profile[h],
			CumEnergyKWh: cum,
			Daylight:     profile[h] > 0,
		}
		if res.Source == SourceMeasured {
			row.GHI = irradiance[h].GHI
		}
		res.Ledger[h] = row

		if profile[h] > res.PeakKWh {
			res.PeakKWh = profile[h]
			res.PeakHour = h
		}
	}

	res.DailyKWh = cum
	res.CapacityFactor = cum / (capacityKWp * 24.0)
	return res, nil
}

// RunFromForecast averages a raw forecast series into the canonical hourly
// profile first, then simulates the measured path.
func (e *Engine) RunFromForecast(cfg *model.SystemConfig, loc data.Location, capacityKWp float64, samples []model.ForecastSample) (*Result, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no forecast samples")
	}
	return e.Run(cfg, loc, capacityKWp, solar.AverageIrradiance(samples))
}
