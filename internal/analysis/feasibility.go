package analysis

import (
	"solar-feasibility/internal/data"
	"solar-feasibility/internal/model"
	"solar-feasibility/internal/solar"
	"solar-feasibility/internal/tariff"
)

// FeasibilitySummary is a location-level yield and savings estimate that a
// financial-return model would consume. It deliberately stops at energy
// and currency-per-year numbers; IRR/payback live downstream.
type FeasibilitySummary struct {
	LocationID  string
	CapacityKWp float64

	Efficiency float64
	DailyKWh   float64
	AnnualKWh  float64

	// Annual offset value of the generated energy under each exposure
	// methodology's blended rates.
	SavingsAllHours   SavingsSet
	SavingsSolarHours SavingsSet
}

// SavingsSet is annual generated energy priced at one methodology's
// blended rates.
type SavingsSet struct {
	Annual float64
	High   float64
	Low    float64
}

// ComputeFeasibility estimates annual yield for a config at a location and
// prices it at the tariff's blended rates. Daily output uses the synthetic
// expected-generation target (measured profiles are a per-day artifact,
// not an annual basis).
func ComputeFeasibility(cfg *model.SystemConfig, loc data.Location, capacityKWp float64, rates tariff.BlendedRateResult) FeasibilitySummary {
	eff := solar.SystemEfficiency(cfg, loc)
	daily := solar.ExpectedDailyKWh(loc, capacityKWp, eff)
	annual := daily * 365

	return FeasibilitySummary{
		LocationID:        loc.ID,
		CapacityKWp:       capacityKWp,
		Efficiency:        eff,
		DailyKWh:          daily,
		AnnualKWh:         annual,
		SavingsAllHours:   priceEnergy(annual, rates.AllHours),
		SavingsSolarHours: priceEnergy(annual, rates.SolarHours),
	}
}

func priceEnergy(annualKWh float64, set tariff.BlendedSet) SavingsSet {
	return SavingsSet{
		Annual: annualKWh * set.Annual,
		High:   annualKWh * set.High,
		Low:    annualKWh * set.Low,
	}
}
