package solar

import (
	"fmt"
	"math"

	"solar-feasibility/internal/data"
	"solar-feasibility/internal/model"
)

// Synthetic curve parameters. Generation is modeled as a Gaussian centered
// at solar noon, widened for tracking arrays, zeroed outside an
// approximate daylight window.
const (
	solarNoonHour  = 12.5
	baseCurveWidth = 3.5 // standard deviation, hours

	singleAxisWiden = 1.5
	dualAxisWiden   = 2.5

	daylightStartHour = 5
	daylightEndHour   = 19

	intensityFloor = 0.01

	// Daily GHI divided by this approximates effective peak-sun hours
	// spread across the Gaussian envelope.
	peakSunDivisor = 6.0

	// Realistic-yield correction applied to the expected-daily target.
	yieldCorrection = 0.9
)

// AverageIrradiance reduces a multi-day forecast series to one canonical
// 24-entry hourly profile: each entry is the arithmetic mean of all samples
// sharing that UTC hour. Every hour is present; hours without samples stay
// at zero.
func AverageIrradiance(samples []model.ForecastSample) []model.HourlyIrradiance {
	out := make([]model.HourlyIrradiance, 24)
	for h := range out {
		out[h].Hour = h
	}

	var sumGHI, sumDNI, sumDHI [24]float64
	var count [24]int
	for _, s := range samples {
		h := s.HourOfDay()
		sumGHI[h] += s.GHI
		sumDNI[h] += s.DNI
		sumDHI[h] += s.DHI
		count[h]++
	}

	for h := 0; h < 24; h++ {
		if count[h] == 0 {
			continue
		}
		n := float64(count[h])
		out[h].GHI = sumGHI[h] / n
		out[h].DNI = sumDNI[h] / n
		out[h].DHI = sumDHI[h] / n
	}
	return out
}

// GenerationProfile produces the hourly energy output (kWh) of a system
// over a representative day.
//
// With a 24-entry irradiance profile it converts each hour's GHI (treated
// as a one-hour average power in W/m²) directly to energy. With no
// irradiance data it falls back to the synthetic daylight curve — that
// fallback is by design, not an error. Any other irradiance length is a
// malformed input.
func GenerationProfile(cfg *model.SystemConfig, loc data.Location, capacityKWp float64, irradiance []model.HourlyIrradiance) ([24]float64, error) {
	var out [24]float64
	if cfg == nil {
		return out, fmt.Errorf("system config is nil")
	}
	if capacityKWp < 0 {
		return out, fmt.Errorf("capacity must be >= 0, got %g kWp", capacityKWp)
	}
	if len(irradiance) != 0 && len(irradiance) != 24 {
		return out, fmt.Errorf("irradiance profile must have 24 entries, got %d", len(irradiance))
	}

	eff := SystemEfficiency(cfg, loc)

	if len(irradiance) == 24 {
		return measuredProfile(irradiance, capacityKWp, eff), nil
	}
	return syntheticProfile(cfg, loc, capacityKWp, eff), nil
}

// measuredProfile converts hourly GHI averages to energy:
// W/m² over one hour -> kWh/m² via /1000, times capacity and efficiency.
func measuredProfile(irradiance []model.HourlyIrradiance, capacityKWp, eff float64) [24]float64 {
	var out [24]float64
	for h := 0; h < 24; h++ {
		ghiKWhPerM2 := irradiance[h].GHI / 1000.0
		kwh := capacityKWp * ghiKWhPerM2 * eff
		if kwh < 0 {
			kwh = 0
		}
		out[h] = kwh
	}
	return out
}

// ExpectedDailyKWh is the expected daily generation of a system:
// capacity x daily GHI x efficiency x the realistic-yield correction. The
// synthetic profile is rescaled to sum to exactly this.
func ExpectedDailyKWh(loc data.Location, capacityKWp, efficiency float64) float64 {
	return capacityKWp * loc.GHI * efficiency * yieldCorrection
}

// syntheticProfile shapes a Gaussian day and rescales it so the total
// matches the expected daily generation target
// capacity x GHI x efficiency x yieldCorrection.
func syntheticProfile(cfg *model.SystemConfig, loc data.Location, capacityKWp, eff float64) [24]float64 {
	width := baseCurveWidth
	if cfg.Array.TracksSun {
		switch cfg.Array.TrackingAxes {
		case 1:
			width += singleAxisWiden
		default:
			width += dualAxisWiden
		}
	}

	var out [24]float64
	rawSum := 0.0
	for h := 0; h < 24; h++ {
		if h < daylightStartHour || h > daylightEndHour {
			continue
		}
		d := float64(h) - solarNoonHour
		intensity := math.Exp(-d * d / (2 * width * width))
		if intensity <= intensityFloor {
			continue
		}
		out[h] = capacityKWp * intensity * eff * (loc.GHI / peakSunDivisor)
		rawSum += out[h]
	}

	target := ExpectedDailyKWh(loc, capacityKWp, eff)
	divisor := rawSum
	if divisor == 0 {
		divisor = 1 // all-zero profile stays all-zero
	}
	scale := target / divisor
	for h := 0; h < 24; h++ {
		out[h] *= scale
		if out[h] < 0 {
			out[h] = 0
		}
	}
	return out
}
