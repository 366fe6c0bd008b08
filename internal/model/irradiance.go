package model

import "time"

// ForecastSample is one row from the irradiance forecast feed.
// GHI/DNI/DHI are instantaneous W/m² values; the feed samples on an hourly
// grid, so a sample stands for the hour starting at its UTC timestamp.
type ForecastSample struct {
	Timestamp time.Time `json:"timestamp"`
	GHI       float64   `json:"ghi"`
	DNI       float64   `json:"dni,omitempty"`
	DHI       float64   `json:"dhi,omitempty"`
}

// HourOfDay returns the sample's UTC hour bucket (0..23).
func (s ForecastSample) HourOfDay() int {
	return s.Timestamp.UTC().Hour()
}

// HourlyIrradiance is the canonical per-hour irradiance record consumed by
// the generation synthesizer. Produced either synthetically or by
// averaging a multi-day forecast.
type HourlyIrradiance struct {
	Hour int     `json:"hour"` // 0..23
	GHI  float64 `json:"ghi"`  // W/m²
	DNI  float64 `json:"dni,omitempty"`
	DHI  float64 `json:"dhi,omitempty"`
}
