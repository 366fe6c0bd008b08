package analysis

import (
	"sort"

	"solar-feasibility/internal/data"
	"solar-feasibility/internal/model"
	"solar-feasibility/internal/solar"
)

// LocationYield is one location's expected yield for a given system
// configuration, used for ranking candidate sites.
type LocationYield struct {
	Location data.Location

	Efficiency float64
	DailyKWh   float64
	AnnualKWh  float64
}

// RankByAnnualYield evaluates the same system at every catalog location
// and sorts descending by expected annual energy. Tilt is re-optimized per
// location (each site's optimal tilt differs), azimuth is kept as
// configured.
func RankByAnnualYield(locations []data.Location, cfg model.SystemConfig, capacityKWp float64) []LocationYield {
	out := make([]LocationYield, 0, len(locations))
	for _, loc := range locations {
		site := cfg
		site.LocationID = loc.ID
		site.TiltDeg = loc.OptimalTiltDeg

		eff := solar.SystemEfficiency(&site, loc)
		daily := solar.ExpectedDailyKWh(loc, capacityKWp, eff)
		out = append(out, LocationYield{
			Location:   loc,
			Efficiency: eff,
			DailyKWh:   daily,
			AnnualKWh:  daily * 365,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AnnualKWh > out[j].AnnualKWh
	})
	return out
}
