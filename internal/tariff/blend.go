package tariff

import "solar-feasibility/internal/model"

// BlendedSet is one methodology's blended currency-per-kWh rates.
type BlendedSet struct {
	Annual float64 `json:"annual"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
}

// BlendedRateResult carries the six blended rates: two exposure
// methodologies x three temporal scopes. Computed on demand, never stored.
type BlendedRateResult struct {
	AllHours   BlendedSet `json:"all_hours"`
	SolarHours BlendedSet `json:"solar_hours"`
}

// BlendedRates computes the six annual energy-weighted rates for a tariff
// against the fixed exposure tables. inclVAT selects which stored figure
// each charge accessor reads; it performs no VAT arithmetic.
func BlendedRates(book *RateBook, t *model.Tariff, inclVAT bool) BlendedRateResult {
	return BlendedRatesWithTables(book, t, AllHoursTable(), SolarHoursTable(), inclVAT)
}

// BlendedRatesWithTables is BlendedRates with explicit hour tables,
// injected for tests and for callers carrying their own exposure
// assumptions.
func BlendedRatesWithTables(book *RateBook, t *model.Tariff, allHours, solarHours HourTable, inclVAT bool) BlendedRateResult {
	return BlendedRateResult{
		AllHours:   blendTable(book, t, allHours, inclVAT),
		SolarHours: blendTable(book, t, solarHours, inclVAT),
	}
}

func blendTable(book *RateBook, t *model.Tariff, table HourTable, inclVAT bool) BlendedSet {
	high := seasonBlend(book, t, model.SeasonHigh, table.High, inclVAT)
	low := seasonBlend(book, t, model.SeasonLow, table.Low, inclVAT)

	total := table.Total()
	if total == 0 {
		total = 1 // neutral divisor, keeps an empty table at zero
	}
	annual := (high*table.High.Total() + low*table.Low.Total()) / total

	return BlendedSet{Annual: annual, High: high, Low: low}
}

// seasonBlend hour-weights the per-kWh rate of each TOU period across one
// season. A period with hours but no tariff row contributes zero rate at
// full hour weight, depressing the blend — the documented treatment of
// incomplete tariffs, not an error.
func seasonBlend(book *RateBook, t *model.Tariff, season model.Season, hours PeriodHours, inclVAT bool) float64 {
	// The network demand recovery charge is unbundled onto the Peak row
	// but applies to every kWh of the season.
	var demandAdder float64
	if peakRow, ok := book.Lookup(season, model.PeriodPeak); ok {
		demandAdder = peakRow.NetworkDemandCharge(inclVAT)
	}
	flatAdders := demandAdder + t.Legacy(inclVAT) + t.Subsidy(inclVAT)

	weighted := 0.0
	for _, period := range model.Periods {
		h := hours.Hours(period)
		if h == 0 {
			continue
		}
		row, ok := book.Lookup(season, period)
		if !ok {
			continue // zero rate x its hour share
		}
		rate := row.Energy(inclVAT) + row.Network(inclVAT) + row.Ancillary(inclVAT) + flatAdders
		weighted += rate * h
	}

	total := hours.Total()
	if total == 0 {
		total = 1 // neutral divisor
	}
	return weighted / total
}
