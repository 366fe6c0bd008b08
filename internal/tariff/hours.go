package tariff

import "solar-feasibility/internal/model"

// PeriodHours is the annual hour count of each TOU period within a season.
type PeriodHours struct {
	Peak     float64
	Standard float64
	OffPeak  float64
}

// Hours returns the count for one period.
func (p PeriodHours) Hours(period model.Period) float64 {
	switch period {
	case model.PeriodPeak:
		return p.Peak
	case model.PeriodStandard:
		return p.Standard
	case model.PeriodOffPeak:
		return p.OffPeak
	default:
		return 0
	}
}

// Total returns the season's annual hours.
func (p PeriodHours) Total() float64 {
	return p.Peak + p.Standard + p.OffPeak
}

// HourTable is a fixed exposure assumption: annual hour counts per season
// and period. Tables are reference data, constructed here and never
// mutated; they are not tunable through any API.
type HourTable struct {
	High PeriodHours
	Low  PeriodHours
}

// Season returns one season's hour counts.
func (t HourTable) Season(s model.Season) PeriodHours {
	if s == model.SeasonHigh {
		return t.High
	}
	return t.Low
}

// Total returns the table's annual hours.
func (t HourTable) Total() float64 {
	return t.High.Total() + t.Low.Total()
}

// AllHoursTable is the full-year 24x7x365 exposure: a three-month high
// season (2,208 h) and nine-month low season (6,552 h), 8,760 h in total.
func AllHoursTable() HourTable {
	return HourTable{
		High: PeriodHours{Peak: 330, Standard: 900, OffPeak: 978},
		Low:  PeriodHours{Peak: 975, Standard: 2685, OffPeak: 2892},
	}
}

// SolarHoursTable is the "solar sun hours" exposure: a six-hour daily
// window (2,190 h/year) during which self-generation offsets consumption.
// The window deliberately excludes Peak hours; the remainder splits
// ~92.9% Standard / 7.1% Off-Peak.
func SolarHoursTable() HourTable {
	return HourTable{
		High: PeriodHours{Peak: 0, Standard: 512, OffPeak: 40},
		Low:  PeriodHours{Peak: 0, Standard: 1522, OffPeak: 116},
	}
}
