package tariff

import (
	"fmt"

	"solar-feasibility/internal/model"
)

type slot struct {
	season model.Season
	period model.Period
}

// RateBook is the season x period lookup built from a tariff's flat rate
// rows. Labels are resolved to enum tags exactly once, at ingestion; every
// later lookup is a map hit, never a string re-match.
type RateBook struct {
	rates map[slot]model.TariffRate
}

// OrganizeRates indexes flat tariff rows. Rows with unknown or ambiguous
// season/period labels fail the whole organize call: a mislabeled row is a
// data-quality problem to surface, not to bin silently. Combinations with
// no row at all stay empty; consumers treat them as zero-contribution.
func OrganizeRates(rows []model.TariffRate) (*RateBook, error) {
	book := &RateBook{rates: make(map[slot]model.TariffRate, len(rows))}
	for i, row := range rows {
		season, err := model.ParseSeason(row.SeasonLabel)
		if err != nil {
			return nil, fmt.Errorf("rate row %d: %w", i, err)
		}
		period, err := model.ParsePeriod(row.PeriodLabel)
		if err != nil {
			return nil, fmt.Errorf("rate row %d: %w", i, err)
		}
		key := slot{season: season, period: period}
		if _, dup := book.rates[key]; dup {
			return nil, fmt.Errorf("rate row %d: duplicate rate for %s/%s", i, season, period)
		}
		book.rates[key] = row
	}
	return book, nil
}

// Lookup returns the rate row for a season/period, if one was ingested.
func (b *RateBook) Lookup(season model.Season, period model.Period) (model.TariffRate, bool) {
	r, ok := b.rates[slot{season: season, period: period}]
	return r, ok
}

// Complete reports whether all six season/period slots are filled.
// Blending tolerates gaps; callers that need strict tariffs check this.
func (b *RateBook) Complete() bool {
	return len(b.MissingSlots()) == 0
}

// MissingSlots lists the unfilled season/period combinations.
func (b *RateBook) MissingSlots() []string {
	var missing []string
	for _, season := range []model.Season{model.SeasonHigh, model.SeasonLow} {
		for _, period := range model.Periods {
			if _, ok := b.rates[slot{season: season, period: period}]; !ok {
				missing = append(missing, fmt.Sprintf("%s/%s", season, period))
			}
		}
	}
	return missing
}
