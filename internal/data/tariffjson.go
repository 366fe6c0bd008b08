package data

import (
	"encoding/json"
	"os"

	"solar-feasibility/internal/model"
)

// LoadTariffJSON loads a tariff (with its rate rows) exported from the
// tariff-management store.
func LoadTariffJSON(path string) (*model.Tariff, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t model.Tariff
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GroupBySeasonLabel splits tariff rows into season-label-keyed slices.
// Useful for inspecting a tariff export before organizing it.
func GroupBySeasonLabel(t *model.Tariff) map[string][]model.TariffRate {
	out := map[string][]model.TariffRate{}
	if t == nil {
		return out
	}
	for _, r := range t.Rates {
		out[r.SeasonLabel] = append(out[r.SeasonLabel], r)
	}
	return out
}
