package model

import (
	"fmt"
	"strings"
)

// Season is a tariff demand season. Values are stable; they appear in CSV
// and JSON output.
type Season string

const (
	SeasonHigh Season = "HIGH"
	SeasonLow  Season = "LOW"
)

// Period is a time-of-use period within a season.
type Period string

const (
	PeriodPeak     Period = "PEAK"
	PeriodStandard Period = "STANDARD"
	PeriodOffPeak  Period = "OFF_PEAK"
)

// Periods lists the TOU periods in display order.
var Periods = [3]Period{PeriodPeak, PeriodStandard, PeriodOffPeak}

// ParseSeason resolves a free-form season label ("High demand season",
// "low", ...) to a Season tag. Labels mentioning both "high" and "low"
// (e.g. "Low-High Transition") are a data-quality problem and are reported
// rather than guessed at.
func ParseSeason(label string) (Season, error) {
	l := strings.ToLower(label)
	hasHigh := strings.Contains(l, "high")
	hasLow := strings.Contains(l, "low")
	switch {
	case hasHigh && hasLow:
		return "", fmt.Errorf("ambiguous season label %q: matches both high and low", label)
	case hasHigh:
		return SeasonHigh, nil
	case hasLow:
		return SeasonLow, nil
	default:
		return "", fmt.Errorf("unknown season label %q", label)
	}
}

// ParsePeriod resolves a time-of-use label to a Period tag. Matching is an
// exact (case- and separator-insensitive) match, not a substring search.
func ParsePeriod(label string) (Period, error) {
	l := strings.ToLower(strings.TrimSpace(label))
	l = strings.ReplaceAll(l, "-", " ")
	l = strings.ReplaceAll(l, "_", " ")
	l = strings.Join(strings.Fields(l), " ")
	switch l {
	case "peak":
		return PeriodPeak, nil
	case "standard":
		return PeriodStandard, nil
	case "off peak", "offpeak":
		return PeriodOffPeak, nil
	default:
		return "", fmt.Errorf("unknown time-of-use label %q", label)
	}
}

// TariffRate is one season x period row of a time-of-use tariff.
// Every charge is a currency-per-kWh value stored twice, VAT-exclusive and
// VAT-inclusive; the inclusive figure is computed upstream, never here.
// NetworkDemand is populated on Peak rows only and applies uniformly to
// every period of its season at blend time.
type TariffRate struct {
	SeasonLabel string `json:"season_label"`
	PeriodLabel string `json:"period_label"`

	EnergyCharge           float64 `json:"energy_charge"`
	EnergyChargeInclVAT    float64 `json:"energy_charge_incl_vat"`
	NetworkCharge          float64 `json:"network_charge"`
	NetworkChargeInclVAT   float64 `json:"network_charge_incl_vat"`
	NetworkDemand          float64 `json:"network_demand"`
	NetworkDemandInclVAT   float64 `json:"network_demand_incl_vat"`
	AncillaryCharge        float64 `json:"ancillary_charge"`
	AncillaryChargeInclVAT float64 `json:"ancillary_charge_incl_vat"`
}

// Each accessor selects between the stored VAT-exclusive and VAT-inclusive
// figure. The flag never triggers VAT arithmetic.

func (r TariffRate) Energy(inclVAT bool) float64 {
	if inclVAT {
		return r.EnergyChargeInclVAT
	}
	return r.EnergyCharge
}

func (r TariffRate) Network(inclVAT bool) float64 {
	if inclVAT {
		return r.NetworkChargeInclVAT
	}
	return r.NetworkCharge
}

func (r TariffRate) NetworkDemandCharge(inclVAT bool) float64 {
	if inclVAT {
		return r.NetworkDemandInclVAT
	}
	return r.NetworkDemand
}

func (r TariffRate) Ancillary(inclVAT bool) float64 {
	if inclVAT {
		return r.AncillaryChargeInclVAT
	}
	return r.AncillaryCharge
}

// Tariff is a named tariff with its rate rows and tariff-level fixed
// charges. ServiceCharge is per month, DemandCharge per kVA per month;
// LegacyCharge and SubsidyCharge are flat per-kWh adders that apply to
// every kWh regardless of season or period.
type Tariff struct {
	Name  string       `json:"name"`
	Type  string       `json:"type"`
	Rates []TariffRate `json:"rates"`

	ServiceCharge        float64 `json:"service_charge"`
	ServiceChargeInclVAT float64 `json:"service_charge_incl_vat"`
	DemandCharge         float64 `json:"demand_charge"`
	DemandChargeInclVAT  float64 `json:"demand_charge_incl_vat"`
	LegacyCharge         float64 `json:"legacy_charge"`
	LegacyChargeInclVAT  float64 `json:"legacy_charge_incl_vat"`
	SubsidyCharge        float64 `json:"subsidy_charge"`
	SubsidyChargeInclVAT float64 `json:"subsidy_charge_incl_vat"`
}

func (t Tariff) Legacy(inclVAT bool) float64 {
	if inclVAT {
		return t.LegacyChargeInclVAT
	}
	return t.LegacyCharge
}

func (t Tariff) Subsidy(inclVAT bool) float64 {
	if inclVAT {
		return t.SubsidyChargeInclVAT
	}
	return t.SubsidyCharge
}

func (t Tariff) Service(inclVAT bool) float64 {
	if inclVAT {
		return t.ServiceChargeInclVAT
	}
	return t.ServiceCharge
}

func (t Tariff) Demand(inclVAT bool) float64 {
	if inclVAT {
		return t.DemandChargeInclVAT
	}
	return t.DemandCharge
}
