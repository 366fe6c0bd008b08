package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeason(t *testing.T) {
	s, err := ParseSeason("High demand season")
	require.NoError(t, err)
	assert.Equal(t, SeasonHigh, s)

	s, err = ParseSeason("LOW")
	require.NoError(t, err)
	assert.Equal(t, SeasonLow, s)
}

func TestParseSeason_AmbiguousIsFlagged(t *testing.T) {
	_, err := ParseSeason("Low-High Transition")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestParseSeason_Unknown(t *testing.T) {
	_, err := ParseSeason("Winter")
	assert.Error(t, err)
}

func TestParsePeriod(t *testing.T) {
	cases := map[string]Period{
		"Peak":     PeriodPeak,
		"standard": PeriodStandard,
		"Off-Peak": PeriodOffPeak,
		"off peak": PeriodOffPeak,
		"OFF_PEAK": PeriodOffPeak,
		"OffPeak":  PeriodOffPeak,
	}
	for label, want := range cases {
		p, err := ParsePeriod(label)
		require.NoError(t, err, "label %q", label)
		assert.Equal(t, want, p, "label %q", label)
	}

	// Exact matching, not substring: a qualified label is not a period.
	_, err := ParsePeriod("Peak-ish")
	assert.Error(t, err)
}

func TestTariffRate_VATAccessors(t *testing.T) {
	r := TariffRate{
		EnergyCharge:           1.85,
		EnergyChargeInclVAT:    2.13,
		NetworkDemand:          0.42,
		NetworkDemandInclVAT:   0.48,
		AncillaryCharge:        0.01,
		AncillaryChargeInclVAT: 0.012,
	}

	assert.Equal(t, 1.85, r.Energy(false))
	assert.Equal(t, 2.13, r.Energy(true))
	assert.Equal(t, 0.42, r.NetworkDemandCharge(false))
	assert.Equal(t, 0.48, r.NetworkDemandCharge(true))
	assert.Equal(t, 0.01, r.Ancillary(false))
	assert.Equal(t, 0.012, r.Ancillary(true))
}

func TestTariff_VATAccessors(t *testing.T) {
	tr := Tariff{
		LegacyCharge:        0.03,
		LegacyChargeInclVAT: 0.0345,
		ServiceCharge:       250,
		DemandCharge:        90,
	}

	assert.Equal(t, 0.03, tr.Legacy(false))
	assert.Equal(t, 0.0345, tr.Legacy(true))
	assert.Equal(t, 250.0, tr.Service(false))
	assert.Equal(t, 90.0, tr.Demand(false))
	// No stored inclusive figure means the accessor returns the zero it
	// was given; it never computes VAT.
	assert.Equal(t, 0.0, tr.Service(true))
}
