package solar

import (
	"testing"

	"solar-feasibility/internal/data"
	"solar-feasibility/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func johannesburg(t *testing.T) data.Location {
	t.Helper()
	loc, err := data.MustDefaultCatalog().Lookup("johannesburg")
	require.NoError(t, err)
	return loc
}

func referenceConfig(t *testing.T) *model.SystemConfig {
	t.Helper()
	cfg, err := model.NewSystemConfig("johannesburg",
		model.ModuleType{ID: "standard", Efficiency: 1.0},
		model.ArrayType{ID: "fixed_roof", YieldModifier: 0.98},
		26, 0, 1.2, 96, model.DefaultLosses())
	require.NoError(t, err)
	return cfg
}

func TestTiltFactor(t *testing.T) {
	assert.InDelta(t, 1.0, TiltFactor(26, 26), 1e-12)
	// 90° off optimal costs the full 15%.
	assert.InDelta(t, 0.85, TiltFactor(90, 0), 1e-12)
	assert.InDelta(t, 1.0-(10.0/90.0)*0.15, TiltFactor(36, 26), 1e-12)
}

func TestAzimuthFactor(t *testing.T) {
	assert.InDelta(t, 1.0, AzimuthFactor(0), 1e-12)
	assert.InDelta(t, 1.0-(90.0/180.0)*0.25, AzimuthFactor(90), 1e-12)
	assert.InDelta(t, 1.0-(90.0/180.0)*0.25, AzimuthFactor(-90), 1e-12)
}

func TestSystemEfficiency_ReferenceScenario(t *testing.T) {
	eff := SystemEfficiency(referenceConfig(t), johannesburg(t))

	// 1.0 * 0.98 * 0.96 * (1 - 0.160519), tilt and azimuth optimal.
	assert.InDelta(t, 0.7898, eff, 0.0005)
}

func TestSystemEfficiency_Bounded(t *testing.T) {
	cfg := referenceConfig(t)
	loc := johannesburg(t)

	eff := SystemEfficiency(cfg, loc)
	assert.Greater(t, eff, 0.0)
	assert.LessOrEqual(t, eff, cfg.Module.Efficiency*cfg.Array.YieldModifier)

	// Worst geometry still stays positive.
	cfg.TiltDeg = 90
	cfg.AzimuthDeg = -90
	worst := SystemEfficiency(cfg, loc)
	assert.Greater(t, worst, 0.0)
	assert.Less(t, worst, eff)
}

func TestSystemEfficiency_MonotonicInTiltDeviation(t *testing.T) {
	cfg := referenceConfig(t)
	loc := johannesburg(t)

	base := SystemEfficiency(cfg, loc)
	cfg.TiltDeg = 40
	off := SystemEfficiency(cfg, loc)
	assert.Less(t, off, base)
}
