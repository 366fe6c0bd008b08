package solar

import (
	"math"

	"solar-feasibility/internal/data"
	"solar-feasibility/internal/model"
)

// Geometric penalty slopes. The tilt/azimuth factors are a deliberately
// simplified monotonic approximation of plane-of-array effects, not a
// solar-position model: a linear penalty with at most 15% lost at a 90°
// tilt deviation and at most 25% lost at ±180° of azimuth.
const (
	tiltPenaltyMax    = 0.15
	azimuthPenaltyMax = 0.25
)

// SystemEfficiency reduces a system configuration and its location to one
// efficiency scalar in (0, 1] for a correctly configured system:
// module efficiency x array yield modifier x inverter efficiency x
// retained-after-losses x tilt factor x azimuth factor.
//
// Azimuth 0 means true north, the optimum in the southern hemisphere;
// optimal tilt is |latitude| by catalog convention.
func SystemEfficiency(cfg *model.SystemConfig, loc data.Location) float64 {
	moduleEff := cfg.Module.Efficiency
	arrayMod := cfg.Array.YieldModifier
	inverterEff := cfg.InverterEfficiency / 100.0
	lossMultiplier := 1.0 - cfg.TotalLossPercent/100.0

	return moduleEff * arrayMod * inverterEff * lossMultiplier *
		TiltFactor(cfg.TiltDeg, loc.OptimalTiltDeg) *
		AzimuthFactor(cfg.AzimuthDeg)
}

// TiltFactor penalizes deviation from the location's optimal tilt,
// linearly down to 1-tiltPenaltyMax at a 90° deviation.
func TiltFactor(tiltDeg, optimalTiltDeg float64) float64 {
	return 1.0 - math.Abs(tiltDeg-optimalTiltDeg)/90.0*tiltPenaltyMax
}

// AzimuthFactor penalizes deviation from true north, linearly down to
// 1-azimuthPenaltyMax at ±180°.
func AzimuthFactor(azimuthDeg float64) float64 {
	return 1.0 - math.Abs(azimuthDeg)/180.0*azimuthPenaltyMax
}
