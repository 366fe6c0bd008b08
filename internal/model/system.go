package model

import (
	"errors"
	"fmt"
)

// ModuleType describes a PV module family relative to a standard module.
type ModuleType struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Efficiency float64 `json:"efficiency" yaml:"efficiency"` // multiplier vs standard, typically 0.85..1.10
}

// ArrayType describes the mounting/tracking arrangement of the array.
type ArrayType struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	YieldModifier float64 `json:"yield_modifier" yaml:"yield_modifier"` // dimensionless, 0.9..1.4
	TracksSun     bool    `json:"tracks_sun" yaml:"tracks_sun"`
	TrackingAxes  int     `json:"tracking_axes" yaml:"tracking_axes"` // 0, 1 or 2
}

// SystemConfig is the full physical configuration of a PV installation.
// Units:
// - Tilt, Azimuth: degrees. Azimuth 0 = true north (southern-hemisphere
//   convention: north-facing is optimal).
// - InverterEfficiency: percent.
// - TotalLossPercent: percent, derived from Losses. Never set directly;
//   ApplyLosses keeps it in sync.
type SystemConfig struct {
	LocationID         string       `json:"location_id" yaml:"location_id"`
	Module             ModuleType   `json:"module" yaml:"module"`
	Array              ArrayType    `json:"array" yaml:"array"`
	TiltDeg            float64      `json:"tilt_deg" yaml:"tilt_deg"`
	AzimuthDeg         float64      `json:"azimuth_deg" yaml:"azimuth_deg"`
	DCACRatio          float64      `json:"dc_ac_ratio" yaml:"dc_ac_ratio"`
	InverterEfficiency float64      `json:"inverter_efficiency" yaml:"inverter_efficiency"`
	Losses             SystemLosses `json:"losses" yaml:"losses"`
	TotalLossPercent   float64      `json:"total_loss_percent" yaml:"total_loss_percent"`
	GroundCoverage     float64      `json:"ground_coverage" yaml:"ground_coverage"`
	Bifacial           bool         `json:"bifacial" yaml:"bifacial"`
	Albedo             float64      `json:"albedo" yaml:"albedo"`
}

// NewSystemConfig builds a validated config with the derived loss total
// already computed.
func NewSystemConfig(locationID string, module ModuleType, array ArrayType, tiltDeg, azimuthDeg, dcacRatio, inverterEff float64, losses SystemLosses) (*SystemConfig, error) {
	c := &SystemConfig{
		LocationID:         locationID,
		Module:             module,
		Array:              array,
		TiltDeg:            tiltDeg,
		AzimuthDeg:         azimuthDeg,
		DCACRatio:          dcacRatio,
		InverterEfficiency: inverterEff,
	}
	c.ApplyLosses(losses)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ApplyLosses replaces the loss set and recomputes the cached total.
// All loss edits must go through here so TotalLossPercent can never drift
// from its source values.
func (c *SystemConfig) ApplyLosses(losses SystemLosses) {
	c.Losses = losses
	c.TotalLossPercent = losses.TotalPercent()
}

func (c *SystemConfig) Validate() error {
	if c.LocationID == "" {
		return errors.New("location_id is required")
	}
	if c.Module.Efficiency <= 0 {
		return errors.New("module efficiency must be > 0")
	}
	if c.Array.YieldModifier <= 0 {
		return errors.New("array yield modifier must be > 0")
	}
	if c.TiltDeg < 0 || c.TiltDeg > 90 {
		return errors.New("tilt must be in [0, 90] degrees")
	}
	if c.AzimuthDeg < -90 || c.AzimuthDeg > 90 {
		return errors.New("azimuth must be in [-90, 90] degrees")
	}
	if c.DCACRatio < 1.0 {
		return errors.New("dc_ac_ratio must be >= 1.0")
	}
	if c.InverterEfficiency <= 0 || c.InverterEfficiency > 100 {
		return errors.New("inverter efficiency must be in (0, 100] percent")
	}
	if err := c.Losses.Validate(); err != nil {
		return err
	}
	if diff := c.Losses.TotalPercent() - c.TotalLossPercent; diff > 1e-9 || diff < -1e-9 {
		return fmt.Errorf("total_loss_percent %.6f is stale, expected %.6f (use ApplyLosses)", c.TotalLossPercent, c.Losses.TotalPercent())
	}
	return nil
}
