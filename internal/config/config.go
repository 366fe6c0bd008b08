package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"solar-feasibility/internal/data"
	"solar-feasibility/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load system parameters from a separate YAML preset
	// (e.g. examples/systems/*.yaml). Explicit fields under System
	// override the preset.
	SystemFile string       `yaml:"system_file"`
	System     SystemConfig `yaml:"system"`

	// Optional tariff export (JSON) to blend rates from.
	TariffFile string `yaml:"tariff_file"`

	Options Options `yaml:"options"`
}

// SystemConfig is the YAML shape of a PV system. Module and array are
// catalog IDs, resolved at validation time.
type SystemConfig struct {
	Name               string              `yaml:"name"`
	LocationID         string              `yaml:"location_id"`
	ModuleType         string              `yaml:"module_type"`
	ArrayType          string              `yaml:"array_type"`
	CapacityKWp        float64             `yaml:"capacity_kwp"`
	TiltDeg            float64             `yaml:"tilt_deg"`
	AzimuthDeg         float64             `yaml:"azimuth_deg"`
	DCACRatio          float64             `yaml:"dc_ac_ratio"`
	InverterEfficiency float64             `yaml:"inverter_efficiency"`
	Losses             *model.SystemLosses `yaml:"losses"`
}

// Options are presentation-time switches, not engine state.
type Options struct {
	InclVAT bool `yaml:"incl_vat"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Default the knobs a concise config leaves out.
	if c.System.DCACRatio == 0 {
		c.System.DCACRatio = 1.0
	}
	if c.System.InverterEfficiency == 0 {
		c.System.InverterEfficiency = 96
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If system_file is set, load it and merge in any explicit overrides
	// from c.System.
	if c.SystemFile != "" {
		systemPath := c.SystemFile
		if !filepath.IsAbs(systemPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, but fall back to the provided path (relative
			// to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), systemPath)
			if _, err := os.Stat(cand); err == nil {
				systemPath = cand
			}
		}
		loaded, err := loadSystemFile(systemPath)
		if err != nil {
			return nil, err
		}
		c.System = MergeSystem(loaded, c.System)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.System.CapacityKWp <= 0 {
		return errors.New("system.capacity_kwp must be > 0")
	}
	// Validate by constructing the model value.
	if _, err := c.System.ToModel(); err != nil {
		return fmt.Errorf("system config invalid: %w", err)
	}
	return nil
}

// ToModel resolves catalog IDs and builds a validated model.SystemConfig.
func (s SystemConfig) ToModel() (*model.SystemConfig, error) {
	module, err := data.FindModuleType(s.ModuleType)
	if err != nil {
		return nil, err
	}
	array, err := data.FindArrayType(s.ArrayType)
	if err != nil {
		return nil, err
	}
	losses := model.DefaultLosses()
	if s.Losses != nil {
		losses = *s.Losses
	}
	return model.NewSystemConfig(s.LocationID, module, array, s.TiltDeg, s.AzimuthDeg, s.DCACRatio, s.InverterEfficiency, losses)
}

type systemFileWrapper struct {
	System SystemConfig `yaml:"system"`
}

// LoadSystemPreset loads a standalone system preset YAML, as referenced by
// system_file or served from the preset directory.
func LoadSystemPreset(path string) (SystemConfig, error) {
	return loadSystemFile(path)
}

func loadSystemFile(path string) (SystemConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SystemConfig{}, err
	}
	var w systemFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return SystemConfig{}, err
	}
	return w.System, nil
}

// MergeSystem overlays non-zero fields from override onto base.
// This is used when loading a system preset and then applying overrides
// from the config or a request.
func MergeSystem(base, override SystemConfig) SystemConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.LocationID != "" {
		out.LocationID = override.LocationID
	}
	if override.ModuleType != "" {
		out.ModuleType = override.ModuleType
	}
	if override.ArrayType != "" {
		out.ArrayType = override.ArrayType
	}
	if override.CapacityKWp != 0 {
		out.CapacityKWp = override.CapacityKWp
	}
	// Tilt/azimuth 0 are meaningful values, but presets always carry an
	// explicit tilt, so a zero override means "keep the preset".
	if override.TiltDeg != 0 {
		out.TiltDeg = override.TiltDeg
	}
	if override.AzimuthDeg != 0 {
		out.AzimuthDeg = override.AzimuthDeg
	}
	if override.DCACRatio != 0 {
		out.DCACRatio = override.DCACRatio
	}
	if override.InverterEfficiency != 0 {
		out.InverterEfficiency = override.InverterEfficiency
	}
	if override.Losses != nil {
		out.Losses = override.Losses
	}
	return out
}
