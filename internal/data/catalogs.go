package data

import (
	"fmt"

	"solar-feasibility/internal/model"
)

// Module and array catalogs are static reference data, like the location
// catalog: constructed once, read-only afterwards.

// DefaultModuleTypes returns the supported module families.
func DefaultModuleTypes() []model.ModuleType {
	return []model.ModuleType{
		{ID: "standard", Name: "Standard (mono-Si)", Efficiency: 1.00},
		{ID: "premium", Name: "Premium (high-efficiency mono)", Efficiency: 1.10},
		{ID: "thin_film", Name: "Thin film (CdTe)", Efficiency: 0.88},
		{ID: "poly", Name: "Polycrystalline", Efficiency: 0.95},
	}
}

// DefaultArrayTypes returns the supported mounting arrangements.
func DefaultArrayTypes() []model.ArrayType {
	return []model.ArrayType{
		{ID: "fixed_roof", Name: "Fixed, roof mounted", YieldModifier: 0.98, TracksSun: false, TrackingAxes: 0},
		{ID: "fixed_ground", Name: "Fixed, open rack", YieldModifier: 1.00, TracksSun: false, TrackingAxes: 0},
		{ID: "tracking_1axis", Name: "Single-axis tracking", YieldModifier: 1.25, TracksSun: true, TrackingAxes: 1},
		{ID: "tracking_2axis", Name: "Dual-axis tracking", YieldModifier: 1.38, TracksSun: true, TrackingAxes: 2},
	}
}

// FindModuleType resolves a module type ID against the catalog.
func FindModuleType(id string) (model.ModuleType, error) {
	for _, m := range DefaultModuleTypes() {
		if m.ID == id {
			return m, nil
		}
	}
	return model.ModuleType{}, fmt.Errorf("unknown module type %q", id)
}

// FindArrayType resolves an array type ID against the catalog.
func FindArrayType(id string) (model.ArrayType, error) {
	for _, a := range DefaultArrayTypes() {
		if a.ID == id {
			return a, nil
		}
	}
	return model.ArrayType{}, fmt.Errorf("unknown array type %q", id)
}
