package model

import "errors"

var errNegativeLoss = errors.New("loss percentages must be >= 0")

// SystemLosses holds the fractional loss categories of a PV system.
// Each field is a percentage in [0, 100). Values above ~20% per category
// are unrealistic but not rejected here; the UI layer constrains edits.
type SystemLosses struct {
	Soiling     float64 `json:"soiling" yaml:"soiling"`
	Shading     float64 `json:"shading" yaml:"shading"`
	Snow        float64 `json:"snow" yaml:"snow"`
	Mismatch    float64 `json:"mismatch" yaml:"mismatch"`
	Wiring      float64 `json:"wiring" yaml:"wiring"`
	Connections float64 `json:"connections" yaml:"connections"`
	LID         float64 `json:"lid" yaml:"lid"` // light-induced degradation
	Nameplate   float64 `json:"nameplate" yaml:"nameplate"`
	Age         float64 `json:"age" yaml:"age"`
	Availability float64 `json:"availability" yaml:"availability"`
}

// DefaultLosses returns the stock loss assumptions used when a system is
// first configured. They compose multiplicatively to ~16.05% total.
func DefaultLosses() SystemLosses {
	return SystemLosses{
		Soiling:      2.0,
		Shading:      3.0,
		Snow:         0.0,
		Mismatch:     2.0,
		Wiring:       2.0,
		Connections:  0.5,
		LID:          1.5,
		Nameplate:    1.0,
		Age:          2.3,
		Availability: 3.0,
	}
}

// categories returns the loss percentages in a fixed order. Keeping this an
// explicit list (rather than iterating a map) keeps the composition
// statically checkable against the struct fields.
func (l SystemLosses) categories() [10]float64 {
	return [10]float64{
		l.Soiling,
		l.Shading,
		l.Snow,
		l.Mismatch,
		l.Wiring,
		l.Connections,
		l.LID,
		l.Nameplate,
		l.Age,
		l.Availability,
	}
}

// TotalPercent composes the individual losses into one total loss
// percentage. Losses are independent multiplicative derating factors:
// starting from a retained fraction of 1.0, each percentage p multiplies it
// by (1 - p/100). This is deliberately not a sum; at combined losses in the
// 20-30% range the two give materially different answers.
func (l SystemLosses) TotalPercent() float64 {
	retained := 1.0
	for _, p := range l.categories() {
		factor := 1.0 - p/100.0
		if factor < 0 {
			factor = 0
		}
		retained *= factor
	}
	return (1.0 - retained) * 100.0
}

// Validate rejects negative categories. Upper bounds are left to the edit
// surface; a 100% category legally zeroes the whole system.
func (l SystemLosses) Validate() error {
	for _, p := range l.categories() {
		if p < 0 {
			return errNegativeLoss
		}
	}
	return nil
}
