package simulate

// LedgerRow is one hour of simulated output.
// This is the primary artifact for "what the day looks like" for a system.
type LedgerRow struct {
	Hour int

	GHI float64 // W/m² hourly average; 0 on the synthetic path

	EnergyKWh    float64
	CumEnergyKWh float64

	Daylight bool
}

// Source identifies which synthesis path produced a profile.
type Source string

const (
	SourceMeasured  Source = "MEASURED"
	SourceSynthetic Source = "SYNTHETIC"
)

// Result is the output of a day simulation.
type Result struct {
	Ledger [24]LedgerRow

	Source     Source
	Efficiency float64

	DailyKWh       float64
	PeakHour       int
	PeakKWh        float64
	CapacityFactor float64 // daily energy / (capacity x 24h)
}
