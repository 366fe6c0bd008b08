package main

import (
	"flag"
	"fmt"

	"solar-feasibility/internal/analysis"
	"solar-feasibility/internal/config"
	"solar-feasibility/internal/data"
	"solar-feasibility/internal/model"
	"solar-feasibility/internal/simulate"
	"solar-feasibility/internal/tariff"
)

// Demo:
// - Build a PV system (defaults, or --config)
// - Simulate a representative day and print the hourly ledger
// - Organize a tariff (built-in sample, or --tariff JSON) and blend rates
// - Price the annual yield to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	tariffPath := flag.String("tariff", "", "Path to tariff export JSON (optional)")
	outCSV := flag.String("out", "", "Optional path to write ledger CSV (e.g. results/day.csv)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	sysSpec := config.SystemConfig{
		Name:               "demo rooftop",
		LocationID:         "johannesburg",
		ModuleType:         "standard",
		ArrayType:          "fixed_roof",
		CapacityKWp:        100,
		TiltDeg:            26,
		AzimuthDeg:         0,
		DCACRatio:          1.2,
		InverterEfficiency: 96,
	}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		sysSpec = cfg.System
	}

	sys, err := sysSpec.ToModel()
	if err != nil {
		panic(err)
	}

	catalog, err := data.OpenCatalog()
	if err != nil {
		panic(err)
	}
	loc, err := catalog.ResolveFor(sys)
	if err != nil {
		panic(err)
	}

	engine := simulate.New()
	result, err := engine.Run(sys, loc, sysSpec.CapacityKWp, nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("System %q at %s (GHI %.1f kWh/m²/day)\n", sysSpec.Name, loc.Name, loc.GHI)
	fmt.Printf("Efficiency=%.4f  Total losses=%.2f%%  Source=%s\n\n", result.Efficiency, sys.TotalLossPercent, result.Source)

	for _, r := range result.Ledger {
		fmt.Printf("%02d:00  energy=%7.2f kWh  cum=%8.2f kWh\n", r.Hour, r.EnergyKWh, r.CumEnergyKWh)
	}
	fmt.Printf("\nDaily=%.1f kWh  Peak=%.1f kWh @ %02d:00  CF=%.3f\n", result.DailyKWh, result.PeakKWh, result.PeakHour, result.CapacityFactor)

	if *outCSV != "" {
		if err := simulate.WriteLedgerCSV(*outCSV, result.Ledger); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote CSV: %s\n", *outCSV)
	}

	t := sampleTariff()
	if *tariffPath != "" {
		loaded, err := data.LoadTariffJSON(*tariffPath)
		if err != nil {
			panic(err)
		}
		t = loaded
	}

	book, err := tariff.OrganizeRates(t.Rates)
	if err != nil {
		panic(err)
	}
	rates := tariff.BlendedRates(book, t, false)

	fmt.Printf("\nTariff %q blended rates (excl VAT, per kWh):\n", t.Name)
	fmt.Printf("  all-hours:   annual=%.4f  high=%.4f  low=%.4f\n", rates.AllHours.Annual, rates.AllHours.High, rates.AllHours.Low)
	fmt.Printf("  solar-hours: annual=%.4f  high=%.4f  low=%.4f\n", rates.SolarHours.Annual, rates.SolarHours.High, rates.SolarHours.Low)

	summary := analysis.ComputeFeasibility(sys, loc, sysSpec.CapacityKWp, rates)
	fmt.Printf("\nAnnual yield %.0f kWh -> savings %.0f/yr (all-hours) | %.0f/yr (solar-hours)\n",
		summary.AnnualKWh, summary.SavingsAllHours.Annual, summary.SavingsSolarHours.Annual)
}

// sampleTariff is a small two-season TOU tariff in the shape exported by
// the tariff store. Values are illustrative, not a published schedule.
func sampleTariff() *model.Tariff {
	return &model.Tariff{
		Name: "Demo Megaflex",
		Type: "time-of-use",
		Rates: []model.TariffRate{
			{SeasonLabel: "High demand season", PeriodLabel: "Peak", EnergyCharge: 6.11, EnergyChargeInclVAT: 7.03, NetworkDemand: 0.42, NetworkDemandInclVAT: 0.48, AncillaryCharge: 0.01, AncillaryChargeInclVAT: 0.012},
			{SeasonLabel: "High demand season", PeriodLabel: "Standard", EnergyCharge: 1.85, EnergyChargeInclVAT: 2.13, AncillaryCharge: 0.01, AncillaryChargeInclVAT: 0.012},
			{SeasonLabel: "High demand season", PeriodLabel: "Off-Peak", EnergyCharge: 1.01, EnergyChargeInclVAT: 1.16, AncillaryCharge: 0.01, AncillaryChargeInclVAT: 0.012},
			{SeasonLabel: "Low demand season", PeriodLabel: "Peak", EnergyCharge: 2.00, EnergyChargeInclVAT: 2.30, NetworkDemand: 0.42, NetworkDemandInclVAT: 0.48, AncillaryCharge: 0.01, AncillaryChargeInclVAT: 0.012},
			{SeasonLabel: "Low demand season", PeriodLabel: "Standard", EnergyCharge: 1.37, EnergyChargeInclVAT: 1.58, AncillaryCharge: 0.01, AncillaryChargeInclVAT: 0.012},
			{SeasonLabel: "Low demand season", PeriodLabel: "Off-Peak", EnergyCharge: 0.87, EnergyChargeInclVAT: 1.00, AncillaryCharge: 0.01, AncillaryChargeInclVAT: 0.012},
		},
		LegacyCharge:        0.03,
		LegacyChargeInclVAT: 0.0345,
	}
}
