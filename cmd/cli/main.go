package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"solar-feasibility/internal/analysis"
	"solar-feasibility/internal/config"
	"solar-feasibility/internal/data"
	"solar-feasibility/internal/model"
	"solar-feasibility/internal/simulate"
	"solar-feasibility/internal/solar"
	"solar-feasibility/internal/tariff"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "rates":
		cmdRates(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cli <simulate|rates|rank> [flags]")
	fmt.Fprintln(os.Stderr, "  simulate --config system.yaml [--forecast forecast.json] [--out ledger.csv]")
	fmt.Fprintln(os.Stderr, "  rates --tariff tariff.json [--vat] [--strict]")
	fmt.Fprintln(os.Stderr, "  rank --capacity 100 [--module standard] [--array fixed_roof] [--limit 10]")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "Path to YAML config")
	forecastPath := fs.String("forecast", "", "Optional saved forecast JSON; omit for the synthetic curve")
	outPath := fs.String("out", "", "Optional path to write the hourly ledger CSV")
	_ = fs.Parse(args)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	sys, err := cfg.System.ToModel()
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

	var irradiance []model.HourlyIrradiance
	if *forecastPath != "" {
		resp, err := data.LoadForecastJSON(*forecastPath)
		if err != nil {
			panic(err)
		}
		irradiance = solar.AverageIrradiance(resp.Data)
	}

	engine := simulate.New()
	res, err := engine.Run(sys, loc, cfg.System.CapacityKWp, irradiance)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Location=%s  Capacity=%.1f kWp  Source=%s\n", loc.Name, cfg.System.CapacityKWp, res.Source)
	fmt.Printf("Efficiency=%.4f  Total losses=%.2f%%\n", res.Efficiency, sys.TotalLossPercent)
	fmt.Printf("Daily=%.1f kWh  Annual=%.0f kWh  Peak=%.1f kWh @ %02d:00  CF=%.3f\n",
		res.DailyKWh, res.DailyKWh*365, res.PeakKWh, res.PeakHour, res.CapacityFactor)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := simulate.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote 24 rows to %s\n", *outPath)
	}
}

func cmdRates(args []string) {
	fs := flag.NewFlagSet("rates", flag.ExitOnError)
	tariffPath := fs.String("tariff", "tariff.json", "Path to tariff export JSON")
	inclVAT := fs.Bool("vat", false, "Use VAT-inclusive figures")
	strict := fs.Bool("strict", false, "Fail if any season/period rate is missing")
	_ = fs.Parse(args)

	t, err := data.LoadTariffJSON(*tariffPath)
	if err != nil {
		panic(err)
	}

	book, err := tariff.OrganizeRates(t.Rates)
	if err != nil {
		panic(err)
	}
	if missing := book.MissingSlots(); len(missing) > 0 {
		if *strict {
			panic(fmt.Errorf("tariff %q is missing rates: %v", t.Name, missing))
		}
		fmt.Printf("warning: missing rates treated as zero: %v\n", missing)
	}

	res := tariff.BlendedRates(book, t, *inclVAT)

	fmt.Printf("Tariff=%s  VAT-inclusive=%v\n", t.Name, *inclVAT)
	fmt.Printf("%-12s %10s %10s %10s\n", "methodology", "annual", "high", "low")
	fmt.Printf("%-12s %10.4f %10.4f %10.4f\n", "all-hours", res.AllHours.Annual, res.AllHours.High, res.AllHours.Low)
	fmt.Printf("%-12s %10.4f %10.4f %10.4f\n", "solar-hours", res.SolarHours.Annual, res.SolarHours.High, res.SolarHours.Low)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	capacity := fs.Float64("capacity", 100, "Array capacity in kWp")
	moduleID := fs.String("module", "standard", "Module type ID")
	arrayID := fs.String("array", "fixed_roof", "Array type ID")
	limit := fs.Int("limit", 10, "Number of locations to show")
	_ = fs.Parse(args)

	module, err := data.FindModuleType(*moduleID)
	if err != nil {
		panic(err)
	}
	array, err := data.FindArrayType(*arrayID)
	if err != nil {
		panic(err)
	}
	catalog, err := data.OpenCatalog()
	if err != nil {
		panic(err)
	}

	template := model.SystemConfig{
		Module:             module,
		Array:              array,
		DCACRatio:          1.0,
		InverterEfficiency: 96,
	}
	template.ApplyLosses(model.DefaultLosses())

	ranked := analysis.RankByAnnualYield(catalog.All(), template, *capacity)
	if len(ranked) > *limit {
		ranked = ranked[:*limit]
	}

	fmt.Printf("%-4s %-16s %-6s %-8s %-12s %-12s\n", "rank", "location", "ghi", "eff", "daily kWh", "annual kWh")
	for i, r := range ranked {
		fmt.Printf("%-4d %-16s %-6.1f %-8.4f %-12.1f %-12.0f\n",
			i+1,
			r.Location.Name,
			r.Location.GHI,
			r.Efficiency,
			r.DailyKWh,
			r.AnnualKWh,
		)
	}
}
