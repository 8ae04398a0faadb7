// Command airtraffic loads the OpenFlights datasets and runs analysis
// queries from the command line.
//
// Usage:
//
//	airtraffic fetch
//	airtraffic distances [-min km] [-max km]
//	airtraffic map -country "United States" -out airports.html
//	airtraffic models [-top n] [-country France]
//	airtraffic emissions [-threshold km]
//	airtraffic flights [-airport JFK | -country France] [-internal] [-cutoff km]
//	airtraffic aircraft
//
// Configuration comes from environment variables (see internal/config); a
// .env file in the working directory is loaded first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/air-traffic-analysis/internal/adapter/openflights"
	"github.com/couchcryptid/air-traffic-analysis/internal/analysis"
	"github.com/couchcryptid/air-traffic-analysis/internal/config"
	"github.com/couchcryptid/air-traffic-analysis/internal/dataset"
	"github.com/couchcryptid/air-traffic-analysis/internal/observability"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}
	command, args := args[0], args[1:]

	if command == "fetch" {
		client := openflights.NewClient(cfg.DownloadBaseURL, cfg.DownloadTimeout, logger)
		return client.FetchAll(context.Background(), cfg.DataDir)
	}

	snap, err := dataset.Load(cfg.DataDir, logger, metrics)
	if err != nil {
		return err
	}
	engine := analysis.New(snap, cfg.EmissionModel(), logger, metrics, cfg.DistanceCacheSize)

	switch command {
	case "distances":
		return runDistances(engine, args)
	case "map":
		return runMap(engine, args)
	case "models":
		return runModels(engine, args)
	case "emissions":
		return runEmissions(engine, args)
	case "flights":
		return runFlights(engine, args)
	case "aircraft":
		for _, name := range engine.AircraftList() {
			fmt.Println(name)
		}
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runDistances(engine *analysis.Engine, args []string) error {
	fs := flag.NewFlagSet("distances", flag.ExitOnError)
	minKm := fs.Float64("min", -1, "minimum route distance in km (-1 = unbounded)")
	maxKm := fs.Float64("max", -1, "maximum route distance in km (-1 = unbounded)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var filter analysis.DistanceFilter
	if *minKm >= 0 {
		filter.MinKm = minKm
	}
	if *maxKm >= 0 {
		filter.MaxKm = maxKm
	}

	report, err := engine.AnalyzeDistances(filter)
	if err != nil {
		return err
	}

	fmt.Printf("routes: %d\n", report.Count)
	fmt.Printf("mean:   %.1f km\n", report.MeanKm)
	fmt.Printf("min:    %.1f km\n", report.MinKm)
	fmt.Printf("max:    %.1f km\n", report.MaxKm)
	return nil
}

func runMap(engine *analysis.Engine, args []string) error {
	fs := flag.NewFlagSet("map", flag.ExitOnError)
	country := fs.String("country", "", "country whose airports to plot")
	out := fs.String("out", "airports.html", "output HTML file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *country == "" {
		return fmt.Errorf("-country is required")
	}

	if err := engine.WriteCountryMap(*country, *out); err != nil {
		return err
	}
	fmt.Printf("map written to %s\n", *out)
	return nil
}

func runModels(engine *analysis.Engine, args []string) error {
	fs := flag.NewFlagSet("models", flag.ExitOnError)
	top := fs.Int("top", 10, "number of aircraft models to list")
	country := fs.String("country", "", "count only routes departing this country")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var countries []string
	if *country != "" {
		countries = append(countries, *country)
	}

	models, err := engine.AircraftModels(*top, countries...)
	if err != nil {
		return err
	}
	for _, m := range models {
		fmt.Printf("%6d  %s\n", m.Count, m.Model)
	}
	return nil
}

func runEmissions(engine *analysis.Engine, args []string) error {
	fs := flag.NewFlagSet("emissions", flag.ExitOnError)
	threshold := fs.Float64("threshold", 1000, "short-haul distance threshold in km")
	if err := fs.Parse(args); err != nil {
		return err
	}

	report, err := engine.EstimateEmissionReductions(*threshold)
	if err != nil {
		return err
	}

	fmt.Printf("routes below %.0f km: %d (%d unique pairs)\n",
		report.ThresholdKm, report.RoutesConsidered, report.UniquePairs)
	fmt.Printf("estimated savings: %.1f kg CO2 per passenger\n", report.TotalSavingsKg)
	return nil
}

func runFlights(engine *analysis.Engine, args []string) error {
	fs := flag.NewFlagSet("flights", flag.ExitOnError)
	airport := fs.String("airport", "", "IATA code of the departure airport")
	country := fs.String("country", "", "departure country")
	internal := fs.Bool("internal", false, "count only flights within the same country")
	cutoff := fs.Float64("cutoff", 1000, "short-haul cutoff in km (country mode)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *airport != "":
		counts, err := engine.FlightsFromAirport(*airport, *internal)
		if err != nil {
			return err
		}
		for _, c := range counts {
			fmt.Printf("%6d  %s\n", c.Flights, c.Country)
		}
		return nil
	case *country != "":
		report, err := engine.FlightsFromCountry(*country, *internal, *cutoff)
		if err != nil {
			return err
		}
		fmt.Printf("short-haul (<= %.0f km): %d\n", report.CutoffKm, report.ShortHaul)
		fmt.Printf("long-haul:               %d\n", report.LongHaul)
		fmt.Printf("short-haul distance:     %.1f km (unique pairs)\n", report.ShortHaulKm)
		fmt.Printf("rail substitution could save %.1f kg CO2 per passenger\n", report.PotentialSavingsKg)
		return nil
	default:
		return fmt.Errorf("one of -airport or -country is required")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: airtraffic <command> [flags]

commands:
  fetch      download the four dataset files into the data directory
  distances  summarize great-circle route distances
  map        write an HTML map of a country's airports
  models     list the most used aircraft models
  emissions  estimate CO2 savings from rail-substituting short routes
  flights    count departing flights per destination country
  aircraft   list distinct aircraft model names`)
}
