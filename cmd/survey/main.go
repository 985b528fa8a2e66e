// Command survey runs a single land survey from the command line without
// starting the HTTP service. It derives the geography for a coordinate,
// scores it for a crop, and prints a readable report or JSON.
//
// Usage:
//
//	go run ./cmd/survey -lat 42.0308 -lng -93.6319 -crop corn
//	go run ./cmd/survey -lat 42.0308 -lng -93.6319 -crop wheat -seed 7 -json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/agrovista/farm-geo-service/internal/domain"
	"github.com/agrovista/farm-geo-service/internal/entropy"
)

func main() {
	lat := flag.Float64("lat", 0, "latitude in degrees, -90 to 90")
	lng := flag.Float64("lng", 0, "longitude in degrees, -180 to 180")
	crop := flag.String("crop", "corn", "crop to score (see -list)")
	seed := flag.Int64("seed", 0, "fixed seed for reproducible jitter (0 = real entropy)")
	noJitter := flag.Bool("no-jitter", false, "disable jitter entirely, printing the plot's base values")
	soilNoise := flag.Bool("soil-noise", true, "allow the 20% random soil-type override")
	asJSON := flag.Bool("json", false, "print the survey as JSON")
	list := flag.Bool("list", false, "list known crops and exit")
	flag.Parse()

	if *list {
		for _, c := range domain.Crops() {
			fmt.Printf("%-12s %s (%d-%d C, %d-%d mm, %v, pH %.1f-%.1f)\n",
				c.Crop, c.ID, c.TempMin, c.TempMax, c.RainfallMin, c.RainfallMax,
				c.PreferredSoil, c.PHMin, c.PHMax)
		}
		return
	}

	if err := domain.ValidateCoordinate(*lat, *lng); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	var rng domain.Source
	switch {
	case *noJitter:
		rng = entropy.Fixed(0.5)
	case *seed != 0:
		rng = entropy.NewSeeded(*seed)
	default:
		rng = entropy.NewCrypto()
	}

	attrs, err := domain.DeriveGeography(*lat, *lng, rng, *soilNoise && !*noJitter)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	survey := domain.ComposeSurvey(*lat, *lng, attrs, *crop)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(survey); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	printReport(survey)
}

func printReport(s domain.LandSurvey) {
	fmt.Printf("Plot %s at (%.4f, %.4f)\n\n", s.ID, s.Geo.Lat, s.Geo.Lng)

	fmt.Printf("  Climate zone   %s\n", s.Attributes.ClimateZone)
	fmt.Printf("  Elevation      %s m\n", humanize.Comma(int64(s.Attributes.Elevation)))
	fmt.Printf("  Temperature    %d C\n", s.Attributes.Temperature)
	fmt.Printf("  Rainfall       %s mm/yr\n", humanize.Comma(int64(s.Attributes.Rainfall)))
	fmt.Printf("  Soil           %s (pH %.1f)\n", s.Attributes.SoilType, s.Attributes.SoilPH)
	fmt.Printf("  Moisture       %d%%\n", s.Attributes.MoistureLevel)
	fmt.Printf("  Water level    %d%%\n\n", s.Attributes.WaterLevel)

	fmt.Printf("Suitability for %s: %d/100\n", s.CropID, s.Score)
	fmt.Printf("  Temperature    %d\n", s.Breakdown.Temperature)
	fmt.Printf("  Rainfall       %d\n", s.Breakdown.Rainfall)
	fmt.Printf("  Soil           %d\n", s.Breakdown.Soil)
	fmt.Printf("  Soil pH        %d\n\n", s.Breakdown.PH)

	fmt.Printf("Expected yield: %.1f %s (plot health %d%%)\n",
		s.Estimate.ExpectedYield, s.Estimate.YieldUnit, s.Estimate.HealthPct)
}
