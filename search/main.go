package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/reed-jobs-mcp/infrastructure"
	"github.com/reed-jobs-mcp/internal/app"
	"github.com/reed-jobs-mcp/internal/config"
	"github.com/reed-jobs-mcp/internal/models"
	"github.com/spf13/pflag"
)

// One-shot search from the command line, printing what the search_jobs tool would return.
func main() {
	var (
		envFile   = pflag.String("env-file", ".env", "path to a .env file")
		location  = pflag.String("location", "", "town, city or postcode")
		distance  = pflag.Float64("distance", 0, "search radius in miles")
		minSalary = pflag.Float64("min-salary", 0, "minimum salary")
		maxSalary = pflag.Float64("max-salary", 0, "maximum salary")
		take      = pflag.Int("take", 25, "results to take")
		skip      = pflag.Int("skip", 0, "results to skip")
		permanent = pflag.Bool("permanent", false, "only permanent roles")
		contract  = pflag.Bool("contract", false, "only contract roles")
		fullTime  = pflag.Bool("full-time", false, "only full-time roles")
		partTime  = pflag.Bool("part-time", false, "only part-time roles")
	)
	pflag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	application, err := app.New(config.LoadConfig(), infrastructure.LoadConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer application.Close()

	criteria := models.SearchCriteria{
		Keywords:      strings.Join(pflag.Args(), " "),
		Contract:      contract,
		Permanent:     permanent,
		FullTime:      fullTime,
		PartTime:      partTime,
		ResultsToTake: take,
	}
	if *location != "" {
		criteria.LocationName = location
	}
	if pflag.CommandLine.Changed("distance") {
		criteria.DistanceFromLocation = distance
	}
	if pflag.CommandLine.Changed("min-salary") {
		criteria.MinimumSalary = minSalary
	}
	if pflag.CommandLine.Changed("max-salary") {
		criteria.MaximumSalary = maxSalary
	}
	if pflag.CommandLine.Changed("skip") {
		criteria.ResultsToSkip = skip
	}

	res := application.Handlers.SearchJobs(context.Background(), criteria)
	fmt.Println(res.Text)
	if res.IsError {
		application.Close()
		os.Exit(1)
	}
}
