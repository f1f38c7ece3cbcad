package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/reed-jobs-mcp/infrastructure"
	"github.com/reed-jobs-mcp/internal/app"
	"github.com/reed-jobs-mcp/internal/config"
	"github.com/reed-jobs-mcp/internal/models"
	"github.com/spf13/pflag"
)

func main() {
	envFile := pflag.String("env-file", ".env", "path to a .env file")
	cvPath := pflag.String("cv", "cv.txt", "path to the CV as plain text")
	jobID := pflag.Int64("job-id", 0, "Reed job identifier")
	pflag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadConfig()
	if cfg.OpenRouter.APIKey == "" {
		log.Fatal("OPENROUTER_API_KEY is required")
	}

	application, err := app.New(cfg, infrastructure.LoadConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer application.Close()

	cv, err := os.ReadFile(*cvPath)
	if err != nil {
		log.Fatalf("Failed to get cv: %v", err)
	}

	res := application.Handlers.AnalyzeJobFit(context.Background(), models.JobFitQuery{
		JobID: *jobID,
		CV:    string(cv),
	})
	fmt.Println(res.Text)
	if res.IsError {
		application.Close()
		os.Exit(1)
	}
}
