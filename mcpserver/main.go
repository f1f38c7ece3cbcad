package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/reed-jobs-mcp/infrastructure"
	"github.com/reed-jobs-mcp/internal/app"
	"github.com/reed-jobs-mcp/internal/config"
	"github.com/reed-jobs-mcp/internal/tools"
	"github.com/spf13/pflag"
)

func main() {
	envFile := pflag.String("env-file", ".env", "path to a .env file")
	pflag.Parse()

	// log writes to stderr, stdout carries the MCP protocol
	if err := godotenv.Load(*envFile); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadConfig()
	application, err := app.New(cfg, infrastructure.LoadConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application.ServeMetrics(ctx)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.AppName,
		Version: app.Version,
	}, nil)
	tools.Register(server, application.Handlers)

	application.Logger.Info("MCP server listening on stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		application.Logger.Error("MCP server stopped", "error", err)
		application.Close()
		os.Exit(1)
	}
}
