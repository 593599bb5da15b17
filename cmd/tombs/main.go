// Package main is the entry point for Tombs.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/tombs/internal/game"
	"github.com/samdwyer/tombs/internal/gamedata"
	"github.com/samdwyer/tombs/internal/logger"
	"github.com/samdwyer/tombs/internal/telemetry"
	"github.com/samdwyer/tombs/internal/ui"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	closeLog, err := logger.Init()
	if err != nil {
		log.Printf("Failed to initialize logging: %v", err)
		return 1
	}
	defer closeLog()
	if os.Getenv("LOG_FILE") == "" {
		// stderr shares the terminal with the screen
		logger.Discard()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("Telemetry setup failed, running without observability.")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Log.WithError(err).Error("Telemetry shutdown failed.")
			}
		}()
	}

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.WithError(err).Error("Game exited with an error.")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func run(ctx context.Context) error {
	cfg, err := game.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	palette, err := gamedata.LoadPalette()
	if err != nil {
		return fmt.Errorf("load palette: %w", err)
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create world: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	defer screen.Close()

	return ui.Run(ctx, g, screen, ui.NewRenderer(screen, palette))
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may hold an unexpanded variable reference, so the
	// header is built here.
	apiKey := os.Getenv("HONEYCOMB_TOMBS_API_KEY")
	dataset := os.Getenv("HONEYCOMB_TOMBS_DATASET")
	if dataset == "" {
		dataset = "tombs"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
