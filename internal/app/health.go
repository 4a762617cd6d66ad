package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"voxel.cafe/parley/internal/cli"
	"voxel.cafe/parley/internal/config"
	"voxel.cafe/parley/internal/language"
	"voxel.cafe/parley/internal/logging"
	"voxel.cafe/parley/internal/translation"
)

func runHealth(args []string) int {
	fs := flag.NewFlagSet("health", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 15*time.Second, "Probe timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}

	gateway, err := buildGateway(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build translation gateway: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// A minimal round trip through the configured provider.
	result, err := gateway.Translate(ctx, translation.Request{
		Text:       "hello",
		SourceLang: language.Auto,
		TargetLang: cfg.DefaultTargetLang,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Provider probe failed: %s\n", translation.UserMessage(err))
		return 1
	}

	fmt.Printf("ok provider=%s latency_ms=%d\n", result.ProviderName, result.LatencyMs)
	return 0
}
