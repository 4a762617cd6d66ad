package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"voxel.cafe/parley/internal/cli"
	"voxel.cafe/parley/internal/config"
	"voxel.cafe/parley/internal/language"
	"voxel.cafe/parley/internal/logging"
	"voxel.cafe/parley/internal/translation"
)

func runTranslate(args []string) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	from := fs.String("from", language.Auto, "Source language (code, display name, or auto)")
	to := fs.String("to", "", "Target language (code or display name)")
	provider := fs.String("provider", "", "Translation provider name (google, llm)")
	timeout := fs.Duration("timeout", time.Minute, "Command timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if strings.TrimSpace(*to) == "" {
		fmt.Fprintln(os.Stderr, "--to is required")
		printTranslateUsage()
		return 2
	}

	text := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if text == "" || text == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read stdin: %v\n", err)
			return 1
		}
		text = strings.TrimSpace(string(raw))
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
	if p := strings.TrimSpace(*provider); p != "" {
		cfg.Provider = p
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

	result, err := gateway.Translate(ctx, translation.Request{
		Text:       text,
		SourceLang: *from,
		TargetLang: *to,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", translation.UserMessage(err))
		if translation.IsKind(err, translation.KindInvalidInput) || translation.IsKind(err, translation.KindUnknownLanguage) {
			return 2
		}
		return 1
	}

	fmt.Println(result.Text)
	if result.DetectedLang != "" {
		fmt.Fprintf(os.Stderr, "Detected source language: %s (%s)\n",
			gateway.Table().DisplayName(result.DetectedLang), result.DetectedLang)
	}
	return 0
}

func printTranslateUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  parley translate --to <lang> [--from auto] [--provider google] [--timeout 1m] [--env .env] <text...>")
	fmt.Fprintln(os.Stderr, "  echo 'text' | parley translate --to <lang>")
}
