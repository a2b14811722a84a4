package main

import (
	"context"
	"fmt"
	"os"

	"github.com/osse101/RavenCompanion_Go/internal/bootstrap"
	"github.com/osse101/RavenCompanion_Go/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	registry := defaultRegistry()
	if len(args) < 1 {
		registry.PrintHelp(os.Stdout)
		return 1
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		PrintError(os.Stderr, "Unknown command: %s", args[0])
		registry.PrintHelp(os.Stderr)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		PrintError(os.Stderr, "Configuration error: %v", err)
		return 1
	}
	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		PrintError(os.Stderr, "Configuration error: %v", err)
		return 1
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	defer logFile.Close()

	for _, w := range warnings {
		PrintWarning(os.Stderr, "%s", w)
	}

	ctx := context.Background()
	s := &session{cfg: cfg, out: os.Stdout}
	defer s.Close(ctx)

	if err := cmd.Run(ctx, s, args[1:]); err != nil {
		PrintError(os.Stderr, "%s: %v", cmd.Name(), err)
		return 1
	}
	return 0
}
