package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/application"
	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/logging"
)

const (
	exitOK = iota
	exitUsage
	exitRun
)

func main() {
	os.Exit(run(os.Args, os.LookupEnv, os.Stdout, os.Stderr))
}

func run(args []string, lookupEnv config.LookupEnvFunc, stdout, stderr io.Writer) int {
	cfg, err := config.NewParser(stderr, lookupEnv).Parse(args)
	var exitErr *config.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if err != nil {
		fmt.Fprintf(stderr, "minigrep: error: %v\n", err)
		return exitUsage
	}

	logger, err := logging.New(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "minigrep: error: failed to initialize logger: %v\n", err)
		return exitUsage
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := application.New(stdout, logger).Run(cfg); err != nil {
		logger.Error("search failed", zap.Error(err))
		return exitRun
	}

	return exitOK
}
