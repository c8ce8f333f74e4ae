package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rdahl/traincompose/internal/core/cluster"
	"github.com/rdahl/traincompose/internal/shell/composeout"
	"github.com/rdahl/traincompose/internal/shell/configfile"
	"github.com/rdahl/traincompose/internal/shell/verify"
)

// =============================================================================
// Exit Codes
// =============================================================================

const (
	ExitSuccess       = 0
	ExitConfigError   = 1
	ExitGenerateError = 2
	ExitWriteError    = 3
	ExitVerifyError   = 4
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("traincompose %s (built %s)\n", Version, BuildTime)
		return ExitSuccess
	}

	// The environment is read exactly once, here. Everything below takes
	// explicit parameters.
	paths := resolvePaths(os.Getenv)
	logger := SetupLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	logger.Info("generating compose document",
		"version", Version,
		"config", paths.Config,
		"output", paths.Output,
	)

	cfg, err := configfile.Load(paths.Config)
	if err != nil {
		logger.Error("configuration error", "error", err)
		return ExitConfigError
	}

	doc, err := cluster.Assemble(cfg)
	if err != nil {
		var vErr *cluster.ValidationError
		if errors.As(err, &vErr) {
			logger.Error("configuration error", "error", err, "field", vErr.Field)
			return ExitConfigError
		}
		logger.Error("generation failed", "error", err)
		return ExitGenerateError
	}

	data, err := composeout.Write(paths.Output, doc)
	if err != nil {
		logger.Error("failed to write compose document", "error", err)
		return ExitWriteError
	}

	if err := verify.Document(context.Background(), data); err != nil {
		logger.Error("emitted document failed verification", "error", err)
		return ExitVerifyError
	}

	logger.Info("compose document written",
		"services", len(doc.Services),
		"path", paths.Output,
	)
	return ExitSuccess
}
