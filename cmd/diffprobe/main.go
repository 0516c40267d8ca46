// Command diffprobe is the fixed-behavior batch entrypoint: it takes no
// flags, resolves the configuration from the standard locations (or the
// DIFFPROBE_CONFIG environment variable), and runs the full pipeline:
// sync, mine, report.
package main

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/diffprobe/application"
	"github.com/rios0rios0/diffprobe/config"
	"github.com/rios0rios0/diffprobe/infrastructure/dataset"
)

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cfg, err := resolveConfig()
	if err != nil {
		logger.Fatalf("Error executing 'diffprobe': %s", err)
	}

	container := buildContainer()
	invokeErr := container.Invoke(func(deps pipelineDeps) error {
		return runPipeline(context.Background(), cfg, deps)
	})
	if invokeErr != nil {
		logger.Fatalf("Error executing 'diffprobe': %s", invokeErr)
	}
}

func resolveConfig() (*config.Config, error) {
	cfgPath := os.Getenv("DIFFPROBE_CONFIG")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.FindConfigFile()
		if err != nil {
			return nil, err
		}
	}
	logger.Infof("Using config file: %s", cfgPath)
	return config.Load(cfgPath)
}

func runPipeline(ctx context.Context, cfg *config.Config, deps pipelineDeps) error {
	if err := application.NewSyncService(deps.Syncer).Run(ctx, cfg); err != nil {
		return err
	}

	writer, err := dataset.NewWriter(cfg.Dataset)
	if err != nil {
		return err
	}

	mineSvc := application.NewMineService(deps.Traverser, deps.Differ, writer)
	mineErr := mineSvc.Run(ctx, cfg)
	if closeErr := writer.Close(); closeErr != nil && mineErr == nil {
		mineErr = closeErr
	}
	if mineErr != nil {
		return mineErr
	}

	reportSvc := application.NewReportService(dataset.NewReader(cfg.Dataset), deps.Renderer)
	return reportSvc.Run(cfg)
}
