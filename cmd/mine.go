package cmd

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/diffprobe/application"
	"github.com/rios0rios0/diffprobe/config"
	"github.com/rios0rios0/diffprobe/infrastructure/dataset"
	"github.com/rios0rios0/diffprobe/infrastructure/gitclient"
	"github.com/rios0rios0/diffprobe/infrastructure/miner"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Build the diff-discrepancy dataset",
	Long: `Traverse each configured repository's history, diff every modified file
under both the Myers and Histogram algorithms, and write one CSV row per
(commit, file) pair with the raw diff texts and the discrepancy verdict.

Repositories must already be present locally; run "diffprobe sync" first.`,
	RunE: runMine,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(mineCmd)
}

func runMine(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return mine(ctx, cfg)
}

// mine wires the pipeline's collaborators and runs it, making sure the
// dataset is flushed even on failure.
func mine(ctx context.Context, cfg *config.Config) error {
	client, err := gitclient.New()
	if err != nil {
		return err
	}

	writer, err := dataset.NewWriter(cfg.Dataset)
	if err != nil {
		return err
	}

	svc := application.NewMineService(miner.New(), client, writer)
	runErr := svc.Run(ctx, cfg)

	if closeErr := writer.Close(); closeErr != nil {
		if runErr == nil {
			return closeErr
		}
		logger.Errorf("Failed to close dataset: %v", closeErr)
	}
	if runErr != nil {
		return runErr
	}

	fmt.Printf("Dataset generated as %s\n", cfg.Dataset)
	return nil
}
