package cmd

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/diffprobe/application"
	"github.com/rios0rios0/diffprobe/infrastructure/chart"
	"github.com/rios0rios0/diffprobe/infrastructure/dataset"
	"github.com/rios0rios0/diffprobe/infrastructure/gitclient"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	skipSync bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: sync, mine, report",
	Long: `Run all three stages in sequence: clone or update the configured
repositories, build the diff-discrepancy dataset, then aggregate the
results and render the mismatch chart.

This is the main command intended for unattended execution.`,
	RunE: runAll,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	runCmd.Flags().BoolVar(
		&skipSync, "skip-sync", false,
		"Skip cloning/pulling and mine the existing local clones",
	)
	rootCmd.AddCommand(runCmd)
}

func runAll(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := gitclient.New()
	if err != nil {
		return err
	}

	if !skipSync {
		if syncErr := application.NewSyncService(client).Run(ctx, cfg); syncErr != nil {
			return syncErr
		}
	}

	logger.Info("Starting discrepancy mining...")
	if mineErr := mine(ctx, cfg); mineErr != nil {
		return mineErr
	}

	logger.Info("Generating mismatch statistics...")
	svc := application.NewReportService(dataset.NewReader(cfg.Dataset), chart.New())
	return svc.Run(cfg)
}
