package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/diffprobe/application"
	"github.com/rios0rios0/diffprobe/infrastructure/chart"
	"github.com/rios0rios0/diffprobe/infrastructure/dataset"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate discrepancies and render the mismatch chart",
	Long: `Load the persisted dataset, count discrepant rows per file category
(Source Code, Test Code, README, LICENSE), print the counts, and render a
bar chart. Chart generation is skipped when no discrepancies were found.`,
	RunE: runReport,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc := application.NewReportService(dataset.NewReader(cfg.Dataset), chart.New())
	return svc.Run(cfg)
}
