package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/diffprobe/application"
	"github.com/rios0rios0/diffprobe/infrastructure/gitclient"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Clone or update the configured repositories",
	Long: `Clone each configured repository into the base directory, or pull the
latest changes when a local clone already exists.`,
	RunE: runSync,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := gitclient.New()
	if err != nil {
		return err
	}

	return application.NewSyncService(client).Run(ctx, cfg)
}
