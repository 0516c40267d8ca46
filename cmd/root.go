package cmd

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/diffprobe/config"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath string
	verbose    bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "diffprobe",
	Short: "Diff-algorithm discrepancy miner for git repositories",
	Long: `A CLI tool that mines commit history from configured git repositories,
recomputes each modified file's diff under both the Myers and Histogram
algorithms, and flags files where the two algorithms disagree.

The pipeline has three stages:
- sync: clone or update the configured repositories
- mine: build a CSV dataset with one row per (commit, file) pair
- report: aggregate discrepancies per file category and render a bar chart`,
}

func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", "",
		"Path to the configuration file (default: search standard locations)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"Enable verbose output",
	)
}

// loadConfig resolves the configuration file path and loads it, raising the
// log level first when --verbose is set.
func loadConfig() (*config.Config, error) {
	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf(
				"no config file found: %w\nSpecify one with --config or create diffprobe.yaml",
				err,
			)
		}
	}

	logger.Infof("Using config file: %s", cfgPath)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
