package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/diffprobe/domain"
)

// Defaults applied to omitted configuration values.
const (
	DefaultBaseDir    = "repos"
	DefaultDataset    = "diff_dataset.csv"
	DefaultChart      = "mismatch_statistics.png"
	DefaultMaxCommits = 100
)

// Config is the top-level configuration for diffprobe.
type Config struct {
	BaseDir      string             `yaml:"base_dir"`     // Directory holding local clones
	Dataset      string             `yaml:"dataset"`      // CSV dataset output path
	Chart        string             `yaml:"chart"`        // Bar chart output path
	Repositories []RepositoryConfig `yaml:"repositories"` // Repositories to mine
}

// RepositoryConfig describes one repository target.
type RepositoryConfig struct {
	Name       string `yaml:"name"`
	URL        string `yaml:"url"`
	MaxCommits int    `yaml:"max_commits"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment
// variables and filling in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.BaseDir = ExpandEnv(cfg.BaseDir)
	cfg.Dataset = ExpandEnv(cfg.Dataset)
	cfg.Chart = ExpandEnv(cfg.Chart)
	for i := range cfg.Repositories {
		cfg.Repositories[i].URL = ExpandEnv(cfg.Repositories[i].URL)
	}

	applyDefaults(&cfg)

	if validateErr := Validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".diffprobe.yaml",
		".diffprobe.yml",
		"diffprobe.yaml",
		"diffprobe.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Targets converts the configured repositories to domain targets.
func (c *Config) Targets() []domain.Target {
	targets := make([]domain.Target, 0, len(c.Repositories))
	for _, repo := range c.Repositories {
		targets = append(targets, domain.Target{
			Name:       repo.Name,
			URL:        repo.URL,
			MaxCommits: repo.MaxCommits,
		})
	}
	return targets
}

// RepoPath returns the local clone directory for a target name.
func (c *Config) RepoPath(name string) string {
	return filepath.Join(c.BaseDir, name)
}

// ExpandEnv expands environment variable references (${VAR}) in a value.
func ExpandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// Validate checks for required configuration values.
func Validate(cfg *Config) error {
	if len(cfg.Repositories) == 0 {
		return errors.New("at least one repository must be configured")
	}

	for i, repo := range cfg.Repositories {
		if repo.Name == "" {
			return fmt.Errorf("repositories[%d].name is required", i)
		}
		if repo.URL == "" {
			return fmt.Errorf("repositories[%d].url is required", i)
		}
		if repo.MaxCommits < 0 {
			return fmt.Errorf("repositories[%d].max_commits must not be negative", i)
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.BaseDir == "" {
		cfg.BaseDir = DefaultBaseDir
	}
	if cfg.Dataset == "" {
		cfg.Dataset = DefaultDataset
	}
	if cfg.Chart == "" {
		cfg.Chart = DefaultChart
	}
	for i := range cfg.Repositories {
		if cfg.Repositories[i].MaxCommits == 0 {
			cfg.Repositories[i].MaxCommits = DefaultMaxCommits
		}
	}
}
