package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/diffprobe/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diffprobe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestLoad(t *testing.T) {
	t.Run("should load a complete configuration", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, `
base_dir: clones
dataset: out/dataset.csv
chart: out/chart.png
repositories:
  - name: manim
    url: https://github.com/3b1b/manim.git
    max_commits: 300
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "clones", cfg.BaseDir)
		assert.Equal(t, "out/dataset.csv", cfg.Dataset)
		assert.Equal(t, "out/chart.png", cfg.Chart)
		require.Len(t, cfg.Repositories, 1)
		assert.Equal(t, "manim", cfg.Repositories[0].Name)
		assert.Equal(t, 300, cfg.Repositories[0].MaxCommits)
	})

	t.Run("should apply defaults for omitted values", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, `
repositories:
  - name: maxkb
    url: https://github.com/1Panel-dev/MaxKB.git
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, config.DefaultBaseDir, cfg.BaseDir)
		assert.Equal(t, config.DefaultDataset, cfg.Dataset)
		assert.Equal(t, config.DefaultChart, cfg.Chart)
		assert.Equal(t, config.DefaultMaxCommits, cfg.Repositories[0].MaxCommits)
	})

	t.Run("should expand environment variables in repository URLs", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_GIT_HOST", "github.com")
		path := writeConfig(t, `
repositories:
  - name: manim
    url: https://${TEST_GIT_HOST}/3b1b/manim.git
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/3b1b/manim.git", cfg.Repositories[0].URL)
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail for malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "repositories: [")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("should fail when no repositories configured", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{}

		// when
		err := config.Validate(cfg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one repository")
	})

	t.Run("should fail when repository name is empty", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{
			Repositories: []config.RepositoryConfig{
				{URL: "https://example.com/repo.git", MaxCommits: 10},
			},
		}

		// when
		err := config.Validate(cfg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "repositories[0].name")
	})

	t.Run("should fail when repository URL is empty", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{
			Repositories: []config.RepositoryConfig{
				{Name: "repo", MaxCommits: 10},
			},
		}

		// when
		err := config.Validate(cfg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "repositories[0].url")
	})

	t.Run("should fail when max_commits is negative", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{
			Repositories: []config.RepositoryConfig{
				{Name: "repo", URL: "https://example.com/repo.git", MaxCommits: -1},
			},
		}

		// when
		err := config.Validate(cfg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_commits")
	})
}

func TestTargets(t *testing.T) {
	t.Parallel()

	t.Run("should convert repositories in declaration order", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{
			BaseDir: "repos",
			Repositories: []config.RepositoryConfig{
				{Name: "first", URL: "https://example.com/first.git", MaxCommits: 100},
				{Name: "second", URL: "https://example.com/second.git", MaxCommits: 300},
			},
		}

		// when
		targets := cfg.Targets()

		// then
		require.Len(t, targets, 2)
		assert.Equal(t, "first", targets[0].Name)
		assert.Equal(t, "second", targets[1].Name)
		assert.Equal(t, 300, targets[1].MaxCommits)
		assert.Equal(t, filepath.Join("repos", "first"), cfg.RepoPath("first"))
	})
}
