// Package gitclient invokes the system git binary. The diff algorithm
// selector (--diff-algorithm) is the reason this goes through the real git
// executable: histogram diffs are not available in-process.
package gitclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/diffprobe/domain"
)

// replacementChar substitutes undecodable byte sequences in diff output.
const replacementChar = "�"

// Client shells out to git for diffs and repository synchronization.
type Client struct {
	gitBinary string
}

// New creates a Client, locating the git binary on the system.
func New() (*Client, error) {
	bin, err := findGitBinary()
	if err != nil {
		return nil, fmt.Errorf("git binary not found: %w", err)
	}
	return &Client{gitBinary: bin}, nil
}

// Diff returns the unified diff of one file between two revisions under the
// given algorithm, ignoring blank-line and whitespace-only changes. The
// captured standard output is returned even when git exits non-zero; an
// empty result means "no diff". Invalid UTF-8 bytes are replaced rather
// than surfaced.
func (c *Client) Diff(
	ctx context.Context,
	repoPath, fromRev, toRev, path string,
	algo domain.Algorithm,
) (string, error) {
	cmd := exec.CommandContext(ctx, c.gitBinary,
		"-C", repoPath, "diff", fromRev, toRev,
		"--ignore-blank-lines", "--ignore-space-change",
		fmt.Sprintf("--diff-algorithm=%s", algo),
		"--", path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("failed to invoke git diff: %w", err)
		}
		// Non-zero exit: whatever was captured still counts as the result.
		logger.Debugf(
			"git diff %s..%s -- %s exited with %d: %s",
			fromRev, toRev, path, exitErr.ExitCode(), strings.TrimSpace(stderr.String()),
		)
	}

	return strings.ToValidUTF8(stdout.String(), replacementChar), nil
}

// Clone fetches url into dest. An existing dest is treated as already
// cloned and left untouched.
func (c *Client) Clone(ctx context.Context, url, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		logger.Debugf("Clone target %q already exists, skipping", dest)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create clone directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.gitBinary, "clone", url, dest)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git clone %q failed: %w\nOutput:\n%s", url, err, output)
	}
	return nil
}

// Pull updates an existing working copy from its remote.
func (c *Client) Pull(ctx context.Context, repoPath string) error {
	cmd := exec.CommandContext(ctx, c.gitBinary, "-C", repoPath, "pull")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git pull in %q failed: %w\nOutput:\n%s", repoPath, err, output)
	}
	return nil
}

// findGitBinary locates git via PATH, falling back to common install
// locations.
func findGitBinary() (string, error) {
	if path, err := exec.LookPath("git"); err == nil {
		return path, nil
	}

	commonPaths := []string{
		"/usr/bin/git",
		"/usr/local/bin/git",
		"/opt/homebrew/bin/git",
	}
	for _, p := range commonPaths {
		if _, statErr := os.Stat(p); statErr == nil {
			return p, nil
		}
	}

	return "", errors.New("git not found in PATH or common locations")
}
