// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"
	"fmt"

	"github.com/rios0rios0/diffprobe/domain"
)

// ---------------------------------------------------------------------------
// StubTraverser
// ---------------------------------------------------------------------------

// StubTraverser implements domain.Traverser over an in-memory commit
// sequence, keyed by repository path. Configure Commits, then inspect the
// call-tracking fields.
type StubTraverser struct {
	// Commits maps repoPath -> the commit sequence to yield, oldest first.
	Commits map[string][]domain.Commit
	// TraverseErr is returned before yielding anything when set.
	TraverseErr error

	// spy: repo paths and limits that were requested
	TraversedPaths []string
	Limits         []int
}

var _ domain.Traverser = (*StubTraverser)(nil)

func (s *StubTraverser) Traverse(
	_ context.Context,
	repoPath string,
	limit int,
	fn func(domain.Commit) error,
) error {
	s.TraversedPaths = append(s.TraversedPaths, repoPath)
	s.Limits = append(s.Limits, limit)

	if s.TraverseErr != nil {
		return s.TraverseErr
	}

	commits := s.Commits[repoPath]
	if limit > 0 && len(commits) > limit {
		commits = commits[:limit]
	}
	for _, commit := range commits {
		if err := fn(commit); err != nil {
			return err
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// StubDiffClient
// ---------------------------------------------------------------------------

// StubDiffClient implements domain.DiffClient from a canned response table.
type StubDiffClient struct {
	// Diffs maps DiffKey(path, algo) -> raw diff text.
	Diffs map[string]string
	// Fallback is returned for keys missing from Diffs.
	Fallback string
	// DiffErr is returned from every call when set.
	DiffErr error

	// spy: every invocation in order
	Calls []DiffCall
}

// DiffCall records one Diff invocation.
type DiffCall struct {
	RepoPath  string
	FromRev   string
	ToRev     string
	Path      string
	Algorithm domain.Algorithm
}

var _ domain.DiffClient = (*StubDiffClient)(nil)

// DiffKey builds the lookup key used by StubDiffClient.Diffs.
func DiffKey(path string, algo domain.Algorithm) string {
	return fmt.Sprintf("%s|%s", path, algo)
}

func (s *StubDiffClient) Diff(
	_ context.Context,
	repoPath, fromRev, toRev, path string,
	algo domain.Algorithm,
) (string, error) {
	s.Calls = append(s.Calls, DiffCall{
		RepoPath:  repoPath,
		FromRev:   fromRev,
		ToRev:     toRev,
		Path:      path,
		Algorithm: algo,
	})

	if s.DiffErr != nil {
		return "", s.DiffErr
	}
	if text, ok := s.Diffs[DiffKey(path, algo)]; ok {
		return text, nil
	}
	return s.Fallback, nil
}

// ---------------------------------------------------------------------------
// SpySyncer
// ---------------------------------------------------------------------------

// SpySyncer implements domain.Syncer and records every call.
type SpySyncer struct {
	CloneErr error
	PullErr  error

	// spy: inputs received
	ClonedURLs  []string
	CloneDests  []string
	PulledPaths []string
}

var _ domain.Syncer = (*SpySyncer)(nil)

func (s *SpySyncer) Clone(_ context.Context, url, dest string) error {
	s.ClonedURLs = append(s.ClonedURLs, url)
	s.CloneDests = append(s.CloneDests, dest)
	return s.CloneErr
}

func (s *SpySyncer) Pull(_ context.Context, repoPath string) error {
	s.PulledPaths = append(s.PulledPaths, repoPath)
	return s.PullErr
}

// ---------------------------------------------------------------------------
// SpyRecordWriter
// ---------------------------------------------------------------------------

// SpyRecordWriter implements domain.RecordWriter, collecting records
// in memory.
type SpyRecordWriter struct {
	WriteErr error

	// spy: records received in write order
	Records []domain.DiffRecord
}

var _ domain.RecordWriter = (*SpyRecordWriter)(nil)

func (s *SpyRecordWriter) Write(record domain.DiffRecord) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Records = append(s.Records, record)
	return nil
}

// ---------------------------------------------------------------------------
// StubRecordReader
// ---------------------------------------------------------------------------

// StubRecordReader implements domain.RecordReader over a fixed slice.
type StubRecordReader struct {
	Records []domain.DiffRecord
	ReadErr error
}

var _ domain.RecordReader = (*StubRecordReader)(nil)

func (s *StubRecordReader) ReadAll() ([]domain.DiffRecord, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return s.Records, nil
}

// ---------------------------------------------------------------------------
// SpyChartRenderer
// ---------------------------------------------------------------------------

// SpyChartRenderer implements domain.ChartRenderer and records every call.
type SpyChartRenderer struct {
	RenderErr error

	// spy: inputs received
	RenderedPaths  []string
	RenderedCounts [][]domain.CategoryCount
}

var _ domain.ChartRenderer = (*SpyChartRenderer)(nil)

func (s *SpyChartRenderer) Render(path string, counts []domain.CategoryCount) error {
	s.RenderedPaths = append(s.RenderedPaths, path)
	s.RenderedCounts = append(s.RenderedCounts, counts)
	return s.RenderErr
}
