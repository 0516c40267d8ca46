package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/diffprobe/domain"
)

// DiffRecordBuilder helps create test diff records with a fluent interface.
type DiffRecordBuilder struct {
	*testkit.BaseBuilder
	repo        string
	oldPath     string
	newPath     string
	commitSHA   string
	parentSHA   string
	message     string
	diffMyers   string
	diffHist    string
	discrepancy bool
}

// NewDiffRecordBuilder creates a new record builder with sensible defaults.
func NewDiffRecordBuilder() *DiffRecordBuilder {
	return &DiffRecordBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		repo:        "test-repo",
		oldPath:     "pkg/util.py",
		newPath:     "pkg/util.py",
		commitSHA:   "1111111111111111111111111111111111111111",
		parentSHA:   "0000000000000000000000000000000000000000",
		message:     "test commit",
		diffMyers:   "-x\n+y",
		diffHist:    "-x\n+y",
		discrepancy: false,
	}
}

// WithRepo sets the repository name.
func (b *DiffRecordBuilder) WithRepo(repo string) *DiffRecordBuilder {
	b.repo = repo
	return b
}

// WithPaths sets both file paths.
func (b *DiffRecordBuilder) WithPaths(oldPath, newPath string) *DiffRecordBuilder {
	b.oldPath = oldPath
	b.newPath = newPath
	return b
}

// WithNewPath sets the new file path only.
func (b *DiffRecordBuilder) WithNewPath(path string) *DiffRecordBuilder {
	b.newPath = path
	return b
}

// WithCommit sets the commit and parent hashes.
func (b *DiffRecordBuilder) WithCommit(commitSHA, parentSHA string) *DiffRecordBuilder {
	b.commitSHA = commitSHA
	b.parentSHA = parentSHA
	return b
}

// WithMessage sets the commit message.
func (b *DiffRecordBuilder) WithMessage(message string) *DiffRecordBuilder {
	b.message = message
	return b
}

// WithDiffs sets both raw diff texts.
func (b *DiffRecordBuilder) WithDiffs(myers, histogram string) *DiffRecordBuilder {
	b.diffMyers = myers
	b.diffHist = histogram
	return b
}

// WithDiscrepancy sets the verdict.
func (b *DiffRecordBuilder) WithDiscrepancy(discrepancy bool) *DiffRecordBuilder {
	b.discrepancy = discrepancy
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *DiffRecordBuilder) Build() interface{} {
	return b.BuildDiffRecord()
}

// BuildDiffRecord creates the record with a concrete return type.
func (b *DiffRecordBuilder) BuildDiffRecord() domain.DiffRecord {
	return domain.DiffRecord{
		Repo:          b.repo,
		OldPath:       b.oldPath,
		NewPath:       b.newPath,
		CommitSHA:     b.commitSHA,
		ParentSHA:     b.parentSHA,
		Message:       b.message,
		DiffMyers:     b.diffMyers,
		DiffHistogram: b.diffHist,
		Discrepancy:   b.discrepancy,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DiffRecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.repo = "test-repo"
	b.oldPath = "pkg/util.py"
	b.newPath = "pkg/util.py"
	b.commitSHA = "1111111111111111111111111111111111111111"
	b.parentSHA = "0000000000000000000000000000000000000000"
	b.message = "test commit"
	b.diffMyers = "-x\n+y"
	b.diffHist = "-x\n+y"
	b.discrepancy = false
	return b
}

// Clone creates a deep copy of the DiffRecordBuilder.
func (b *DiffRecordBuilder) Clone() testkit.Builder {
	return &DiffRecordBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		repo:        b.repo,
		oldPath:     b.oldPath,
		newPath:     b.newPath,
		commitSHA:   b.commitSHA,
		parentSHA:   b.parentSHA,
		message:     b.message,
		diffMyers:   b.diffMyers,
		diffHist:    b.diffHist,
		discrepancy: b.discrepancy,
	}
}
