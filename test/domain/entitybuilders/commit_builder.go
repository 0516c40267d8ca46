package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/diffprobe/domain"
)

// CommitBuilder helps create test commits with a fluent interface.
type CommitBuilder struct {
	*testkit.BaseBuilder
	hash          string
	parents       []string
	message       string
	modifications []domain.FileModification
}

// NewCommitBuilder creates a new commit builder with sensible defaults:
// a non-root commit with a single modified file.
func NewCommitBuilder() *CommitBuilder {
	return &CommitBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		hash:        "1111111111111111111111111111111111111111",
		parents:     []string{"0000000000000000000000000000000000000000"},
		message:     "test commit",
		modifications: []domain.FileModification{
			{OldPath: "a.py", NewPath: "a.py"},
		},
	}
}

// WithHash sets the commit hash.
func (b *CommitBuilder) WithHash(hash string) *CommitBuilder {
	b.hash = hash
	return b
}

// WithParents sets the parent hashes. Pass none for a root commit.
func (b *CommitBuilder) WithParents(parents ...string) *CommitBuilder {
	b.parents = parents
	return b
}

// WithMessage sets the commit message.
func (b *CommitBuilder) WithMessage(message string) *CommitBuilder {
	b.message = message
	return b
}

// WithModifications sets the modified-file list.
func (b *CommitBuilder) WithModifications(mods ...domain.FileModification) *CommitBuilder {
	b.modifications = mods
	return b
}

// Build creates the commit (satisfies testkit.Builder interface).
func (b *CommitBuilder) Build() interface{} {
	return b.BuildCommit()
}

// BuildCommit creates the commit with a concrete return type.
func (b *CommitBuilder) BuildCommit() domain.Commit {
	return domain.Commit{
		Hash:          b.hash,
		Parents:       b.parents,
		Message:       b.message,
		Modifications: b.modifications,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CommitBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.hash = "1111111111111111111111111111111111111111"
	b.parents = []string{"0000000000000000000000000000000000000000"}
	b.message = "test commit"
	b.modifications = []domain.FileModification{
		{OldPath: "a.py", NewPath: "a.py"},
	}
	return b
}

// Clone creates a deep copy of the CommitBuilder.
func (b *CommitBuilder) Clone() testkit.Builder {
	parents := make([]string, len(b.parents))
	copy(parents, b.parents)
	mods := make([]domain.FileModification, len(b.modifications))
	copy(mods, b.modifications)

	return &CommitBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		hash:          b.hash,
		parents:       parents,
		message:       b.message,
		modifications: mods,
	}
}
