package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/diffprobe/domain"
	testdoubles "github.com/rios0rios0/diffprobe/test"
)

func TestInterfaceCompliance(t *testing.T) {
	t.Parallel()

	t.Run("should satisfy Traverser interface with a stub", func(t *testing.T) {
		t.Parallel()

		// given
		var traverser domain.Traverser = &testdoubles.StubTraverser{}

		// then
		assert.NotNil(t, traverser)
		assert.Implements(t, (*domain.Traverser)(nil), traverser)
	})

	t.Run("should satisfy DiffClient interface with a stub", func(t *testing.T) {
		t.Parallel()

		// given
		var differ domain.DiffClient = &testdoubles.StubDiffClient{}

		// then
		assert.NotNil(t, differ)
		assert.Implements(t, (*domain.DiffClient)(nil), differ)
	})

	t.Run("should satisfy Syncer interface with a spy", func(t *testing.T) {
		t.Parallel()

		// given
		var syncer domain.Syncer = &testdoubles.SpySyncer{}

		// then
		assert.NotNil(t, syncer)
		assert.Implements(t, (*domain.Syncer)(nil), syncer)
	})
}

func TestCommit(t *testing.T) {
	t.Parallel()

	t.Run("should expose the first parent of a merge commit", func(t *testing.T) {
		t.Parallel()

		// given
		commit := domain.Commit{Parents: []string{"aaa", "bbb"}}

		// when
		parent := commit.FirstParent()

		// then
		assert.Equal(t, "aaa", parent)
		assert.False(t, commit.IsRoot())
	})

	t.Run("should report root commits", func(t *testing.T) {
		t.Parallel()

		// given
		commit := domain.Commit{}

		// then
		assert.True(t, commit.IsRoot())
		assert.Empty(t, commit.FirstParent())
	})
}

func TestVerdict(t *testing.T) {
	t.Parallel()

	t.Run("should serialize the verdict as Yes or No", func(t *testing.T) {
		t.Parallel()

		// given
		discrepant := domain.DiffRecord{Discrepancy: true}
		clean := domain.DiffRecord{Discrepancy: false}

		// then
		assert.Equal(t, domain.VerdictYes, discrepant.Verdict())
		assert.Equal(t, domain.VerdictNo, clean.Verdict())
	})

	t.Run("should parse serialized verdicts back", func(t *testing.T) {
		t.Parallel()

		// then
		assert.True(t, domain.ParseVerdict("Yes"))
		assert.True(t, domain.ParseVerdict("yes"))
		assert.False(t, domain.ParseVerdict("No"))
		assert.False(t, domain.ParseVerdict(""))
	})
}
