package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/diffprobe/domain"
)

func TestNormalizeDiff(t *testing.T) {
	t.Parallel()

	t.Run("should strip object-index and file-header lines", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "diff --git a/a.py b/a.py\n" +
			"index 1234567..89abcde 100644\n" +
			"--- a/a.py\n" +
			"+++ b/a.py\n" +
			"@@ -1 +1 @@\n" +
			"-x\n" +
			"+y\n"

		// when
		result := domain.NormalizeDiff(raw)

		// then
		assert.NotContains(t, result, "index 1234567")
		assert.NotContains(t, result, "--- a/a.py")
		assert.NotContains(t, result, "+++ b/a.py")
		assert.Contains(t, result, "-x")
		assert.Contains(t, result, "+y")
	})

	t.Run("should trim leading and trailing whitespace per line", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "  @@ -1 +1 @@  \n\t-x \n+y\t\n"

		// when
		result := domain.NormalizeDiff(raw)

		// then
		assert.Equal(t, "@@ -1 +1 @@\n-x\n+y", result)
	})

	t.Run("should preserve line order", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "+b\n-a\n+c\n"

		// when
		result := domain.NormalizeDiff(raw)

		// then
		assert.Equal(t, "+b\n-a\n+c", result)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		t.Parallel()

		// given
		inputs := []string{
			"",
			"diff --git a/a.py b/a.py\nindex 1..2 100644\n--- a/a.py\n+++ b/a.py\n-x\n+y\n",
			"  index shifted header\n+kept\n",
			"+a\n\n+b",
		}

		for _, raw := range inputs {
			// when
			once := domain.NormalizeDiff(raw)
			twice := domain.NormalizeDiff(once)

			// then
			assert.Equal(t, once, twice)
		}
	})

	t.Run("should return empty string for empty input", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ""

		// when
		result := domain.NormalizeDiff(raw)

		// then
		assert.Empty(t, result)
	})
}

func TestCompareDiffs(t *testing.T) {
	t.Parallel()

	t.Run("should report no discrepancy for byte-identical raw texts", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "--- a/a.py\n+++ b/a.py\n-x\n+y\n"

		// when
		_, _, discrepant := domain.CompareDiffs(raw, raw)

		// then
		assert.False(t, discrepant)
	})

	t.Run("should report no discrepancy when texts differ only in stripped headers", func(t *testing.T) {
		t.Parallel()

		// given
		rawMyers := "index 1111111..2222222 100644\n-x\n+y\n"
		rawHistogram := "index aaaaaaa..bbbbbbb 100644\n-x\n+y\n"

		// when
		_, _, discrepant := domain.CompareDiffs(rawMyers, rawHistogram)

		// then
		assert.False(t, discrepant)
	})

	t.Run("should report discrepancy when normalized content differs", func(t *testing.T) {
		t.Parallel()

		// given
		rawMyers := "-x\n+y\n"
		rawHistogram := "-x\n+y\n+z\n"

		// when
		_, _, discrepant := domain.CompareDiffs(rawMyers, rawHistogram)

		// then
		assert.True(t, discrepant)
	})

	t.Run("should report discrepancy when line counts differ with equal trimmed content", func(t *testing.T) {
		t.Parallel()

		// given - the second text normalizes to an extra blank line
		rawMyers := "-x\n+y"
		rawHistogram := "-x\n \n+y"

		// when
		normMyers, normHistogram, discrepant := domain.CompareDiffs(rawMyers, rawHistogram)

		// then
		assert.True(t, discrepant)
		assert.Len(t, domain.SplitDiffLines(normMyers), 2)
		assert.Len(t, domain.SplitDiffLines(normHistogram), 3)
	})

	t.Run("should return both normalized texts", func(t *testing.T) {
		t.Parallel()

		// given
		rawMyers := "--- a/a.py\n-x\n"
		rawHistogram := "+++ b/a.py\n+y\n"

		// when
		normMyers, normHistogram, _ := domain.CompareDiffs(rawMyers, rawHistogram)

		// then
		assert.Equal(t, "-x", normMyers)
		assert.Equal(t, "+y", normHistogram)
	})
}

func TestSplitDiffLines(t *testing.T) {
	t.Parallel()

	t.Run("should return no lines for empty input", func(t *testing.T) {
		t.Parallel()

		// when
		lines := domain.SplitDiffLines("")

		// then
		assert.Empty(t, lines)
	})

	t.Run("should not count a trailing newline as an extra line", func(t *testing.T) {
		t.Parallel()

		// when
		withNewline := domain.SplitDiffLines("-x\n+y\n")
		withoutNewline := domain.SplitDiffLines("-x\n+y")

		// then
		assert.Equal(t, withoutNewline, withNewline)
		assert.Len(t, withNewline, 2)
	})
}
