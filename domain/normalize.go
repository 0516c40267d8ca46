package domain

import "strings"

// diff header prefixes dropped during normalization: the object-index line
// and the old/new file header lines.
var headerPrefixes = []string{"index", "---", "+++"}

// NormalizeDiff canonicalizes raw diff text for comparison: header lines
// are removed, every remaining line is stripped of leading and trailing
// whitespace, and line order is preserved. The function is idempotent.
func NormalizeDiff(raw string) string {
	var kept []string
	for _, line := range SplitDiffLines(raw) {
		trimmed := strings.TrimSpace(line)
		if isHeaderLine(trimmed) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, "\n")
}

// CompareDiffs normalizes both algorithms' raw output and computes the
// discrepancy verdict: true iff the normalized texts are unequal or their
// line counts differ. Both conditions are evaluated and OR-combined.
func CompareDiffs(rawMyers, rawHistogram string) (normMyers, normHistogram string, discrepant bool) {
	normMyers = NormalizeDiff(rawMyers)
	normHistogram = NormalizeDiff(rawHistogram)
	discrepant = normMyers != normHistogram ||
		len(SplitDiffLines(normMyers)) != len(SplitDiffLines(normHistogram))
	return normMyers, normHistogram, discrepant
}

// SplitDiffLines splits diff text into lines without producing a phantom
// empty line for a trailing newline. Empty input yields no lines.
func SplitDiffLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func isHeaderLine(line string) bool {
	for _, prefix := range headerPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
