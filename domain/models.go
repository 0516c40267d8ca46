package domain

import "strings"

// Target identifies a source repository to mine. Targets are defined in the
// configuration file and are read-only for the rest of the run.
type Target struct {
	Name       string
	URL        string
	MaxCommits int
}

// FileModification is one changed file within a commit. An empty OldPath
// means the file was added; an empty NewPath means it was deleted.
type FileModification struct {
	OldPath string
	NewPath string
}

// Commit is a single commit yielded by a Traverser.
type Commit struct {
	Hash          string
	Parents       []string
	Message       string
	Modifications []FileModification
}

// FirstParent returns the hash of the first parent, or an empty string for
// root commits. Merge commits are only ever diffed against their first
// parent; the remaining parents are ignored.
func (c Commit) FirstParent() string {
	if len(c.Parents) == 0 {
		return ""
	}
	return c.Parents[0]
}

// IsRoot reports whether the commit has no parents.
func (c Commit) IsRoot() bool {
	return len(c.Parents) == 0
}

// Algorithm selects the diff algorithm passed to the external git binary.
type Algorithm string

const (
	AlgorithmMyers     Algorithm = "myers"
	AlgorithmHistogram Algorithm = "histogram"
)

// DiffRecord is the persisted outcome of comparing both algorithms' output
// for one (commit, file) pair. Records are written once and never mutated.
type DiffRecord struct {
	Repo          string
	OldPath       string
	NewPath       string
	CommitSHA     string
	ParentSHA     string
	Message       string
	DiffMyers     string
	DiffHistogram string
	Discrepancy   bool
}

// Serialized forms of the discrepancy verdict in the dataset.
const (
	VerdictYes = "Yes"
	VerdictNo  = "No"
)

// Verdict returns the serialized discrepancy verdict.
func (r DiffRecord) Verdict() string {
	if r.Discrepancy {
		return VerdictYes
	}
	return VerdictNo
}

// ParseVerdict converts a serialized verdict back to its boolean form.
func ParseVerdict(s string) bool {
	return strings.EqualFold(s, VerdictYes)
}

// CategoryCount is one bar of the report: a category name and the number of
// discrepant records whose new path matched it.
type CategoryCount struct {
	Name  string
	Count int
}
