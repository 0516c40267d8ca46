package domain

import "context"

// Traverser walks a repository's commit history. Implementations yield a
// finite, non-restartable sequence: a fresh Traverse call starts a new walk.
type Traverser interface {
	// Traverse walks up to limit commits, oldest first, calling fn for each.
	// A non-nil error from fn aborts the walk and is returned unchanged.
	Traverse(ctx context.Context, repoPath string, limit int, fn func(Commit) error) error
}
