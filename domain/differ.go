package domain

import "context"

// DiffClient computes the textual diff of one file between two revisions
// under a selectable algorithm. Blank-line and whitespace-only changes are
// ignored. Implementations must return whatever output was captured even
// when the underlying tool exits with an error: the caller treats an empty
// result as "no diff", not as a fault.
type DiffClient interface {
	Diff(ctx context.Context, repoPath, fromRev, toRev, path string, algo Algorithm) (string, error)
}

// Syncer materializes a remote repository as a local working copy.
type Syncer interface {
	// Clone fetches the repository at url into dest. Implementations may
	// treat an existing dest as already cloned.
	Clone(ctx context.Context, url, dest string) error

	// Pull updates an existing working copy from its remote.
	Pull(ctx context.Context, repoPath string) error
}
