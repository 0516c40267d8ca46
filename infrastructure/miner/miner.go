// Package miner implements commit-history traversal on top of go-git.
package miner

import (
	"context"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/diffprobe/domain"
)

// Traverser walks a local repository's history oldest-first. Each Traverse
// call opens the repository and performs a fresh, one-shot walk.
type Traverser struct{}

// New creates a Traverser.
func New() *Traverser {
	return &Traverser{}
}

var _ domain.Traverser = (*Traverser)(nil)

// Traverse walks up to limit commits from the start of history, calling fn
// for each. A limit of zero or less means no cap. Modified-file lists are
// computed against the first parent; root commits carry an empty list.
func (t *Traverser) Traverse(
	ctx context.Context,
	repoPath string,
	limit int,
	fn func(domain.Commit) error,
) error {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return fmt.Errorf("failed to open repository %q: %w", repoPath, err)
	}

	commits, err := collectHistory(repo)
	if err != nil {
		return err
	}

	if limit > 0 && len(commits) > limit {
		commits = commits[:limit]
	}
	logger.Debugf("Traversing %d commits in %q", len(commits), repoPath)

	for _, commit := range commits {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		domainCommit, buildErr := buildCommit(ctx, commit)
		if buildErr != nil {
			return buildErr
		}
		if fnErr := fn(domainCommit); fnErr != nil {
			return fnErr
		}
	}

	return nil
}

// collectHistory returns the commit chain from HEAD, reversed to
// oldest-first order.
func collectHistory(repo *git.Repository) ([]*object.Commit, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{
		From:  head.Hash(),
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start history walk: %w", err)
	}
	defer iter.Close()

	var commits []*object.Commit
	forErr := iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, c)
		return nil
	})
	if forErr != nil {
		return nil, fmt.Errorf("failed to walk history: %w", forErr)
	}

	// Log yields newest-first; the pipeline wants oldest-first.
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}
	return commits, nil
}

func buildCommit(ctx context.Context, commit *object.Commit) (domain.Commit, error) {
	parents := make([]string, 0, commit.NumParents())
	for _, hash := range commit.ParentHashes {
		parents = append(parents, hash.String())
	}

	mods, err := modifiedFiles(ctx, commit)
	if err != nil {
		return domain.Commit{}, err
	}

	return domain.Commit{
		Hash:          commit.Hash.String(),
		Parents:       parents,
		Message:       strings.TrimSpace(commit.Message),
		Modifications: mods,
	}, nil
}

// modifiedFiles diffs the commit's tree against its first parent's tree.
// Root commits have no parent to diff against and yield nothing.
func modifiedFiles(ctx context.Context, commit *object.Commit) ([]domain.FileModification, error) {
	if commit.NumParents() == 0 {
		return nil, nil
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return nil, fmt.Errorf("failed to load parent of %s: %w", commit.Hash, err)
	}

	parentTree, err := parent.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to load parent tree of %s: %w", commit.Hash, err)
	}
	commitTree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to load tree of %s: %w", commit.Hash, err)
	}

	changes, err := object.DiffTreeContext(ctx, parentTree, commitTree)
	if err != nil {
		return nil, fmt.Errorf("failed to diff trees of %s: %w", commit.Hash, err)
	}

	mods := make([]domain.FileModification, 0, len(changes))
	for _, change := range changes {
		mods = append(mods, domain.FileModification{
			OldPath: change.From.Name,
			NewPath: change.To.Name,
		})
	}
	return mods, nil
}
