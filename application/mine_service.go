package application

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/diffprobe/config"
	"github.com/rios0rios0/diffprobe/domain"
)

// MineService runs the discrepancy pipeline: traverse each target's
// history, diff every qualifying file modification under both algorithms,
// and append one record per pair to the dataset.
type MineService struct {
	traverser domain.Traverser
	differ    domain.DiffClient
	writer    domain.RecordWriter
}

// NewMineService creates the pipeline with its collaborators.
func NewMineService(
	traverser domain.Traverser,
	differ domain.DiffClient,
	writer domain.RecordWriter,
) *MineService {
	return &MineService{
		traverser: traverser,
		differ:    differ,
		writer:    writer,
	}
}

// Run processes every configured repository in declaration order. The
// pipeline is fully sequential: one repository, one commit, one file at a
// time, with the two diff invocations back-to-back. Any failure aborts the
// whole run; there is no per-repository isolation.
func (s *MineService) Run(ctx context.Context, cfg *config.Config) error {
	totalRows := 0
	totalDiscrepancies := 0

	for _, target := range cfg.Targets() {
		repoPath := cfg.RepoPath(target.Name)
		logger.Infof("Analyzing repository: %s", target.Name)

		rows, discrepancies, err := s.mineRepository(ctx, repoPath, target)
		if err != nil {
			return fmt.Errorf("failed to mine repository %q: %w", target.Name, err)
		}

		logger.Infof(
			"Repository %s: %d rows written, %d discrepancies",
			target.Name, rows, discrepancies,
		)
		totalRows += rows
		totalDiscrepancies += discrepancies
	}

	logger.Infof(
		"Mining complete: %d rows, %d discrepancies",
		totalRows, totalDiscrepancies,
	)
	return nil
}

func (s *MineService) mineRepository(
	ctx context.Context,
	repoPath string,
	target domain.Target,
) (rows, discrepancies int, err error) {
	traverseErr := s.traverser.Traverse(ctx, repoPath, target.MaxCommits,
		func(commit domain.Commit) error {
			written, discrepant, commitErr := s.processCommit(ctx, repoPath, target.Name, commit)
			rows += written
			discrepancies += discrepant
			return commitErr
		})
	return rows, discrepancies, traverseErr
}

// processCommit emits one record per modified file that has both paths.
// Root commits and modifications missing either path are skipped silently.
func (s *MineService) processCommit(
	ctx context.Context,
	repoPath, repoName string,
	commit domain.Commit,
) (rows, discrepancies int, err error) {
	if commit.IsRoot() {
		return 0, 0, nil
	}
	parent := commit.FirstParent()

	for _, mod := range commit.Modifications {
		if mod.OldPath == "" || mod.NewPath == "" {
			continue
		}

		record, recordErr := s.compareFile(ctx, repoPath, parent, commit, mod)
		if recordErr != nil {
			return rows, discrepancies, recordErr
		}
		record.Repo = repoName

		if writeErr := s.writer.Write(record); writeErr != nil {
			return rows, discrepancies, writeErr
		}
		rows++
		if record.Discrepancy {
			discrepancies++
			logger.Debugf(
				"Discrepancy in %s at %s", mod.NewPath, shortHash(commit.Hash),
			)
		}
	}
	return rows, discrepancies, nil
}

// compareFile invokes the diff client once per algorithm and computes the
// verdict over the normalized outputs. The record carries the raw texts.
func (s *MineService) compareFile(
	ctx context.Context,
	repoPath, parent string,
	commit domain.Commit,
	mod domain.FileModification,
) (domain.DiffRecord, error) {
	rawMyers, err := s.differ.Diff(
		ctx, repoPath, parent, commit.Hash, mod.NewPath, domain.AlgorithmMyers,
	)
	if err != nil {
		return domain.DiffRecord{}, err
	}

	rawHistogram, err := s.differ.Diff(
		ctx, repoPath, parent, commit.Hash, mod.NewPath, domain.AlgorithmHistogram,
	)
	if err != nil {
		return domain.DiffRecord{}, err
	}

	_, _, discrepant := domain.CompareDiffs(rawMyers, rawHistogram)

	return domain.DiffRecord{
		OldPath:       mod.OldPath,
		NewPath:       mod.NewPath,
		CommitSHA:     commit.Hash,
		ParentSHA:     parent,
		Message:       commit.Message,
		DiffMyers:     rawMyers,
		DiffHistogram: rawHistogram,
		Discrepancy:   discrepant,
	}, nil
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
