package application

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/diffprobe/config"
	"github.com/rios0rios0/diffprobe/domain"
)

// SyncService materializes every configured repository as a local clone,
// pulling instead when the clone already exists.
type SyncService struct {
	syncer domain.Syncer
}

// NewSyncService creates a SyncService.
func NewSyncService(syncer domain.Syncer) *SyncService {
	return &SyncService{syncer: syncer}
}

// Run clones or updates each target in declaration order.
func (s *SyncService) Run(ctx context.Context, cfg *config.Config) error {
	for _, target := range cfg.Targets() {
		repoPath := cfg.RepoPath(target.Name)

		if _, err := os.Stat(repoPath); err == nil {
			logger.Infof("Repository %s already exists, pulling latest changes...", target.Name)
			if pullErr := s.syncer.Pull(ctx, repoPath); pullErr != nil {
				return fmt.Errorf("failed to update repository %q: %w", target.Name, pullErr)
			}
			continue
		}

		logger.Infof("Cloning %s...", target.Name)
		if cloneErr := s.syncer.Clone(ctx, target.URL, repoPath); cloneErr != nil {
			return fmt.Errorf("failed to clone repository %q: %w", target.Name, cloneErr)
		}
	}
	return nil
}
