package services

import (
	"context"
	"fmt"
	"time"

	"partyinvite/internal/domain"
)

type backupService struct {
	backupRepo domain.BackupRepository
	timeout    time.Duration
}

// NewBackupService returns a BackupService whose export and restore are bounded by timeout.
func NewBackupService(backupRepo domain.BackupRepository, timeout time.Duration) domain.BackupService {
	return &backupService{backupRepo: backupRepo, timeout: timeout}
}

func (s *backupService) Export(ctx context.Context) (*domain.Backup, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	b, err := s.backupRepo.Dump(ctx)
	if err != nil {
		return nil, storeErr("dump", err)
	}
	return b, nil
}

func (s *backupService) Restore(ctx context.Context, b *domain.Backup) error {
	if b == nil || b.Guests == nil {
		return fmt.Errorf("%w: backup has no guests", domain.ErrInvalidArgument)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.backupRepo.Restore(ctx, b); err != nil {
		return storeErr("restore", err)
	}
	return nil
}
