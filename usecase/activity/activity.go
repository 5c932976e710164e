// Package activity exposes the change history recorded by the audit
// logger.
package activity

import (
	"context"

	"go.uber.org/zap"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/repository"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type UseCase struct {
	entries repository.ActivityRepository
	logger  *zap.Logger
}

func New(entries repository.ActivityRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		entries: entries,
		logger:  logger,
	}
}

// Recent returns the newest entries first, optionally scoped to one
// task. The limit is clamped to sane bounds.
func (uc *UseCase) Recent(ctx context.Context, taskID string, limit int) ([]domain.ActivityEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return uc.entries.Recent(ctx, repository.ActivityFilter{
		TaskID: taskID,
		Limit:  limit,
	})
}
