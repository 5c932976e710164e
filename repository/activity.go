package repository

import (
	"context"

	"github.com/planly/backend/domain"
)

type ActivityFilter struct {
	TaskID string
	Limit  int
}

type ActivityRepository interface {
	Append(ctx context.Context, entry *domain.ActivityEntry) error
	// Recent returns entries newest first, optionally restricted to one task.
	Recent(ctx context.Context, filter ActivityFilter) ([]domain.ActivityEntry, error)
}
