package repository

import (
	"context"

	"github.com/planly/backend/domain"
)

type AttachmentRepository interface {
	ListByTask(ctx context.Context, taskID string) ([]domain.Attachment, error)
}
