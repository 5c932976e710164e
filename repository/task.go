package repository

import (
	"context"

	"github.com/planly/backend/domain"
)

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// ListTopLevel returns every task without a parent, ordered by
	// position then creation time.
	ListTopLevel(ctx context.Context) ([]domain.Task, error)
	ListByList(ctx context.Context, listID string) ([]domain.Task, error)
	ListByLabel(ctx context.Context, labelID string) ([]domain.Task, error)
	// ListSubtasks returns the children of a task ordered by creation time.
	ListSubtasks(ctx context.Context, parentID string) ([]domain.Task, error)
	// ListLabels returns a task's labels ordered by name.
	ListLabels(ctx context.Context, taskID string) ([]domain.Label, error)
	// Create persists the task and its initial label associations as one
	// unit, assigning id, timestamps and the next position in the list.
	Create(ctx context.Context, task *domain.Task, labelIDs []string) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	// AttachLabel links a label to a task; it reports false when the link
	// already existed. Duplicate inserts are not an error.
	AttachLabel(ctx context.Context, taskID, labelID string) (bool, error)
	// DetachLabel removes a link; it reports false when no link existed.
	DetachLabel(ctx context.Context, taskID, labelID string) (bool, error)
}
