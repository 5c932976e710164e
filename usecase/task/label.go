package task

import (
	"context"

	"github.com/planly/backend/domain"
)

// AttachLabel links a label to a task. A duplicate link is silently
// ignored: no error, no duplicate log entry.
func (uc *UseCase) AttachLabel(ctx context.Context, taskID, labelID string) error {
	if _, err := uc.tasks.GetByID(ctx, taskID); err != nil {
		return err
	}
	if _, err := uc.labels.GetByID(ctx, labelID); err != nil {
		return err
	}

	inserted, err := uc.tasks.AttachLabel(ctx, taskID, labelID)
	if err != nil {
		return err
	}
	if inserted {
		uc.audit.Log(ctx, taskID, domain.ActionLabelAdded, map[string]any{"label_id": labelID})
	}
	return nil
}

// DetachLabel removes a link; removing an association that does not
// exist is a silent no-op.
func (uc *UseCase) DetachLabel(ctx context.Context, taskID, labelID string) error {
	if _, err := uc.tasks.GetByID(ctx, taskID); err != nil {
		return err
	}

	removed, err := uc.tasks.DetachLabel(ctx, taskID, labelID)
	if err != nil {
		return err
	}
	if removed {
		uc.audit.Log(ctx, taskID, domain.ActionLabelRemoved, map[string]any{"label_id": labelID})
	}
	return nil
}
