package task

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/planly/backend/domain"
)

// CreateSubtask adds a child task under an existing top-level parent.
// Subtasks inherit the parent's list and nest exactly one level.
func (uc *UseCase) CreateSubtask(ctx context.Context, parentID, name string) (*domain.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	parent, err := uc.tasks.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent.IsSubtask() {
		return nil, domain.ErrSubtaskNesting
	}

	subtask := &domain.Task{
		Name:         name,
		ListID:       parent.ListID,
		Priority:     domain.PriorityNone,
		Recurrence:   domain.RecurrenceNone,
		ParentTaskID: &parent.ID,
	}

	created, err := uc.tasks.Create(ctx, subtask, nil)
	if err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, parent.ID, domain.ActionSubtaskAdded, map[string]any{
		"subtask_id": created.ID,
		"name":       created.Name,
	})
	return created, nil
}

// SetSubtaskCompletion toggles a subtask's completed flag, following the
// same completedAt rule as tasks. Setting the current value is a no-op.
func (uc *UseCase) SetSubtaskCompletion(ctx context.Context, subtaskID string, completed bool) (*domain.Task, error) {
	subtask, err := uc.tasks.GetByID(ctx, subtaskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, domain.ErrSubtaskNotFound
		}
		return nil, err
	}
	if !subtask.IsSubtask() {
		return nil, domain.ErrSubtaskNotFound
	}

	if subtask.Completed == completed {
		return subtask, nil
	}

	subtask.Completed = completed
	if completed {
		completedAt := time.UnixMilli(time.Now().UnixMilli())
		subtask.CompletedAt = &completedAt
	} else {
		subtask.CompletedAt = nil
	}

	if err := uc.tasks.Update(ctx, subtask); err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, *subtask.ParentTaskID, domain.ActionSubtaskUpdated, map[string]any{
		"subtask_id": subtask.ID,
		"completed":  completed,
	})
	return subtask, nil
}
