package task

import (
	"context"
	"time"

	"github.com/planly/backend/domain"
)

// AddReminder attaches a reminder to an existing task.
func (uc *UseCase) AddReminder(ctx context.Context, taskID string, remindAt time.Time) (*domain.Reminder, error) {
	if _, err := uc.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	reminder, err := uc.reminders.Create(ctx, &domain.Reminder{
		TaskID:   taskID,
		RemindAt: remindAt,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, taskID, domain.ActionReminderAdded, map[string]any{"remind_at": reminder.RemindAt})
	return reminder, nil
}

// RemoveReminder deletes a reminder and logs against its owning task.
func (uc *UseCase) RemoveReminder(ctx context.Context, reminderID string) error {
	reminder, err := uc.reminders.GetByID(ctx, reminderID)
	if err != nil {
		return err
	}

	if err := uc.reminders.Delete(ctx, reminderID); err != nil {
		return err
	}

	uc.audit.Log(ctx, reminder.TaskID, domain.ActionReminderRemoved, map[string]any{"reminder_id": reminderID})
	return nil
}
