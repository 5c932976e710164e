package repository

import (
	"context"

	"github.com/planly/backend/domain"
)

type ReminderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reminder, error)
	ListByTask(ctx context.Context, taskID string) ([]domain.Reminder, error)
	Create(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
	Delete(ctx context.Context, id string) error
}
