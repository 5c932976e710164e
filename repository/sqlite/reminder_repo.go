package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/repository"
)

type reminderRepository struct {
	db *sql.DB
}

// NewReminderRepository returns a sqlite-backed implementation of ReminderRepository.
func NewReminderRepository(db *sql.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) GetByID(ctx context.Context, id string) (*domain.Reminder, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, task_id, remind_at, created_at FROM reminders WHERE id = ?", id)
	return scanReminder(row)
}

func (r *reminderRepository) ListByTask(ctx context.Context, taskID string) ([]domain.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, task_id, remind_at, created_at FROM reminders WHERE task_id = ? ORDER BY remind_at ASC",
		taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []domain.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, *reminder)
	}
	return reminders, rows.Err()
}

func (r *reminderRepository) Create(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}
	reminder.CreatedAt = now()

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO reminders (id, task_id, remind_at, created_at) VALUES (?, ?, ?, ?)",
		reminder.ID, reminder.TaskID, millis(reminder.RemindAt), millis(reminder.CreatedAt))
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *reminderRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.ExecContext(ctx, "DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := tag.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

func scanReminder(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Reminder, error) {
	var reminder domain.Reminder
	var remindAt, created int64

	if err := row.Scan(&reminder.ID, &reminder.TaskID, &remindAt, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReminderNotFound
		}
		return nil, err
	}

	reminder.RemindAt = timeOf(remindAt)
	reminder.CreatedAt = timeOf(created)
	return &reminder, nil
}
