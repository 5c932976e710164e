package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/repository"
)

type activityRepository struct {
	db *sql.DB
}

// NewActivityRepository returns a sqlite-backed implementation of ActivityRepository.
func NewActivityRepository(db *sql.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Append(ctx context.Context, entry *domain.ActivityEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now()
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO activity_logs (id, task_id, action, payload, created_at) VALUES (?, ?, ?, ?, ?)",
		entry.ID, entry.TaskID, entry.Action, string(entry.Payload), millis(entry.CreatedAt))
	return err
}

func (r *activityRepository) Recent(ctx context.Context, filter repository.ActivityFilter) ([]domain.ActivityEntry, error) {
	const query = `
	SELECT id, task_id, action, payload, created_at
	FROM activity_logs
	WHERE (? = '' OR task_id = ?)
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, filter.TaskID, filter.TaskID, clampLimit(filter.Limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ActivityEntry
	for rows.Next() {
		var entry domain.ActivityEntry
		var payload string
		var created int64
		if err := rows.Scan(&entry.ID, &entry.TaskID, &entry.Action, &payload, &created); err != nil {
			return nil, err
		}
		entry.Payload = []byte(payload)
		entry.CreatedAt = timeOf(created)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
