package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/repository"
)

const taskColumns = `id, list_id, name, description, date, deadline, estimate, actual_time,
	priority, completed, completed_at, recurrence, recurrence_pattern, parent_task_id,
	position, created_at, updated_at`

const taskJoinColumns = `t.id, t.list_id, t.name, t.description, t.date, t.deadline, t.estimate,
	t.actual_time, t.priority, t.completed, t.completed_at, t.recurrence, t.recurrence_pattern,
	t.parent_task_id, t.position, t.created_at, t.updated_at`

type taskRepository struct {
	db *sql.DB
}

// NewTaskRepository returns a sqlite-backed implementation of TaskRepository.
func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	return scanTask(row)
}

func (r *taskRepository) ListTopLevel(ctx context.Context) ([]domain.Task, error) {
	const query = `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE parent_task_id IS NULL
	ORDER BY position ASC, created_at DESC
	`
	return r.queryTasks(ctx, query)
}

func (r *taskRepository) ListByList(ctx context.Context, listID string) ([]domain.Task, error) {
	const query = `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE list_id = ? AND parent_task_id IS NULL
	ORDER BY position ASC, created_at DESC
	`
	return r.queryTasks(ctx, query, listID)
}

func (r *taskRepository) ListByLabel(ctx context.Context, labelID string) ([]domain.Task, error) {
	const query = `
	SELECT ` + taskJoinColumns + `
	FROM tasks t
	INNER JOIN task_labels tl ON t.id = tl.task_id
	WHERE tl.label_id = ? AND t.parent_task_id IS NULL
	ORDER BY t.position ASC, t.created_at DESC
	`
	return r.queryTasks(ctx, query, labelID)
}

func (r *taskRepository) ListSubtasks(ctx context.Context, parentID string) ([]domain.Task, error) {
	const query = `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE parent_task_id = ?
	ORDER BY created_at ASC
	`
	return r.queryTasks(ctx, query, parentID)
}

func (r *taskRepository) ListLabels(ctx context.Context, taskID string) ([]domain.Label, error) {
	const query = `
	SELECT l.id, l.name, l.icon, l.color, l.created_at, l.updated_at
	FROM labels l
	INNER JOIN task_labels tl ON l.id = tl.label_id
	WHERE tl.task_id = ?
	ORDER BY l.name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []domain.Label
	for rows.Next() {
		label, err := scanLabel(rows)
		if err != nil {
			return nil, err
		}
		labels = append(labels, *label)
	}
	return labels, rows.Err()
}

// Create inserts the task and its initial label links in one transaction.
// Position continues from the current maximum within the owning list.
func (r *taskRepository) Create(ctx context.Context, task *domain.Task, labelIDs []string) (*domain.Task, error) {
	if task == nil {
		return nil, domain.NewError(domain.ErrCodeInvalid, "invalid payload")
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	ts := now()
	task.CreatedAt = ts
	task.UpdatedAt = ts

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM tasks WHERE list_id = ?",
		task.ListID,
	).Scan(&task.Position); err != nil {
		return nil, err
	}

	const insert = `
	INSERT INTO tasks (
		id, list_id, name, description, date, deadline, estimate, actual_time,
		priority, completed, completed_at, recurrence, recurrence_pattern,
		parent_task_id, position, created_at, updated_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, insert,
		task.ID,
		task.ListID,
		task.Name,
		nullStr(task.Description),
		nullMillis(task.Date),
		nullMillis(task.Deadline),
		nullInt(task.EstimateMinutes),
		nullInt(task.ActualMinutes),
		string(task.Priority),
		boolInt(task.Completed),
		nullMillis(task.CompletedAt),
		string(task.Recurrence),
		nullStr(task.RecurrencePattern),
		nullStr(task.ParentTaskID),
		task.Position,
		millis(ts),
		millis(ts),
	); err != nil {
		return nil, err
	}

	for _, labelID := range labelIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO task_labels (task_id, label_id, created_at) VALUES (?, ?, ?)",
			task.ID, labelID, millis(ts),
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.NewError(domain.ErrCodeInvalid, "invalid payload")
	}
	task.UpdatedAt = now()

	const query = `
	UPDATE tasks
	SET list_id = ?,
		name = ?,
		description = ?,
		date = ?,
		deadline = ?,
		estimate = ?,
		actual_time = ?,
		priority = ?,
		completed = ?,
		completed_at = ?,
		recurrence = ?,
		recurrence_pattern = ?,
		position = ?,
		updated_at = ?
	WHERE id = ?
	`
	tag, err := r.db.ExecContext(ctx, query,
		task.ListID,
		task.Name,
		nullStr(task.Description),
		nullMillis(task.Date),
		nullMillis(task.Deadline),
		nullInt(task.EstimateMinutes),
		nullInt(task.ActualMinutes),
		string(task.Priority),
		boolInt(task.Completed),
		nullMillis(task.CompletedAt),
		string(task.Recurrence),
		nullStr(task.RecurrencePattern),
		task.Position,
		millis(task.UpdatedAt),
		task.ID,
	)
	if err != nil {
		return err
	}
	affected, err := tag.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := tag.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) AttachLabel(ctx context.Context, taskID, labelID string) (bool, error) {
	tag, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO task_labels (task_id, label_id, created_at) VALUES (?, ?, ?)",
		taskID, labelID, millis(now()))
	if err != nil {
		return false, err
	}
	affected, err := tag.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *taskRepository) DetachLabel(ctx context.Context, taskID, labelID string) (bool, error) {
	tag, err := r.db.ExecContext(ctx,
		"DELETE FROM task_labels WHERE task_id = ? AND label_id = ?",
		taskID, labelID)
	if err != nil {
		return false, err
	}
	affected, err := tag.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *taskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task
	var (
		description sql.NullString
		date        sql.NullInt64
		deadline    sql.NullInt64
		estimate    sql.NullInt64
		actual      sql.NullInt64
		priority    string
		completed   int
		completedAt sql.NullInt64
		recurrence  string
		pattern     sql.NullString
		parentID    sql.NullString
		created     int64
		updated     int64
	)

	if err := row.Scan(
		&task.ID,
		&task.ListID,
		&task.Name,
		&description,
		&date,
		&deadline,
		&estimate,
		&actual,
		&priority,
		&completed,
		&completedAt,
		&recurrence,
		&pattern,
		&parentID,
		&task.Position,
		&created,
		&updated,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.Description = strPtr(description)
	task.Date = timePtr(date)
	task.Deadline = timePtr(deadline)
	task.EstimateMinutes = intPtr(estimate)
	task.ActualMinutes = intPtr(actual)
	task.Priority = domain.Priority(priority)
	task.Completed = completed != 0
	task.CompletedAt = timePtr(completedAt)
	task.Recurrence = domain.Recurrence(recurrence)
	task.RecurrencePattern = strPtr(pattern)
	task.ParentTaskID = strPtr(parentID)
	task.CreatedAt = timeOf(created)
	task.UpdatedAt = timeOf(updated)
	return &task, nil
}
