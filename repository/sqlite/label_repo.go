package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/repository"
)

const labelColumns = "id, name, icon, color, created_at, updated_at"

type labelRepository struct {
	db *sql.DB
}

// NewLabelRepository returns a sqlite-backed implementation of LabelRepository.
func NewLabelRepository(db *sql.DB) repository.LabelRepository {
	return &labelRepository{db: db}
}

func (r *labelRepository) GetByID(ctx context.Context, id string) (*domain.Label, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+labelColumns+" FROM labels WHERE id = ?", id)
	return scanLabel(row)
}

func (r *labelRepository) List(ctx context.Context) ([]domain.Label, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+labelColumns+" FROM labels ORDER BY name ASC")
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

func (r *labelRepository) Create(ctx context.Context, label *domain.Label) (*domain.Label, error) {
	if label.ID == "" {
		label.ID = uuid.NewString()
	}
	ts := now()
	label.CreatedAt = ts
	label.UpdatedAt = ts

	const query = `
	INSERT INTO labels (id, name, icon, color, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		label.ID, label.Name, label.Icon, label.Color, millis(ts), millis(ts))
	if err != nil {
		return nil, err
	}
	return label, nil
}

func (r *labelRepository) Update(ctx context.Context, label *domain.Label) error {
	label.UpdatedAt = now()

	const query = `
	UPDATE labels
	SET name = ?, icon = ?, color = ?, updated_at = ?
	WHERE id = ?
	`
	tag, err := r.db.ExecContext(ctx, query,
		label.Name, label.Icon, label.Color, millis(label.UpdatedAt), label.ID)
	if err != nil {
		return err
	}
	affected, err := tag.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrLabelNotFound
	}
	return nil
}

func (r *labelRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.ExecContext(ctx, "DELETE FROM labels WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := tag.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrLabelNotFound
	}
	return nil
}

func scanLabel(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Label, error) {
	var label domain.Label
	var created, updated int64

	if err := row.Scan(
		&label.ID,
		&label.Name,
		&label.Icon,
		&label.Color,
		&created,
		&updated,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLabelNotFound
		}
		return nil, err
	}

	label.CreatedAt = timeOf(created)
	label.UpdatedAt = timeOf(updated)
	return &label, nil
}
