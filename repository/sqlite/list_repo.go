package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/repository"
)

const listColumns = "id, name, icon, color, is_default, created_at, updated_at"

type listRepository struct {
	db *sql.DB
}

// NewListRepository returns a sqlite-backed implementation of ListRepository.
func NewListRepository(db *sql.DB) repository.ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) GetByID(ctx context.Context, id string) (*domain.List, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+listColumns+" FROM lists WHERE id = ?", id)
	return scanList(row)
}

func (r *listRepository) GetDefault(ctx context.Context) (*domain.List, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+listColumns+" FROM lists WHERE is_default = 1")
	return scanList(row)
}

func (r *listRepository) List(ctx context.Context) ([]domain.List, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+listColumns+" FROM lists ORDER BY is_default DESC, created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []domain.List
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, *list)
	}
	return lists, rows.Err()
}

func (r *listRepository) Create(ctx context.Context, list *domain.List) (*domain.List, error) {
	if list.ID == "" {
		list.ID = uuid.NewString()
	}
	ts := now()
	list.CreatedAt = ts
	list.UpdatedAt = ts

	const query = `
	INSERT INTO lists (id, name, icon, color, is_default, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		list.ID, list.Name, list.Icon, list.Color, boolInt(list.IsDefault), millis(ts), millis(ts))
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *listRepository) Update(ctx context.Context, list *domain.List) error {
	list.UpdatedAt = now()

	const query = `
	UPDATE lists
	SET name = ?, icon = ?, color = ?, updated_at = ?
	WHERE id = ?
	`
	tag, err := r.db.ExecContext(ctx, query,
		list.Name, list.Icon, list.Color, millis(list.UpdatedAt), list.ID)
	if err != nil {
		return err
	}
	affected, err := tag.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrListNotFound
	}
	return nil
}

func (r *listRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.ExecContext(ctx, "DELETE FROM lists WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := tag.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrListNotFound
	}
	return nil
}

func scanList(row interface {
	Scan(dest ...interface{}) error
}) (*domain.List, error) {
	var list domain.List
	var (
		isDefault int
		created   int64
		updated   int64
	)

	if err := row.Scan(
		&list.ID,
		&list.Name,
		&list.Icon,
		&list.Color,
		&isDefault,
		&created,
		&updated,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListNotFound
		}
		return nil, err
	}

	list.IsDefault = isDefault != 0
	list.CreatedAt = timeOf(created)
	list.UpdatedAt = timeOf(updated)
	return &list, nil
}
