package sqlite

import (
	"context"
	"database/sql"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/repository"
)

type attachmentRepository struct {
	db *sql.DB
}

// NewAttachmentRepository returns a sqlite-backed implementation of AttachmentRepository.
func NewAttachmentRepository(db *sql.DB) repository.AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) ListByTask(ctx context.Context, taskID string) ([]domain.Attachment, error) {
	const query = `
	SELECT id, task_id, file_name, file_url, file_size, mime_type, created_at
	FROM attachments
	WHERE task_id = ?
	ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attachments []domain.Attachment
	for rows.Next() {
		var a domain.Attachment
		var created int64
		if err := rows.Scan(&a.ID, &a.TaskID, &a.FileName, &a.FileURL, &a.FileSize, &a.MimeType, &created); err != nil {
			return nil, err
		}
		a.CreatedAt = timeOf(created)
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}
