package repository

import (
	"context"

	"github.com/planly/backend/domain"
)

type LabelRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Label, error)
	List(ctx context.Context) ([]domain.Label, error)
	Create(ctx context.Context, label *domain.Label) (*domain.Label, error)
	Update(ctx context.Context, label *domain.Label) error
	Delete(ctx context.Context, id string) error
}
