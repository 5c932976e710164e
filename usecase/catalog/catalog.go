// Package catalog holds list and label management. Lists are the only
// entities with a protected instance: the default Inbox list can never
// be deleted.
package catalog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/repository"
)

const (
	defaultListIcon  = "📝"
	defaultLabelIcon = "🏷️"
	defaultColor     = "gray"
)

type CreateListInput struct {
	Name  string
	Icon  string
	Color string
}

type UpdateListInput struct {
	Name  *string
	Icon  *string
	Color *string
}

type CreateLabelInput struct {
	Name  string
	Icon  string
	Color string
}

type UpdateLabelInput struct {
	Name  *string
	Icon  *string
	Color *string
}

type UseCase struct {
	lists  repository.ListRepository
	labels repository.LabelRepository
	logger *zap.Logger
}

func New(lists repository.ListRepository, labels repository.LabelRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		lists:  lists,
		labels: labels,
		logger: logger,
	}
}

func (uc *UseCase) Lists(ctx context.Context) ([]domain.List, error) {
	return uc.lists.List(ctx)
}

func (uc *UseCase) GetList(ctx context.Context, id string) (*domain.List, error) {
	return uc.lists.GetByID(ctx, id)
}

func (uc *UseCase) CreateList(ctx context.Context, in CreateListInput) (*domain.List, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	list := &domain.List{
		Name:  name,
		Icon:  fallback(in.Icon, defaultListIcon),
		Color: fallback(in.Color, defaultColor),
	}
	return uc.lists.Create(ctx, list)
}

func (uc *UseCase) UpdateList(ctx context.Context, id string, in UpdateListInput) (*domain.List, error) {
	list, err := uc.lists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrNameRequired
		}
		list.Name = name
	}
	if in.Icon != nil {
		list.Icon = *in.Icon
	}
	if in.Color != nil {
		list.Color = *in.Color
	}

	if err := uc.lists.Update(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteList refuses to remove the default list; otherwise deletion
// cascades to the list's tasks.
func (uc *UseCase) DeleteList(ctx context.Context, id string) error {
	list, err := uc.lists.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if list.IsDefault {
		return domain.ErrDefaultListProtected
	}
	return uc.lists.Delete(ctx, id)
}

func (uc *UseCase) Labels(ctx context.Context) ([]domain.Label, error) {
	return uc.labels.List(ctx)
}

func (uc *UseCase) GetLabel(ctx context.Context, id string) (*domain.Label, error) {
	return uc.labels.GetByID(ctx, id)
}

func (uc *UseCase) CreateLabel(ctx context.Context, in CreateLabelInput) (*domain.Label, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	label := &domain.Label{
		Name:  name,
		Icon:  fallback(in.Icon, defaultLabelIcon),
		Color: fallback(in.Color, defaultColor),
	}
	return uc.labels.Create(ctx, label)
}

func (uc *UseCase) UpdateLabel(ctx context.Context, id string, in UpdateLabelInput) (*domain.Label, error) {
	label, err := uc.labels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrNameRequired
		}
		label.Name = name
	}
	if in.Icon != nil {
		label.Icon = *in.Icon
	}
	if in.Color != nil {
		label.Color = *in.Color
	}

	if err := uc.labels.Update(ctx, label); err != nil {
		return nil, err
	}
	return label, nil
}

// DeleteLabel removes the label; the cascade takes only its task
// associations, tasks themselves stay.
func (uc *UseCase) DeleteLabel(ctx context.Context, id string) error {
	return uc.labels.Delete(ctx, id)
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
