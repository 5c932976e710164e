// Package view implements the read side of the planner: deterministic
// filtering and ordering of the top-level task collection by selector,
// list or label, enriched with labels and subtasks for display.
package view

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/repository"
)

// Query selects one view. A list or label id takes precedence over the
// selector's date logic when both are supplied.
type Query struct {
	Selector      Selector
	ListID        string
	LabelID       string
	ShowCompleted bool
}

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

// Tasks resolves a view query at the given reference instant. Empty
// views yield an empty slice, never an error.
func (uc *UseCase) Tasks(ctx context.Context, q Query, now time.Time) ([]domain.TaskWithRelations, error) {
	var (
		tasks []domain.Task
		err   error
	)

	switch {
	case q.ListID != "":
		tasks, err = uc.tasks.ListByList(ctx, q.ListID)
		if err != nil {
			return nil, err
		}
		tasks = filterCompleted(tasks, q.ShowCompleted)
		SortBySchedule(tasks)

	case q.LabelID != "":
		tasks, err = uc.tasks.ListByLabel(ctx, q.LabelID)
		if err != nil {
			return nil, err
		}
		tasks = filterCompleted(tasks, q.ShowCompleted)
		SortBySchedule(tasks)

	default:
		sel := q.Selector
		if sel == "" {
			sel = SelectorAll
		}
		tasks, err = uc.tasks.ListTopLevel(ctx)
		if err != nil {
			return nil, err
		}
		tasks = Filter(tasks, sel, q.ShowCompleted, now)
		SortByPriority(tasks)
	}

	return uc.enrich(ctx, tasks)
}

// OverdueCount reports how many active tasks are past their date or
// deadline, for the sidebar badge.
func (uc *UseCase) OverdueCount(ctx context.Context, now time.Time) (int, error) {
	tasks, err := uc.tasks.ListTopLevel(ctx)
	if err != nil {
		return 0, err
	}
	return len(Filter(tasks, SelectorOverdue, false, now)), nil
}

func (uc *UseCase) enrich(ctx context.Context, tasks []domain.Task) ([]domain.TaskWithRelations, error) {
	out := make([]domain.TaskWithRelations, 0, len(tasks))
	for _, t := range tasks {
		labels, err := uc.tasks.ListLabels(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		subtasks, err := uc.tasks.ListSubtasks(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.TaskWithRelations{
			Task:     t,
			Labels:   labels,
			Subtasks: subtasks,
		})
	}
	return out, nil
}

func filterCompleted(tasks []domain.Task, showCompleted bool) []domain.Task {
	if showCompleted {
		return tasks
	}
	var out []domain.Task
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}
