package task

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/repository"
	"github.com/planly/backend/usecase"
)

// Deps bundles the repositories the mutation service writes through.
type Deps struct {
	Tasks       repository.TaskRepository
	Lists       repository.ListRepository
	Labels      repository.LabelRepository
	Reminders   repository.ReminderRepository
	Attachments repository.AttachmentRepository
	Activity    repository.ActivityRepository
}

// UseCase is the only path by which tasks, subtasks, label links and
// reminders are created or changed.
type UseCase struct {
	tasks       repository.TaskRepository
	lists       repository.ListRepository
	labels      repository.LabelRepository
	reminders   repository.ReminderRepository
	attachments repository.AttachmentRepository
	activity    repository.ActivityRepository
	audit       usecase.ChangeLogger
	logger      *zap.Logger
}

func New(deps Deps, audit usecase.ChangeLogger, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:       deps.Tasks,
		lists:       deps.Lists,
		labels:      deps.Labels,
		reminders:   deps.Reminders,
		attachments: deps.Attachments,
		activity:    deps.Activity,
		audit:       audit,
		logger:      logger,
	}
}

// CreateTask validates the input, substitutes defaults and persists the
// task with its initial label links as one unit.
func (uc *UseCase) CreateTask(ctx context.Context, in CreateTaskInput) (*domain.Task, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	listID, err := uc.resolveList(ctx, in.ListID, in.NoList)
	if err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityNone
	}
	if !priority.Valid() {
		return nil, domain.ErrInvalidPriority
	}

	recurrence := in.Recurrence
	if recurrence == "" {
		recurrence = domain.RecurrenceNone
	}
	if !recurrence.Valid() {
		return nil, domain.ErrInvalidRecurrence
	}

	var estimate *int
	if in.Estimate != "" {
		minutes, err := domain.ParseClock(in.Estimate)
		if err != nil {
			return nil, err
		}
		estimate = &minutes
	}

	task := &domain.Task{
		Name:              name,
		ListID:            listID,
		Description:       in.Description,
		Date:              in.Date,
		Deadline:          in.Deadline,
		EstimateMinutes:   estimate,
		Priority:          priority,
		Recurrence:        recurrence,
		RecurrencePattern: in.RecurrencePattern,
	}

	created, err := uc.tasks.Create(ctx, task, dedupe(in.Labels))
	if err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, created.ID, domain.ActionCreated, map[string]any{"name": created.Name})
	return created, nil
}

// GetTask returns the full read model for one task.
func (uc *UseCase) GetTask(ctx context.Context, id string) (*domain.TaskDetails, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	labels, err := uc.tasks.ListLabels(ctx, id)
	if err != nil {
		return nil, err
	}
	subtasks, err := uc.tasks.ListSubtasks(ctx, id)
	if err != nil {
		return nil, err
	}
	reminders, err := uc.reminders.ListByTask(ctx, id)
	if err != nil {
		return nil, err
	}
	attachments, err := uc.attachments.ListByTask(ctx, id)
	if err != nil {
		return nil, err
	}
	activity, err := uc.activity.Recent(ctx, repository.ActivityFilter{TaskID: id, Limit: 50})
	if err != nil {
		return nil, err
	}

	return &domain.TaskDetails{
		TaskWithRelations: domain.TaskWithRelations{
			Task:     *task,
			Labels:   labels,
			Subtasks: subtasks,
		},
		Reminders:   reminders,
		Attachments: attachments,
		Activity:    activity,
	}, nil
}

// UpdateTask computes a field-level diff against the current state and
// applies only changed fields. A no-op update writes and logs nothing.
func (uc *UseCase) UpdateTask(ctx context.Context, id string, in UpdateTaskInput) (*domain.Task, error) {
	current, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ListID.Set && in.ListID.Value != current.ListID {
		if _, err := uc.lists.GetByID(ctx, in.ListID.Value); err != nil {
			return nil, err
		}
	}

	// Millisecond precision matches what storage round-trips.
	updated, changes, dirty, err := applyUpdate(*current, in, time.UnixMilli(time.Now().UnixMilli()))
	if err != nil {
		return nil, err
	}
	if !dirty {
		return current, nil
	}

	if err := uc.tasks.Update(ctx, &updated); err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		uc.audit.Log(ctx, updated.ID, domain.ActionUpdated, changes)
	}
	return &updated, nil
}

// DeleteTask logs the deletion with the pre-deletion state, then removes
// the row; ownership cascades take the relations with it.
func (uc *UseCase) DeleteTask(ctx context.Context, id string) error {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	uc.audit.Log(ctx, id, domain.ActionDeleted, map[string]any{"name": task.Name})
	return uc.tasks.Delete(ctx, id)
}

func (uc *UseCase) resolveList(ctx context.Context, listID string, noList bool) (string, error) {
	if noList || listID == "" {
		inbox, err := uc.lists.GetDefault(ctx)
		if err != nil {
			return "", err
		}
		return inbox.ID, nil
	}
	list, err := uc.lists.GetByID(ctx, listID)
	if err != nil {
		return "", err
	}
	return list.ID, nil
}

func dedupe(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
