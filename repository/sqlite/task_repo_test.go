package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/repository"
)

func seedList(t *testing.T, db *sql.DB, name string) *domain.List {
	t.Helper()
	list, err := NewListRepository(db).Create(context.Background(), &domain.List{
		Name: name, Icon: "L", Color: "blue",
	})
	if err != nil {
		t.Fatalf("seed list %q: %v", name, err)
	}
	return list
}

func seedLabel(t *testing.T, db *sql.DB, name string) *domain.Label {
	t.Helper()
	label, err := NewLabelRepository(db).Create(context.Background(), &domain.Label{
		Name: name, Icon: "#", Color: "red",
	})
	if err != nil {
		t.Fatalf("seed label %q: %v", name, err)
	}
	return label
}

func TestTaskCreateAssignsSequentialPositions(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	list := seedList(t, db, "Work")

	for i, name := range []string{"first", "second", "third"} {
		task, err := repo.Create(ctx, &domain.Task{
			Name:       name,
			ListID:     list.ID,
			Priority:   domain.PriorityNone,
			Recurrence: domain.RecurrenceNone,
		}, nil)
		if err != nil {
			t.Fatalf("Create %q: %v", name, err)
		}
		if task.Position != i {
			t.Errorf("task %q position = %d, want %d", name, task.Position, i)
		}
	}

	// A second list starts counting from zero again.
	other := seedList(t, db, "Home")
	task, err := repo.Create(ctx, &domain.Task{
		Name:       "elsewhere",
		ListID:     other.ID,
		Priority:   domain.PriorityNone,
		Recurrence: domain.RecurrenceNone,
	}, nil)
	if err != nil {
		t.Fatalf("Create in second list: %v", err)
	}
	if task.Position != 0 {
		t.Errorf("position in fresh list = %d, want 0", task.Position)
	}
}

func TestTaskRoundTripPreservesFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	list := seedList(t, db, "Work")

	desc := "write the report"
	date := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 9, 3, 17, 0, 0, 0, time.UTC)
	estimate := 90

	created, err := repo.Create(ctx, &domain.Task{
		Name:            "report",
		ListID:          list.ID,
		Description:     &desc,
		Date:            &date,
		Deadline:        &deadline,
		EstimateMinutes: &estimate,
		Priority:        domain.PriorityHigh,
		Recurrence:      domain.RecurrenceWeekly,
	}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Description == nil || *got.Description != desc {
		t.Errorf("description = %v", got.Description)
	}
	if got.Date == nil || !got.Date.Equal(date) {
		t.Errorf("date = %v, want %v", got.Date, date)
	}
	if got.Deadline == nil || !got.Deadline.Equal(deadline) {
		t.Errorf("deadline = %v, want %v", got.Deadline, deadline)
	}
	if got.EstimateMinutes == nil || *got.EstimateMinutes != estimate {
		t.Errorf("estimate = %v", got.EstimateMinutes)
	}
	if got.Priority != domain.PriorityHigh {
		t.Errorf("priority = %q", got.Priority)
	}
	if got.Recurrence != domain.RecurrenceWeekly {
		t.Errorf("recurrence = %q", got.Recurrence)
	}
	if got.Completed || got.CompletedAt != nil {
		t.Errorf("new task reported completed: %v %v", got.Completed, got.CompletedAt)
	}
}

func TestTaskLabelLinks(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	list := seedList(t, db, "Work")
	label := seedLabel(t, db, "urgent")

	task, err := repo.Create(ctx, &domain.Task{
		Name:       "tagged",
		ListID:     list.ID,
		Priority:   domain.PriorityNone,
		Recurrence: domain.RecurrenceNone,
	}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	inserted, err := repo.AttachLabel(ctx, task.ID, label.ID)
	if err != nil {
		t.Fatalf("AttachLabel: %v", err)
	}
	if !inserted {
		t.Error("first attach reported not inserted")
	}

	// Duplicate link is absorbed, not an error.
	inserted, err = repo.AttachLabel(ctx, task.ID, label.ID)
	if err != nil {
		t.Fatalf("duplicate AttachLabel: %v", err)
	}
	if inserted {
		t.Error("duplicate attach reported inserted")
	}

	labels, err := repo.ListLabels(ctx, task.ID)
	if err != nil {
		t.Fatalf("ListLabels: %v", err)
	}
	if len(labels) != 1 || labels[0].ID != label.ID {
		t.Fatalf("labels = %+v, want exactly the attached one", labels)
	}

	byLabel, err := repo.ListByLabel(ctx, label.ID)
	if err != nil {
		t.Fatalf("ListByLabel: %v", err)
	}
	if len(byLabel) != 1 || byLabel[0].ID != task.ID {
		t.Fatalf("ListByLabel = %+v", byLabel)
	}

	removed, err := repo.DetachLabel(ctx, task.ID, label.ID)
	if err != nil {
		t.Fatalf("DetachLabel: %v", err)
	}
	if !removed {
		t.Error("detach reported nothing removed")
	}
	removed, err = repo.DetachLabel(ctx, task.ID, label.ID)
	if err != nil {
		t.Fatalf("second DetachLabel: %v", err)
	}
	if removed {
		t.Error("detaching a missing link reported removed")
	}
}

func TestTaskCreateWithInitialLabels(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	list := seedList(t, db, "Work")
	a := seedLabel(t, db, "alpha")
	b := seedLabel(t, db, "beta")

	task, err := repo.Create(ctx, &domain.Task{
		Name:       "tagged",
		ListID:     list.ID,
		Priority:   domain.PriorityNone,
		Recurrence: domain.RecurrenceNone,
	}, []string{a.ID, b.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	labels, err := repo.ListLabels(ctx, task.ID)
	if err != nil {
		t.Fatalf("ListLabels: %v", err)
	}
	if len(labels) != 2 {
		t.Fatalf("labels = %d, want 2", len(labels))
	}
}

func TestTaskDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	list := seedList(t, db, "Work")
	label := seedLabel(t, db, "urgent")

	parent, err := repo.Create(ctx, &domain.Task{
		Name:       "parent",
		ListID:     list.ID,
		Priority:   domain.PriorityNone,
		Recurrence: domain.RecurrenceNone,
	}, []string{label.ID})
	if err != nil {
		t.Fatalf("Create parent: %v", err)
	}

	child, err := repo.Create(ctx, &domain.Task{
		Name:         "child",
		ListID:       list.ID,
		ParentTaskID: &parent.ID,
		Priority:     domain.PriorityNone,
		Recurrence:   domain.RecurrenceNone,
	}, nil)
	if err != nil {
		t.Fatalf("Create child: %v", err)
	}

	reminders := NewReminderRepository(db)
	if _, err := reminders.Create(ctx, &domain.Reminder{
		TaskID:   parent.ID,
		RemindAt: time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatalf("Create reminder: %v", err)
	}

	entries := NewActivityRepository(db)
	if err := entries.Append(ctx, &domain.ActivityEntry{
		TaskID:  parent.ID,
		Action:  domain.ActionCreated,
		Payload: []byte(`{"name":"parent"}`),
	}); err != nil {
		t.Fatalf("Append activity: %v", err)
	}

	if err := repo.Delete(ctx, parent.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.GetByID(ctx, child.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("child after cascade = %v, want ErrTaskNotFound", err)
	}
	if got, err := reminders.ListByTask(ctx, parent.ID); err != nil || len(got) != 0 {
		t.Errorf("reminders after cascade = %v, %v", got, err)
	}
	if got, err := entries.Recent(ctx, repository.ActivityFilter{TaskID: parent.ID}); err != nil || len(got) != 0 {
		t.Errorf("activity after cascade = %v, %v", got, err)
	}

	var links int
	if err := db.QueryRow("SELECT COUNT(*) FROM task_labels WHERE task_id = ?", parent.ID).Scan(&links); err != nil {
		t.Fatalf("count links: %v", err)
	}
	if links != 0 {
		t.Errorf("label links after cascade = %d, want 0", links)
	}
}

func TestListDeleteCascadesToTasks(t *testing.T) {
	db := newTestDB(t)
	tasks := NewTaskRepository(db)
	lists := NewListRepository(db)
	ctx := context.Background()
	list := seedList(t, db, "Doomed")

	task, err := tasks.Create(ctx, &domain.Task{
		Name:       "goes with it",
		ListID:     list.ID,
		Priority:   domain.PriorityNone,
		Recurrence: domain.RecurrenceNone,
	}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := lists.Delete(ctx, list.ID); err != nil {
		t.Fatalf("Delete list: %v", err)
	}
	if _, err := tasks.GetByID(ctx, task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("task after list cascade = %v, want ErrTaskNotFound", err)
	}
}

func TestListSubtasksAndTopLevel(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	list := seedList(t, db, "Work")

	parent, err := repo.Create(ctx, &domain.Task{
		Name:       "parent",
		ListID:     list.ID,
		Priority:   domain.PriorityNone,
		Recurrence: domain.RecurrenceNone,
	}, nil)
	if err != nil {
		t.Fatalf("Create parent: %v", err)
	}
	if _, err := repo.Create(ctx, &domain.Task{
		Name:         "child",
		ListID:       list.ID,
		ParentTaskID: &parent.ID,
		Priority:     domain.PriorityNone,
		Recurrence:   domain.RecurrenceNone,
	}, nil); err != nil {
		t.Fatalf("Create child: %v", err)
	}

	top, err := repo.ListTopLevel(ctx)
	if err != nil {
		t.Fatalf("ListTopLevel: %v", err)
	}
	for _, task := range top {
		if task.ParentTaskID != nil {
			t.Errorf("subtask %q leaked into the top-level listing", task.Name)
		}
	}

	subtasks, err := repo.ListSubtasks(ctx, parent.ID)
	if err != nil {
		t.Fatalf("ListSubtasks: %v", err)
	}
	if len(subtasks) != 1 || subtasks[0].Name != "child" {
		t.Fatalf("subtasks = %+v", subtasks)
	}
}

func TestActivityRecentOrderAndFilter(t *testing.T) {
	db := newTestDB(t)
	tasks := NewTaskRepository(db)
	entries := NewActivityRepository(db)
	ctx := context.Background()
	list := seedList(t, db, "Work")

	task, err := tasks.Create(ctx, &domain.Task{
		Name:       "audited",
		ListID:     list.ID,
		Priority:   domain.PriorityNone,
		Recurrence: domain.RecurrenceNone,
	}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, action := range []string{domain.ActionCreated, domain.ActionUpdated, domain.ActionLabelAdded} {
		if err := entries.Append(ctx, &domain.ActivityEntry{
			TaskID:  task.ID,
			Action:  action,
			Payload: []byte(`{}`),
		}); err != nil {
			t.Fatalf("Append %q: %v", action, err)
		}
	}

	got, err := entries.Recent(ctx, repository.ActivityFilter{TaskID: task.ID, Limit: 2})
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2", len(got))
	}
	if got[0].Action != domain.ActionLabelAdded {
		t.Errorf("newest entry = %q, want %q", got[0].Action, domain.ActionLabelAdded)
	}

	all, err := entries.Recent(ctx, repository.ActivityFilter{})
	if err != nil {
		t.Fatalf("Recent all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("unfiltered entries = %d, want 3", len(all))
	}
}
