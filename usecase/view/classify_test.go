package view

import (
	"testing"
	"time"

	"github.com/planly/backend/domain"
)

var noon = time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC)

func datedTask(name string, date time.Time) domain.Task {
	return domain.Task{Name: name, Date: &date}
}

func names(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Name)
	}
	return out
}

func assertNames(t *testing.T, got []domain.Task, want ...string) {
	t.Helper()
	gotNames := names(got)
	if len(gotNames) != len(want) {
		t.Fatalf("tasks = %v, want %v", gotNames, want)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("tasks = %v, want %v", gotNames, want)
		}
	}
}

func TestParseSelector(t *testing.T) {
	for _, valid := range []string{"today", "next_7_days", "upcoming", "overdue", "all"} {
		if _, err := ParseSelector(valid); err != nil {
			t.Errorf("ParseSelector(%q): %v", valid, err)
		}
	}
	if _, err := ParseSelector("yesterday"); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("ParseSelector(yesterday) = %v, want INVALID", err)
	}
}

func TestFilterTodayBoundaries(t *testing.T) {
	dayStart := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		datedTask("midnight", dayStart),
		datedTask("last second", dayStart.Add(24*time.Hour-time.Second)),
		datedTask("tomorrow midnight", dayStart.Add(24*time.Hour)),
		datedTask("yesterday", dayStart.Add(-time.Hour)),
		{Name: "undated"},
	}

	got := Filter(tasks, SelectorToday, false, noon)
	assertNames(t, got, "midnight", "last second")
}

func TestFilterNext7DaysInclusiveWindow(t *testing.T) {
	dayStart := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		datedTask("today", dayStart),
		datedTask("in six days", dayStart.AddDate(0, 0, 6)),
		datedTask("boundary", dayStart.AddDate(0, 0, 7)),
		datedTask("past boundary", dayStart.AddDate(0, 0, 7).Add(time.Second)),
		datedTask("yesterday", dayStart.Add(-time.Hour)),
	}

	got := Filter(tasks, SelectorNext7Days, false, noon)
	assertNames(t, got, "today", "in six days", "boundary")
}

func TestFilterUpcoming(t *testing.T) {
	dayStart := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		datedTask("today", dayStart.Add(time.Hour)),
		datedTask("next month", dayStart.AddDate(0, 1, 0)),
		datedTask("yesterday", dayStart.Add(-time.Minute)),
		{Name: "undated"},
	}

	got := Filter(tasks, SelectorUpcoming, false, noon)
	assertNames(t, got, "today", "next month")
}

func TestFilterOverdue(t *testing.T) {
	dayStart := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	pastDeadline := dayStart.Add(-time.Hour)

	tasks := []domain.Task{
		datedTask("past date", dayStart.AddDate(0, 0, -1)),
		{Name: "past deadline", Deadline: &pastDeadline},
		datedTask("today", dayStart),
		{Name: "undated"},
	}
	completed := datedTask("done yesterday", dayStart.AddDate(0, 0, -1))
	completed.Completed = true
	tasks = append(tasks, completed)

	got := Filter(tasks, SelectorOverdue, false, noon)
	assertNames(t, got, "past date", "past deadline")

	// Overdue never includes completed tasks, regardless of showCompleted.
	got = Filter(tasks, SelectorOverdue, true, noon)
	assertNames(t, got, "past date", "past deadline")
}

func TestFilterShowCompleted(t *testing.T) {
	dayStart := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	open := datedTask("open", dayStart)
	done := datedTask("done", dayStart)
	done.Completed = true
	tasks := []domain.Task{open, done}

	got := Filter(tasks, SelectorToday, false, noon)
	assertNames(t, got, "open")

	got = Filter(tasks, SelectorToday, true, noon)
	assertNames(t, got, "open", "done")
}

func TestSortByPriority(t *testing.T) {
	early := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		{Name: "low late", Priority: domain.PriorityLow, Date: &late},
		{Name: "high undated", Priority: domain.PriorityHigh},
		{Name: "high early", Priority: domain.PriorityHigh, Date: &early},
		{Name: "none old", Priority: domain.PriorityNone, CreatedAt: older},
		{Name: "none new", Priority: domain.PriorityNone, CreatedAt: newer},
	}

	SortByPriority(tasks)
	assertNames(t, tasks, "high early", "high undated", "low late", "none new", "none old")
}

func TestSortBySchedule(t *testing.T) {
	early := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		{Name: "undated pos 0", Position: 0},
		{Name: "late", Date: &late, Position: 5},
		{Name: "early pos 2", Date: &early, Position: 2},
		{Name: "early pos 1", Date: &early, Position: 1},
	}

	SortBySchedule(tasks)
	assertNames(t, tasks, "early pos 1", "early pos 2", "late", "undated pos 0")
}

func TestFilterAllKeepsUndated(t *testing.T) {
	tasks := []domain.Task{
		{Name: "undated"},
		datedTask("dated", noon),
	}
	got := Filter(tasks, SelectorAll, false, noon)
	if len(got) != 2 {
		t.Fatalf("all view dropped tasks: %v", names(got))
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if got := Filter(nil, SelectorToday, false, noon); len(got) != 0 {
		t.Fatalf("Filter(nil) = %v", got)
	}
}
