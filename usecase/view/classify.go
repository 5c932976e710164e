package view

import (
	"sort"
	"time"

	"github.com/planly/backend/domain"
)

// Selector names a date-driven slice of the task collection.
type Selector string

const (
	SelectorToday     Selector = "today"
	SelectorNext7Days Selector = "next_7_days"
	SelectorUpcoming  Selector = "upcoming"
	SelectorOverdue   Selector = "overdue"
	SelectorAll       Selector = "all"
)

// ParseSelector validates a selector string.
func ParseSelector(s string) (Selector, error) {
	switch Selector(s) {
	case SelectorToday, SelectorNext7Days, SelectorUpcoming, SelectorOverdue, SelectorAll:
		return Selector(s), nil
	}
	return "", domain.NewError(domain.ErrCodeInvalid, "unknown view selector")
}

// startOfDay truncates to the calendar day in the instant's location.
// View boundaries are day-granular, never exact-timestamp comparisons.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Filter returns the subset of tasks matching the selector at the given
// reference instant. Completed tasks are dropped unless showCompleted is
// set; overdue drops them unconditionally, overdue is inherently an
// "active" concept.
func Filter(tasks []domain.Task, sel Selector, showCompleted bool, now time.Time) []domain.Task {
	dayStart := startOfDay(now)

	var out []domain.Task
	for _, t := range tasks {
		if t.Completed {
			if sel == SelectorOverdue || !showCompleted {
				continue
			}
		}
		if matches(&t, sel, dayStart) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t *domain.Task, sel Selector, dayStart time.Time) bool {
	switch sel {
	case SelectorToday:
		return t.Date != nil &&
			!t.Date.Before(dayStart) &&
			t.Date.Before(dayStart.AddDate(0, 0, 1))
	case SelectorNext7Days:
		// Inclusive window [today 00:00, today+7d 00:00].
		return t.Date != nil &&
			!t.Date.Before(dayStart) &&
			!t.Date.After(dayStart.AddDate(0, 0, 7))
	case SelectorUpcoming:
		return t.Date != nil && !t.Date.Before(dayStart)
	case SelectorOverdue:
		overdueDate := t.Date != nil && t.Date.Before(dayStart)
		overdueDeadline := t.Deadline != nil && t.Deadline.Before(dayStart)
		return overdueDate || overdueDeadline
	default:
		return true
	}
}

// SortByPriority orders selector views: priority rank ascending, then
// date ascending with undated tasks after all dated ones, then creation
// time descending. The sort is stable across repeated calls.
func SortByPriority(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := &tasks[i], &tasks[j]
		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra < rb
		}
		if c := compareDates(a.Date, b.Date); c != 0 {
			return c < 0
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// SortBySchedule orders list and label views: date ascending with
// undated tasks last, then position ascending.
func SortBySchedule(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := &tasks[i], &tasks[j]
		if c := compareDates(a.Date, b.Date); c != 0 {
			return c < 0
		}
		return a.Position < b.Position
	})
}

func compareDates(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}
