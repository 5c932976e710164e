package search

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/repository"
)

type countingTaskRepo struct {
	repository.TaskRepository

	tasks  []domain.Task
	labels map[string][]domain.Label
	calls  int
}

func (f *countingTaskRepo) ListTopLevel(context.Context) ([]domain.Task, error) {
	f.calls++
	return f.tasks, nil
}

func (f *countingTaskRepo) ListLabels(_ context.Context, taskID string) ([]domain.Label, error) {
	return f.labels[taskID], nil
}

func (f *countingTaskRepo) ListSubtasks(context.Context, string) ([]domain.Task, error) {
	return nil, nil
}

type countingListRepo struct {
	repository.ListRepository

	lists []domain.List
	calls int
}

func (f *countingListRepo) List(context.Context) ([]domain.List, error) {
	f.calls++
	return f.lists, nil
}

func TestBlankQuerySkipsStorage(t *testing.T) {
	tasks := &countingTaskRepo{}
	lists := &countingListRepo{}
	uc := New(tasks, lists, SubstringMatcher{}, 0, nil)

	for _, q := range []string{"", "   ", "\t"} {
		results, err := uc.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("Search(%q): %v", q, err)
		}
		if len(results) != 0 {
			t.Errorf("Search(%q) = %d results, want 0", q, len(results))
		}
	}
	if tasks.calls != 0 || lists.calls != 0 {
		t.Errorf("blank queries touched storage: tasks=%d lists=%d", tasks.calls, lists.calls)
	}
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	desc := "quarterly budget numbers"
	tasks := &countingTaskRepo{
		tasks: []domain.Task{
			{ID: "t1", ListID: "l1", Name: "Write report"},
			{ID: "t2", ListID: "l1", Name: "Call dentist", Description: &desc},
			{ID: "t3", ListID: "l2", Name: "Water plants"},
			{ID: "t4", ListID: "l1", Name: "Nothing relevant"},
		},
		labels: map[string][]domain.Label{
			"t3": {{ID: "lb1", Name: "reports"}},
		},
	}
	lists := &countingListRepo{lists: []domain.List{
		{ID: "l1", Name: "Work"},
		{ID: "l2", Name: "Home"},
	}}
	uc := New(tasks, lists, SubstringMatcher{}, 0, nil)

	results, err := uc.Search(context.Background(), "report")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2 (name hit and label hit)", len(results))
	}
	// Name match outranks a label-only match.
	if results[0].ID != "t1" || results[1].ID != "t3" {
		t.Errorf("order = %s, %s; want t1, t3", results[0].ID, results[1].ID)
	}

	results, err = uc.Search(context.Background(), "budget")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].ID != "t2" {
		t.Fatalf("description match = %+v", results)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	tasks := &countingTaskRepo{tasks: []domain.Task{
		{ID: "t1", Name: "Buy GROCERIES"},
	}}
	uc := New(tasks, &countingListRepo{}, SubstringMatcher{}, 0, nil)

	results, err := uc.Search(context.Background(), "groceries")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("case-insensitive match failed: %+v", results)
	}
}

func TestSearchTiesBrokenByNewest(t *testing.T) {
	older := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	tasks := &countingTaskRepo{tasks: []domain.Task{
		{ID: "old", Name: "report a", CreatedAt: older},
		{ID: "new", Name: "report b", CreatedAt: newer},
	}}
	uc := New(tasks, &countingListRepo{}, SubstringMatcher{}, 0, nil)

	results, err := uc.Search(context.Background(), "report")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 || results[0].ID != "new" {
		t.Fatalf("tie order = %+v, want newest first", results)
	}
}

func TestSearchLimit(t *testing.T) {
	repo := &countingTaskRepo{}
	for i := 0; i < 10; i++ {
		repo.tasks = append(repo.tasks, domain.Task{
			ID:   fmt.Sprintf("t%d", i),
			Name: fmt.Sprintf("report %d", i),
		})
	}
	uc := New(repo, &countingListRepo{}, SubstringMatcher{}, 3, nil)

	results, err := uc.Search(context.Background(), "report")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want limit 3", len(results))
	}
}

func TestFuzzyMatcherToleratesTypos(t *testing.T) {
	m := FuzzyMatcher{}
	c := &Candidate{Task: domain.Task{Name: "Schedule dentist appointment"}}

	if score := m.Score("dentst", c); score <= 0 {
		t.Errorf("fuzzy score for typo = %d, want positive", score)
	}
	if score := m.Score("zzzzqq", c); score > 0 {
		t.Errorf("fuzzy score for garbage = %d, want 0", score)
	}
}

func TestNewMatcher(t *testing.T) {
	if _, ok := NewMatcher("fuzzy").(FuzzyMatcher); !ok {
		t.Error("NewMatcher(fuzzy) did not return the fuzzy matcher")
	}
	if _, ok := NewMatcher("substring").(SubstringMatcher); !ok {
		t.Error("NewMatcher(substring) did not return the substring matcher")
	}
	if _, ok := NewMatcher("unknown").(SubstringMatcher); !ok {
		t.Error("NewMatcher falls back to substring")
	}
}
