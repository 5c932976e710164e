package audit

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/planly/backend/domain"
	"github.com/planly/backend/internal/infrastructure/spool"
	"github.com/planly/backend/repository"
)

// flakyActivityRepo fails appends on demand, standing in for a store
// that is temporarily unreachable.
type flakyActivityRepo struct {
	fail    bool
	entries []domain.ActivityEntry
}

func (r *flakyActivityRepo) Append(_ context.Context, entry *domain.ActivityEntry) error {
	if r.fail {
		return errors.New("store offline")
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *flakyActivityRepo) Recent(context.Context, repository.ActivityFilter) ([]domain.ActivityEntry, error) {
	return r.entries, nil
}

func newTestSpool(t *testing.T) *spool.Store {
	t.Helper()
	store, err := spool.Open(filepath.Join(t.TempDir(), "spool.db"), "audit")
	if err != nil {
		t.Fatalf("open spool: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLogAppendsDirectly(t *testing.T) {
	repo := &flakyActivityRepo{}
	store := newTestSpool(t)
	logger := New(repo, store, nil)

	logger.Log(context.Background(), "task-1", domain.ActionCreated, map[string]any{"name": "x"})

	if len(repo.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(repo.entries))
	}
	if repo.entries[0].Action != domain.ActionCreated {
		t.Errorf("action = %q", repo.entries[0].Action)
	}
	size, err := store.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 0 {
		t.Errorf("spool depth = %d, want 0 on direct append", size)
	}
}

func TestLogSpoolsOnFailure(t *testing.T) {
	repo := &flakyActivityRepo{fail: true}
	store := newTestSpool(t)
	logger := New(repo, store, nil)

	logger.Log(context.Background(), "task-1", domain.ActionUpdated, map[string]any{"name": "x"})

	if len(repo.entries) != 0 {
		t.Fatalf("append succeeded despite failure: %+v", repo.entries)
	}
	size, err := store.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 1 {
		t.Fatalf("spool depth = %d, want 1", size)
	}
}

func TestDrainReplaysSpooledEntries(t *testing.T) {
	repo := &flakyActivityRepo{fail: true}
	store := newTestSpool(t)
	logger := New(repo, store, nil)

	logger.Log(context.Background(), "task-1", domain.ActionUpdated, map[string]any{"name": "a"})
	logger.Log(context.Background(), "task-2", domain.ActionDeleted, map[string]any{"name": "b"})

	repo.fail = false
	replayer := NewReplayer(store, repo, nil, ReplayConfig{})
	if err := replayer.Drain(context.Background()); err != nil {
		t.Fatalf("Drain: %v", err)
	}

	if len(repo.entries) != 2 {
		t.Fatalf("replayed entries = %d, want 2", len(repo.entries))
	}
	if size, _ := store.Size(); size != 0 {
		t.Errorf("spool depth after drain = %d, want 0", size)
	}
}

func TestDrainDropsAfterMaxRetries(t *testing.T) {
	repo := &flakyActivityRepo{fail: true}
	store := newTestSpool(t)
	logger := New(repo, store, nil)

	logger.Log(context.Background(), "task-1", domain.ActionUpdated, map[string]any{"name": "a"})

	replayer := NewReplayer(store, repo, nil, ReplayConfig{MaxRetries: 2})
	for i := 0; i < 3; i++ {
		if err := replayer.Drain(context.Background()); err != nil {
			t.Fatalf("Drain %d: %v", i, err)
		}
	}

	if size, _ := store.Size(); size != 0 {
		t.Errorf("spool depth = %d, want entry dropped after retry budget", size)
	}
	if len(repo.entries) != 0 {
		t.Errorf("entries = %d, want none (store never recovered)", len(repo.entries))
	}
}

func TestLogWithoutSpoolOnlyReports(t *testing.T) {
	repo := &flakyActivityRepo{fail: true}
	logger := New(repo, nil, nil)

	// Must not panic and must not surface an error to the caller.
	logger.Log(context.Background(), "task-1", domain.ActionCreated, map[string]any{"name": "x"})
}
