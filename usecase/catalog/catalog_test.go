package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/planly/backend/domain"
	sqliteInfra "github.com/planly/backend/internal/infrastructure/sqlite"
	sqliteRepo "github.com/planly/backend/repository/sqlite"
)

func newTestUseCase(t *testing.T) *UseCase {
	t.Helper()

	cfg := sqliteInfra.Config{
		Path:        filepath.Join(t.TempDir(), "planner.db"),
		BusyTimeout: time.Second,
	}
	if err := sqliteInfra.RunMigrations(cfg, nil); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	db, err := sqliteInfra.Open(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return New(sqliteRepo.NewListRepository(db), sqliteRepo.NewLabelRepository(db), nil)
}

func TestCreateListDefaults(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	list, err := uc.CreateList(ctx, CreateListInput{Name: "  Groceries  "})
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	if list.Name != "Groceries" {
		t.Errorf("name = %q, want trimmed", list.Name)
	}
	if list.Icon == "" || list.Color == "" {
		t.Errorf("defaults not applied: icon=%q color=%q", list.Icon, list.Color)
	}
	if list.IsDefault {
		t.Error("user-created list flagged as default")
	}
}

func TestCreateListRejectsBlankName(t *testing.T) {
	uc := newTestUseCase(t)

	if _, err := uc.CreateList(context.Background(), CreateListInput{Name: "   "}); !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("blank name = %v, want ErrNameRequired", err)
	}
	if _, err := uc.CreateLabel(context.Background(), CreateLabelInput{Name: ""}); !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("blank label name = %v, want ErrNameRequired", err)
	}
}

func TestDeleteDefaultListRefused(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	lists, err := uc.Lists(ctx)
	if err != nil {
		t.Fatalf("Lists: %v", err)
	}
	var inbox *domain.List
	for i := range lists {
		if lists[i].IsDefault {
			inbox = &lists[i]
		}
	}
	if inbox == nil {
		t.Fatal("no default list seeded")
	}

	if err := uc.DeleteList(ctx, inbox.ID); !errors.Is(err, domain.ErrDefaultListProtected) {
		t.Errorf("DeleteList(inbox) = %v, want ErrDefaultListProtected", err)
	}

	// Regular lists delete fine.
	regular, err := uc.CreateList(ctx, CreateListInput{Name: "Disposable"})
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	if err := uc.DeleteList(ctx, regular.ID); err != nil {
		t.Errorf("DeleteList(regular) = %v", err)
	}
}

func TestUpdateListPartialFields(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.CreateList(ctx, CreateListInput{Name: "Work", Icon: "W", Color: "blue"})
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}

	color := "green"
	updated, err := uc.UpdateList(ctx, created.ID, UpdateListInput{Color: &color})
	if err != nil {
		t.Fatalf("UpdateList: %v", err)
	}
	if updated.Color != "green" {
		t.Errorf("color = %q", updated.Color)
	}
	if updated.Name != "Work" || updated.Icon != "W" {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	blank := " "
	if _, err := uc.UpdateList(ctx, created.ID, UpdateListInput{Name: &blank}); !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("blank rename = %v, want ErrNameRequired", err)
	}
}

func TestLabelLifecycle(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	label, err := uc.CreateLabel(ctx, CreateLabelInput{Name: "urgent"})
	if err != nil {
		t.Fatalf("CreateLabel: %v", err)
	}

	name := "asap"
	updated, err := uc.UpdateLabel(ctx, label.ID, UpdateLabelInput{Name: &name})
	if err != nil {
		t.Fatalf("UpdateLabel: %v", err)
	}
	if updated.Name != "asap" {
		t.Errorf("name = %q", updated.Name)
	}

	if err := uc.DeleteLabel(ctx, label.ID); err != nil {
		t.Fatalf("DeleteLabel: %v", err)
	}
	if _, err := uc.GetLabel(ctx, label.ID); !errors.Is(err, domain.ErrLabelNotFound) {
		t.Errorf("GetLabel after delete = %v, want ErrLabelNotFound", err)
	}
}
