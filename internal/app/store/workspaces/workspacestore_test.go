package workspacestore_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	workspacestore "github.com/dalemusser/datahub/internal/app/store/workspaces"
	"github.com/dalemusser/datahub/internal/domain/models"
)

func TestStore_Create(t *testing.T) {
	store := workspacestore.New()
	ctx := context.Background()

	created, err := store.Create(ctx, models.Workspace{
		Name:       "Research",
		OwnerEmail: "alice@x.com",
		Members:    []string{"alice@x.com"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if created.Status != models.WorkspaceActive {
		t.Errorf("expected status 'active', got %q", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if len(created.Members) == 0 {
		t.Error("expected non-empty member set after creation")
	}
}

func TestStore_Create_OwnerAlwaysMember(t *testing.T) {
	store := workspacestore.New()
	ctx := context.Background()

	created, err := store.Create(ctx, models.Workspace{
		Name:       "Research",
		OwnerEmail: "owner@x.com",
		Members:    []string{"creator@x.com"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !created.IsMember("owner@x.com") {
		t.Error("expected owner to be a member")
	}
	if !created.IsMember("creator@x.com") {
		t.Error("expected creator to be a member")
	}
	if created.IsMember("stranger@x.com") {
		t.Error("expected stranger not to be a member")
	}
}

func TestStore_Create_DuplicateName(t *testing.T) {
	store := workspacestore.New()
	ctx := context.Background()

	if _, err := store.Create(ctx, models.Workspace{Name: "Research", OwnerEmail: "a@x.com"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, models.Workspace{Name: "Research", OwnerEmail: "b@x.com"})
	if !errors.Is(err, workspacestore.ErrDuplicateName) {
		t.Errorf("got %v, want ErrDuplicateName", err)
	}

	// The failed call must leave no partial state behind.
	if n := store.Count(ctx); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestStore_GetByID(t *testing.T) {
	store := workspacestore.New()
	ctx := context.Background()

	created, err := store.Create(ctx, models.Workspace{Name: "Research", OwnerEmail: "a@x.com"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Name != "Research" {
		t.Errorf("Name = %q, want %q", found.Name, "Research")
	}

	if _, err := store.GetByID(ctx, "missing"); !errors.Is(err, workspacestore.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	store := workspacestore.New()
	ctx := context.Background()

	created, err := store.Create(ctx, models.Workspace{Name: "Research", OwnerEmail: "a@x.com"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.Name != "Research" {
		t.Errorf("deleted Name = %q, want %q", deleted.Name, "Research")
	}

	if _, err := store.GetByID(ctx, created.ID); !errors.Is(err, workspacestore.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound after delete", err)
	}

	// The name is free for reuse after deletion.
	if _, err := store.Create(ctx, models.Workspace{Name: "Research", OwnerEmail: "b@x.com"}); err != nil {
		t.Errorf("expected name to be reusable after delete, got %v", err)
	}
}

func TestStore_Delete_NotFound(t *testing.T) {
	store := workspacestore.New()

	_, err := store.Delete(context.Background(), "missing")
	if !errors.Is(err, workspacestore.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestStore_Create_ConcurrentSameName(t *testing.T) {
	store := workspacestore.New()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.Create(ctx, models.Workspace{Name: "Race", OwnerEmail: "r@x.com"})
		}(i)
	}
	wg.Wait()

	var created int
	for _, err := range errs {
		if err == nil {
			created++
		} else if !errors.Is(err, workspacestore.ErrDuplicateName) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if created != 1 {
		t.Errorf("expected exactly one successful create, got %d", created)
	}
}
