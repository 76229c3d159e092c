package session

import (
	"context"
	"errors"
	"testing"

	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	snap := NewSnapshot("demo").Append(canvas.Element{Kind: canvas.KindRectangle, Width: 100, Height: 100})
	if err := store.Set(ctx, snap); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := store.Get(ctx, "demo")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != "demo" || len(got.Elements) != 1 {
		t.Errorf("Get() = %+v, want snapshot with one element", got)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	snap := NewSnapshot("demo").Append(canvas.Element{Kind: canvas.KindRectangle})
	if err := store.Set(ctx, snap); err != nil {
		t.Fatal(err)
	}

	// Mutating a retrieved snapshot must not leak into the store.
	got, _ := store.Get(ctx, "demo")
	got.Elements[0].X = 999

	again, _ := store.Get(ctx, "demo")
	if again.Elements[0].X == 999 {
		t.Error("mutation of a retrieved snapshot leaked into the store")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, NewSnapshot("demo")); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, "demo"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, "demo"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting a missing session is not an error.
	if err := store.Delete(ctx, "demo"); err != nil {
		t.Errorf("second Delete() error = %v", err)
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, id := range []string{"charlie", "alpha", "bravo"} {
		if err := store.Set(ctx, NewSnapshot(id)); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"alpha", "bravo", "charlie"}
	if len(ids) != len(want) {
		t.Fatalf("List() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q (sorted)", i, ids[i], want[i])
		}
	}
}

func TestSnapshotAppendDoesNotMutate(t *testing.T) {
	base := NewSnapshot("demo")
	grown := base.Append(canvas.Element{Kind: canvas.KindRectangle})

	if len(base.Elements) != 0 {
		t.Errorf("Append() mutated the receiver: %d elements", len(base.Elements))
	}
	if len(grown.Elements) != 1 {
		t.Errorf("Append() result has %d elements, want 1", len(grown.Elements))
	}
	if grown.CreatedAt != base.CreatedAt {
		t.Error("Append() should preserve CreatedAt")
	}
	if grown.UpdatedAt.Before(base.UpdatedAt) {
		t.Error("Append() should refresh UpdatedAt")
	}
}
