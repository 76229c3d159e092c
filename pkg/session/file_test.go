package session

import (
	"context"
	"errors"
	"testing"

	"github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return store
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	snap := NewSnapshot("demo").Append(
		canvas.Element{Kind: canvas.KindRectangle, X: 150, Y: 150, Width: 100, Height: 100},
		canvas.Element{Kind: canvas.KindText, Text: "label"},
	)
	if err := store.Set(ctx, snap); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := store.Get(ctx, "demo")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.Elements) != 2 {
		t.Fatalf("Get() elements = %d, want 2", len(got.Elements))
	}
	if got.Elements[1].Text != "label" {
		t.Errorf("Elements[1].Text = %q, want \"label\"", got.Elements[1].Text)
	}
}

func TestFileStoreGetMissing(t *testing.T) {
	store := newTestFileStore(t)
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreRejectsUnsafeIDs(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	for _, id := range []string{"", "../escape", "a/b", "a\\b"} {
		if _, err := store.Get(ctx, id); err == nil {
			t.Errorf("Get(%q) should reject unsafe session ID", id)
		}
		if err := store.Set(ctx, NewSnapshot(id)); err == nil {
			t.Errorf("Set(%q) should reject unsafe session ID", id)
		}
	}
}

func TestFileStoreDeleteAndList(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	for _, id := range []string{"beta", "alpha"} {
		if err := store.Set(ctx, NewSnapshot(id)); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(ids) != 2 || ids[0] != "alpha" || ids[1] != "beta" {
		t.Errorf("List() = %v, want [alpha beta]", ids)
	}

	if err := store.Delete(ctx, "alpha"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, "alpha"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting a missing session is not an error.
	if err := store.Delete(ctx, "alpha"); err != nil {
		t.Errorf("second Delete() error = %v", err)
	}
}
