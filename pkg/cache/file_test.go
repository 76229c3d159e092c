package cache

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func newTestCache(t *testing.T) Cache {
	t.Helper()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	return c
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("payload"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, ok, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() ok = false, want hit")
	}
	if !bytes.Equal(data, []byte("payload")) {
		t.Errorf("Get() = %q, want %q", data, "payload")
	}
}

func TestFileCacheMiss(t *testing.T) {
	_, ok, err := newTestCache(t).Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() ok = true for a missing key")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	if err := c.Set(ctx, "key", []byte("short-lived"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("Get() ok = true after expiry")
	}
}

func TestFileCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	if err := c.Set(ctx, "key", []byte("data"), 0); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("Get() ok = true after delete")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("second Delete() error = %v", err)
	}
}

func TestArtifactKey(t *testing.T) {
	sceneA := []byte(`{"elements":[]}`)
	sceneB := []byte(`{"elements":[{"kind":"rectangle"}]}`)

	keyA := ArtifactKey(sceneA, "svg")
	if !strings.HasPrefix(keyA, "artifact:svg:") {
		t.Errorf("ArtifactKey() = %q, want artifact:svg: prefix", keyA)
	}

	// Same content, same key; different content or format, different key.
	if keyA != ArtifactKey(sceneA, "svg") {
		t.Error("ArtifactKey() not stable for identical input")
	}
	if keyA == ArtifactKey(sceneB, "svg") {
		t.Error("ArtifactKey() identical for different scenes")
	}
	if keyA == ArtifactKey(sceneA, "png") {
		t.Error("ArtifactKey() identical for different formats")
	}
}

func TestNullCacheAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "key", []byte("data"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("null cache should never hit")
	}
}
