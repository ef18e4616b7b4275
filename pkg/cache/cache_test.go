package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	key := ArtifactKey("stylehash", "2x2", "svg", 0)
	want := []byte("<svg>figure</svg>")

	if _, ok, _ := c.Get(ctx, key); ok {
		t.Fatal("Get before Set reported a hit")
	}

	if err := c.Set(ctx, key, want, 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get() = ok=%v, err=%v, want hit", ok, err)
	}
	if string(got) != string(want) {
		t.Errorf("Get() = %q, want %q", got, want)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "key", []byte("data"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("Get after expiration reported a hit")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "key", []byte("data"), 0); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("Get after Delete reported a hit")
	}

	// Deleting a missing key is fine.
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete(missing) error = %v, want nil", err)
	}
}

func TestNullCacheNeverHits(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("data"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("NullCache reported a hit")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestArtifactKey(t *testing.T) {
	base := ArtifactKey("hash", "2x2", "png", 50)

	if !strings.HasPrefix(base, "artifact:") {
		t.Errorf("key %q missing artifact prefix", base)
	}

	if again := ArtifactKey("hash", "2x2", "png", 50); again != base {
		t.Error("same inputs produced different keys")
	}

	variants := []string{
		ArtifactKey("other", "2x2", "png", 50),
		ArtifactKey("hash", "2x1", "png", 50),
		ArtifactKey("hash", "2x2", "svg", 50),
		ArtifactKey("hash", "2x2", "png", 300),
	}
	for _, v := range variants {
		if v == base {
			t.Errorf("variant key collided with base: %q", v)
		}
	}
}

func TestHashStable(t *testing.T) {
	a := Hash([]byte("style"))
	b := Hash([]byte("style"))
	if a != b {
		t.Error("Hash not deterministic")
	}
	if len(a) != 64 {
		t.Errorf("Hash length = %d, want 64", len(a))
	}
	if Hash([]byte("other")) == a {
		t.Error("distinct inputs hashed equal")
	}
}
