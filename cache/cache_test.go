package cache

import (
	"path/filepath"
	"reflect"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCompileCachedMissThenHit(t *testing.T) {
	c := openTestCache(t)

	first, err := c.CompileCached("1 + 2;")
	if err != nil {
		t.Fatalf("CompileCached (miss): %v", err)
	}

	second, err := c.CompileCached("1 + 2;")
	if err != nil {
		t.Fatalf("CompileCached (hit): %v", err)
	}

	if !reflect.DeepEqual(first.Codes, second.Codes) || !reflect.DeepEqual(first.Syms, second.Syms) || first.NRegs != second.NRegs {
		t.Errorf("cached result = %+v, want %+v", second, first)
	}
}

func TestCompileCachedDoesNotStoreFailures(t *testing.T) {
	c := openTestCache(t)

	if _, err := c.CompileCached("1 +"); err == nil {
		t.Fatal("CompileCached(\"1 +\") succeeded, want parse failure")
	}

	var count int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM instructions`).Scan(&count); err != nil {
		t.Fatalf("querying instructions table: %v", err)
	}
	if count != 0 {
		t.Errorf("instructions table has %d rows after a failed compile, want 0", count)
	}
}

func TestCompileCachedDistinctSourcesDistinctEntries(t *testing.T) {
	c := openTestCache(t)

	a, err := c.CompileCached("1;")
	if err != nil {
		t.Fatalf("CompileCached: %v", err)
	}
	b, err := c.CompileCached("2;")
	if err != nil {
		t.Fatalf("CompileCached: %v", err)
	}
	if reflect.DeepEqual(a.Codes, b.Codes) {
		t.Error("distinct sources produced identical cached code streams")
	}
}

func TestDigestIsStableAndContentAddressed(t *testing.T) {
	if Digest("a") == Digest("b") {
		t.Error("Digest collided for distinct inputs")
	}
	if Digest("same") != Digest("same") {
		t.Error("Digest is not stable for identical input")
	}
}
