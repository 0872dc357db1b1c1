package lru_test

import (
	"testing"

	. "github.com/veloper/agraph/lru"
)

func TestCacheGetPut(t *testing.T) {
	c := New[string, int](2)

	if _, ok := c.Get("a"); ok {
		t.Fatalf("Get(a) on empty cache = ok, want miss")
	}

	c.Put("a", 1)
	if got, ok := c.Get("a"); !ok || got != 1 {
		t.Errorf("Get(a) = (%d, %v), want (1, true)", got, ok)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a") // touch a, making b the least recently used
	c.Put("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Errorf("Get(b) = ok, want evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Errorf("Get(a) = miss, want hit (recently touched)")
	}
	if _, ok := c.Get("c"); !ok {
		t.Errorf("Get(c) = miss, want hit (just inserted)")
	}
}

func TestCacheClearWithFilter(t *testing.T) {
	c := New[string, int](10)
	c.Put("vertex:a", 1)
	c.Put("vertex:b", 2)
	c.Put("edge:a", 3)

	c.Clear(func(k string) bool { return len(k) >= 6 && k[:6] == "vertex" })

	if _, ok := c.Get("vertex:a"); ok {
		t.Errorf("vertex:a survived a filtered Clear")
	}
	if _, ok := c.Get("edge:a"); !ok {
		t.Errorf("edge:a was cleared despite not matching the filter")
	}
}

func TestCacheClearNilFilterClearsEverything(t *testing.T) {
	c := New[string, int](10)
	c.Put("a", 1)
	c.Put("b", 2)

	c.Clear(nil)

	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear(nil), want 0", c.Len())
	}
}
