package realizecache

import (
	"testing"

	"github.com/google/uuid"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_PutThenGet(t *testing.T) {
	c := openTestCache(t)
	session := uuid.New()

	if err := c.Put("List[Int]", session); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Put("List[Int]", uuid.New()); err != nil {
		t.Fatalf("Put: %v", err)
	}

	meta, ok, err := c.Get("List[Int]")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("Get should find the key after two Put calls")
	}
	if meta.SourceCount != 2 {
		t.Errorf("SourceCount = %d, want 2", meta.SourceCount)
	}
	if meta.SessionID != session {
		t.Errorf("SessionID = %v, want the first Put's session %v", meta.SessionID, session)
	}
}

func TestCache_GetMiss(t *testing.T) {
	c := openTestCache(t)
	_, ok, err := c.Get("nonexistent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Errorf("Get should report a miss for a key never put")
	}
}
