package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if v, err := m.Get(ctx, "fnfHighScore"); err != nil || v != 0 {
		t.Fatalf("expected missing key to read 0, got %d %v", v, err)
	}
	if err := m.Set(ctx, "fnfHighScore", 12); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Get(ctx, "fnfHighScore"); v != 12 {
		t.Errorf("expected 12, got %d", v)
	}
}

func TestSQLiteStorePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scores.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if v, err := s.Get(ctx, "fnfHighScore"); err != nil || v != 0 {
		t.Fatalf("expected empty store, got %d %v", v, err)
	}
	if err := s.Set(ctx, "fnfHighScore", 7); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "fnfHighScore", 31); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	v, err := reopened.Get(ctx, "fnfHighScore")
	if err != nil {
		t.Fatal(err)
	}
	if v != 31 {
		t.Errorf("expected 31 after reopen, got %d", v)
	}
}

func TestSQLiteKeysIndependent(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	_ = s.Set(ctx, "a", 1)
	_ = s.Set(ctx, "b", 2)
	if v, _ := s.Get(ctx, "a"); v != 1 {
		t.Errorf("expected a=1, got %d", v)
	}
	if v, _ := s.Get(ctx, "b"); v != 2 {
		t.Errorf("expected b=2, got %d", v)
	}
}
