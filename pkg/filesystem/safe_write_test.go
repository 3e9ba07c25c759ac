package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSafeWriteCreatesAndReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "tasks.md")

	if err := SafeWrite(path, []byte("one"), 0644); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := SafeWrite(path, []byte("two"), 0600); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file, got %v", err)
	}
	if string(data) != "two" {
		t.Errorf("expected replaced content, got %q", string(data))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected temp files to be gone, found %d entries", len(entries))
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	ok, err := Exists(dir)
	if err != nil || !ok {
		t.Errorf("expected %s to exist, got %v, %v", dir, ok, err)
	}
	ok, err = Exists(filepath.Join(dir, "missing"))
	if err != nil || ok {
		t.Errorf("expected missing path, got %v, %v", ok, err)
	}
}
