package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestMigrationsSource(t *testing.T) {
	dir := t.TempDir()

	got, err := migrationsSource(dir)
	if err != nil {
		t.Fatalf("migrationsSource error: %v", err)
	}
	want := "file://" + filepath.ToSlash(dir)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMigrationsSourceMissingDir(t *testing.T) {
	_, err := migrationsSource(filepath.Join(t.TempDir(), "missing"))
	if err == nil || !strings.Contains(err.Error(), "migrations directory") {
		t.Fatalf("expected missing directory error, got %v", err)
	}
}

func TestRepositoryMigrationsExist(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("..", "..", "migrations", "*.up.sql"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("expected at least one up migration")
	}
}
