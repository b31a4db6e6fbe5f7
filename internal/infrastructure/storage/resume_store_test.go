package storage

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/jobportel/job-board-api/internal/core/domain"
)

func TestResumeStore_SaveAndPath(t *testing.T) {
	store, err := NewResumeStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	stored, err := store.Save(strings.NewReader("%PDF-fake"), "cv.pdf")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(stored, "-cv.pdf") {
		t.Fatalf("expected timestamped name ending in -cv.pdf, got %q", stored)
	}

	path, err := store.Path(stored)
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "%PDF-fake" {
		t.Fatalf("content mismatch: %q", data)
	}
}

func TestResumeStore_RejectsUnsupportedType(t *testing.T) {
	store, err := NewResumeStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Save(strings.NewReader("exe"), "malware.exe"); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestResumeStore_PathMissingFile(t *testing.T) {
	store, err := NewResumeStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Path("nope.pdf"); !errors.Is(err, domain.ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
	if _, err := store.Path(""); !errors.Is(err, domain.ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound for empty name, got %v", err)
	}
}

func TestResumeStore_StripsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewResumeStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	stored, err := store.Save(strings.NewReader("doc"), "../../etc/passwd.pdf")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	path, err := store.Path(stored)
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Fatalf("file escaped upload dir: %q", path)
	}
}
