// Package storage persists uploaded resume files on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jobportel/job-board-api/internal/core/domain"
)

// ErrUnsupportedType is returned for uploads that are not PDF or Word documents.
var ErrUnsupportedType = errors.New("invalid file type, only PDF and DOCX are allowed")

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// ResumeStore writes uploaded resumes into a single directory, prefixing each
// filename with a timestamp so concurrent uploads of the same file never clash.
type ResumeStore struct {
	dir string
}

// NewResumeStore ensures dir exists and returns a store rooted there.
func NewResumeStore(dir string) (*ResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ResumeStore{dir: dir}, nil
}

// Save stores the upload and returns the generated filename. The original
// name is reduced to its base so a crafted name cannot escape the directory.
func (s *ResumeStore) Save(src io.Reader, originalName string) (string, error) {
	name := filepath.Base(originalName)
	if _, ok := allowedExtensions[strings.ToLower(filepath.Ext(name))]; !ok {
		return "", ErrUnsupportedType
	}

	stored := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), name)
	dst, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("create resume file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write resume file: %w", err)
	}
	return stored, nil
}

// Path resolves a stored filename to its absolute location, verifying the
// file still exists. Returns domain.ErrResumeNotFound when it does not.
func (s *ResumeStore) Path(stored string) (string, error) {
	if stored == "" {
		return "", domain.ErrResumeNotFound
	}

	path := filepath.Join(s.dir, filepath.Base(stored))
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.ErrResumeNotFound
		}
		return "", fmt.Errorf("stat resume file: %w", err)
	}
	return path, nil
}
