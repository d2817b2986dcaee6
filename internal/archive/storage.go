// Package archive stores case artifacts for audit and export: analysis
// snapshots as JSON and rendered settlement letters as markdown, keyed by
// case and artifact id.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for case artifacts.
type StorageClient interface {
	PutAnalysis(ctx context.Context, caseID, analysisID string, data []byte) error
	GetAnalysis(ctx context.Context, caseID, analysisID string) ([]byte, error)
	PutLetter(ctx context.Context, caseID, letterID string, data []byte) error
	GetLetter(ctx context.Context, caseID, letterID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(caseID, kind, id, ext string) string {
	return filepath.Join(s.BaseDir, caseID, kind, id+ext)
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutAnalysis stores an analysis blob.
func (s *LocalStorage) PutAnalysis(ctx context.Context, caseID, analysisID string, data []byte) error {
	return s.put(s.path(caseID, "analyses", analysisID, ".json"), data)
}

// GetAnalysis retrieves an analysis blob.
func (s *LocalStorage) GetAnalysis(ctx context.Context, caseID, analysisID string) ([]byte, error) {
	return os.ReadFile(s.path(caseID, "analyses", analysisID, ".json"))
}

// PutLetter stores a rendered letter.
func (s *LocalStorage) PutLetter(ctx context.Context, caseID, letterID string, data []byte) error {
	return s.put(s.path(caseID, "letters", letterID, ".md"), data)
}

// GetLetter retrieves a rendered letter.
func (s *LocalStorage) GetLetter(ctx context.Context, caseID, letterID string) ([]byte, error) {
	return os.ReadFile(s.path(caseID, "letters", letterID, ".md"))
}
