package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStoragePutGetAnalysis(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"case_name":"Meridian v Blackwood"}`)
	if err := s.PutAnalysis(ctx, "case1", "run1", data); err != nil {
		t.Fatalf("PutAnalysis: %v", err)
	}

	got, err := s.GetAnalysis(ctx, "case1", "run1")
	if err != nil {
		t.Fatalf("GetAnalysis: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetAnalysis = %q, want %q", got, data)
	}

	// Verify file path layout
	expectedPath := filepath.Join(dir, "case1", "analyses", "run1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStoragePutGetLetter(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte("WITHOUT PREJUDICE SAVE AS TO COSTS\n")
	if err := s.PutLetter(ctx, "case1", "letter1", data); err != nil {
		t.Fatalf("PutLetter: %v", err)
	}

	got, err := s.GetLetter(ctx, "case1", "letter1")
	if err != nil {
		t.Fatalf("GetLetter: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetLetter = %q, want %q", got, data)
	}

	expectedPath := filepath.Join(dir, "case1", "letters", "letter1.md")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStorageGetNotFound(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	_, err := s.GetAnalysis(ctx, "case1", "nonexistent")
	if err == nil {
		t.Error("expected error for nonexistent analysis")
	}
}
