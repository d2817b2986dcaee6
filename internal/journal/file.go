package journal

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// maxEntryBytes caps a single serialized journal line on read.
const maxEntryBytes = 4 * 1024 * 1024

// FileStore keeps a case journal in a local JSONL file, one entry per
// line. Used by the CLI when no service is configured. Appends are
// O_APPEND writes so the file itself is append-only.
type FileStore struct {
	path string
}

// NewFileStore creates a journal store at the given file path. The parent
// directory is created on first append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Append(_ context.Context, e Entry) (Entry, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return Entry{}, fmt.Errorf("create journal directory: %w", err)
	}

	e.ID = uuid.NewString()
	e.Timestamp = time.Now().UTC()

	line, err := json.Marshal(e)
	if err != nil {
		return Entry{}, fmt.Errorf("encode journal entry: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Entry{}, fmt.Errorf("open journal file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return Entry{}, fmt.Errorf("write journal entry: %w", err)
	}
	return e, nil
}

func (s *FileStore) List(_ context.Context, caseID string) ([]Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open journal file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	// Long free-text notes overflow the default 64KiB line limit.
	scanner.Buffer(make([]byte, 0, 64*1024), maxEntryBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("decode journal entry: %w", err)
		}
		if caseID == "" || e.CaseID == caseID {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read journal file: %w", err)
	}
	return entries, nil
}
