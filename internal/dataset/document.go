package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrNotFound marks a missing input document. Callers treat it as a
// precondition fault: report and exit before producing any output.
var ErrNotFound = errors.New("dataset: document not found")

// ErrMalformed marks an input document that exists but does not parse.
var ErrMalformed = errors.New("dataset: malformed document")

// ErrLocked marks a write that lost the single-writer lock to another
// process.
var ErrLocked = errors.New("dataset: document locked by another writer")

// Load reads an entire diner document into memory.
func Load(path string) (*Document, error) {
	var doc Document
	if err := ReadJSON(path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReadJSON reads any whole-document JSON artifact.
func ReadJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("read document %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return nil
}

// WriteJSON serializes a whole document (two-space indent, trailing newline)
// under a sibling .lock file. The lock makes the single-writer assumption
// explicit; contention is a persistence fault, not a wait.
func WriteJSON(path string, doc any) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create document directory %q: %w", dir, err)
		}
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire write lock for %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", path, err)
	}
	return nil
}
