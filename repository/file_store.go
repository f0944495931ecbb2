package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"budgetwise/domain"
)

// FileStore persists the budget state as a JSON document on disk. Writes go
// through a temp file and rename so a crash mid-write never corrupts the
// previous state.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() (domain.BudgetState, error) {
	var state domain.BudgetState
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("read state file: %w", err)
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.BudgetState{}, fmt.Errorf("decode state file: %w", err)
	}
	return state, nil
}

func (f *FileStore) Save(state domain.BudgetState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// Backup writes a timestamped copy of the current state document into dir and
// returns the backup path.
func (f *FileStore) Backup(dir string) (string, error) {
	state, err := f.Load()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	doc := struct {
		domain.BudgetState
		Version string `json:"version"`
		Date    string `json:"date"`
	}{
		BudgetState: state,
		Version:     "1.0",
		Date:        time.Now().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode backup: %w", err)
	}
	name := fmt.Sprintf("budgetwise_backup_%s.json", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}
