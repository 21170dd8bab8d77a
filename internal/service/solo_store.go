package service

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"kelaskata/internal/models"
)

// SoloStore persists the local self-study drill between runs
type SoloStore interface {
	Load() (*models.SoloState, error)
	Save(state *models.SoloState) error
	Clear() error
}

// FileSoloStore keeps the drill state in a single JSON file. A missing or
// unreadable file is treated as no saved drill, never as a fatal error.
type FileSoloStore struct {
	path string
}

// NewFileSoloStore creates a file-backed solo store
func NewFileSoloStore(path string) *FileSoloStore {
	return &FileSoloStore{path: path}
}

// Load reads the saved drill state. Returns nil with no error when there
// is nothing to resume.
func (f *FileSoloStore) Load() (*models.SoloState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var state models.SoloState
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt state file means a fresh start, not a crash.
		log.Printf("Discarding unreadable drill state %s: %v", f.path, err)
		return nil, nil
	}
	if len(state.ItemOrder) == 0 {
		return nil, nil
	}

	return &state, nil
}

// Save writes the drill state, creating the parent directory if needed.
// The write goes through a temp file so a crash cannot leave a half
// written state behind.
func (f *FileSoloStore) Save(state *models.SoloState) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Clear removes the saved drill state
func (f *FileSoloStore) Clear() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
