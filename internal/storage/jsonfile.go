package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/themonkeyd/devmeetingbot/internal/domain/entity"
)

// fileStore persists the rotation state as a single JSON document. The file
// holds the exact three-field State shape, so data written by earlier
// deployments keeps loading unchanged.
type fileStore struct {
	path string
}

func newFileStore(path string) (*fileStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("data file path is required for the json driver")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return &fileStore{path: path}, nil
}

// Load reads the state file. A missing file yields the default empty state;
// any other failure (permissions, corrupt JSON) is an error so startup can
// fail fast instead of silently shadowing existing data.
func (s *fileStore) Load() (*entity.State, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entity.NewState(), nil
		}
		return nil, fmt.Errorf("failed to open state file: %w", err)
	}
	defer f.Close()

	state := entity.NewState()
	if err := json.NewDecoder(f).Decode(state); err != nil {
		return nil, fmt.Errorf("failed to decode state file %s: %w", s.path, err)
	}
	if state.History == nil {
		state.History = map[string]string{}
	}
	if state.RandomTours == nil {
		state.RandomTours = map[string]string{}
	}

	return state, nil
}

// Save writes the full state to a temp file and renames it over the target,
// so readers never observe a partially-written file.
func (s *fileStore) Save(state *entity.State) error {
	tmp := s.path + ".tmp"

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(state); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to close temp state file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

func (s *fileStore) Close() error {
	return nil
}
