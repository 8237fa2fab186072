package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"tagdex/internal/model"
)

// Storage defines the interface for persisting the tag library.
type Storage interface {
	Load() (*model.Store, error)
	Save(store *model.Store) error
}

// JSONStorage implements Storage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the store from the JSON file.
// Returns a freshly seeded store if the file doesn't exist.
func (s *JSONStorage) Load() (*model.Store, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewStore(), nil
		}
		return nil, err
	}

	var store model.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, err
	}

	normalize(&store)
	return &store, nil
}

// Save writes the store to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(store *model.Store) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// normalize repairs nil slices and stale ID counters after loading.
func normalize(store *model.Store) {
	if store.Tags == nil {
		store.Tags = []model.Tag{}
	}
	if store.Aliases == nil {
		store.Aliases = []model.Alias{}
	}
	if store.Entries == nil {
		store.Entries = []model.Entry{}
	}

	for _, t := range store.Tags {
		if t.ID >= store.NextTagID {
			store.NextTagID = t.ID + 1
		}
	}
	if store.NextTagID < model.ReservedTagEnd {
		store.NextTagID = model.ReservedTagEnd
	}

	for _, a := range store.Aliases {
		if a.ID >= store.NextAliasID {
			store.NextAliasID = a.ID + 1
		}
	}
	if store.NextAliasID < 1 {
		store.NextAliasID = 1
	}
}

// DefaultJSONPath returns the default library path: ~/.config/tagdex/library.json
func DefaultJSONPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tagdex", "library.json"), nil
}

// OpenStorage opens the appropriate storage backend for the given
// database path. An empty path uses the defaults: SQLite if the
// database file exists, JSON otherwise. An explicit .db/.sqlite path
// forces SQLite.
func OpenStorage(dbPath string) (Storage, error) {
	if dbPath != "" {
		if isSQLitePath(dbPath) {
			return NewSQLiteStorage(dbPath)
		}
		return NewJSONStorage(dbPath), nil
	}

	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}

	jsonPath, err := DefaultJSONPath()
	if err != nil {
		return nil, err
	}
	return NewJSONStorage(jsonPath), nil
}

func isSQLitePath(path string) bool {
	switch filepath.Ext(path) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}
