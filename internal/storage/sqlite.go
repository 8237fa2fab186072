package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"tagdex/internal/model"
)

const currentSchemaVersion = 1

// SQLiteStorage implements Storage using a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *SQLiteStorage) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS tags (
			id INTEGER PRIMARY KEY NOT NULL,
			name TEXT NOT NULL,
			shorthand TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			disambiguation_id INTEGER,
			FOREIGN KEY (disambiguation_id) REFERENCES tags(id) ON DELETE SET NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tags_name ON tags(name);

		CREATE TABLE IF NOT EXISTS tag_parents (
			child_id INTEGER NOT NULL,
			parent_id INTEGER NOT NULL,
			PRIMARY KEY (child_id, parent_id),
			FOREIGN KEY (child_id) REFERENCES tags(id) ON DELETE CASCADE,
			FOREIGN KEY (parent_id) REFERENCES tags(id) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS tag_aliases (
			id INTEGER PRIMARY KEY NOT NULL,
			tag_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_tag_aliases_tag_id ON tag_aliases(tag_id);

		CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY NOT NULL,
			title TEXT NOT NULL,
			path TEXT NOT NULL DEFAULT '',
			tag_ids TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL
		);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the store from the SQLite database.
func (s *SQLiteStorage) Load() (*model.Store, error) {
	store := &model.Store{
		Tags:    []model.Tag{},
		Aliases: []model.Alias{},
		Entries: []model.Entry{},
	}

	rows, err := s.db.Query(`
		SELECT id, name, shorthand, color, disambiguation_id
		FROM tags
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t model.Tag
		var color string
		var disambiguationID sql.NullInt64

		if err := rows.Scan(&t.ID, &t.Name, &t.Shorthand, &color, &disambiguationID); err != nil {
			return nil, err
		}

		t.Color = model.TagColor(color)
		if disambiguationID.Valid {
			id := int(disambiguationID.Int64)
			t.DisambiguationID = &id
		}

		store.Tags = append(store.Tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Attach parent relations
	rows, err = s.db.Query("SELECT child_id, parent_id FROM tag_parents ORDER BY child_id, parent_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var childID, parentID int
		if err := rows.Scan(&childID, &parentID); err != nil {
			return nil, err
		}
		if tag := store.GetTagByID(childID); tag != nil {
			tag.ParentIDs = append(tag.ParentIDs, parentID)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query("SELECT id, tag_id, name FROM tag_aliases ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a model.Alias
		if err := rows.Scan(&a.ID, &a.TagID, &a.Name); err != nil {
			return nil, err
		}
		store.Aliases = append(store.Aliases, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query(`
		SELECT id, title, path, tag_ids, created_at
		FROM entries
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e model.Entry
		var tagIDsJSON string
		var createdAtStr string

		if err := rows.Scan(&e.ID, &e.Title, &e.Path, &tagIDsJSON, &createdAtStr); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(tagIDsJSON), &e.TagIDs); err != nil {
			e.TagIDs = []int{}
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)

		store.Entries = append(store.Entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// A fresh database gets the built-in tags
	if len(store.Tags) == 0 {
		store.Tags = model.NewStore().Tags
	}

	normalize(store)
	return store, nil
}

// Save writes the store to the SQLite database.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(store *model.Store) error {
	// Parent and disambiguation rows may reference tags that haven't
	// been inserted yet. PRAGMA foreign_keys cannot be changed inside
	// a transaction.
	if _, err := s.db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		s.db.Exec("PRAGMA foreign_keys = ON")
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"tag_aliases", "tag_parents", "entries", "tags"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	tagStmt, err := tx.Prepare(`
		INSERT INTO tags (id, name, shorthand, color, disambiguation_id)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer tagStmt.Close()

	parentStmt, err := tx.Prepare(`
		INSERT INTO tag_parents (child_id, parent_id) VALUES (?, ?)
	`)
	if err != nil {
		return err
	}
	defer parentStmt.Close()

	for _, t := range store.Tags {
		var disambiguationID *int
		if t.DisambiguationID != nil {
			disambiguationID = t.DisambiguationID
		}
		if _, err := tagStmt.Exec(t.ID, t.Name, t.Shorthand, string(t.Color), disambiguationID); err != nil {
			return err
		}
		for _, parentID := range t.ParentIDs {
			if _, err := parentStmt.Exec(t.ID, parentID); err != nil {
				return err
			}
		}
	}

	aliasStmt, err := tx.Prepare(`
		INSERT INTO tag_aliases (id, tag_id, name) VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer aliasStmt.Close()

	for _, a := range store.Aliases {
		if _, err := aliasStmt.Exec(a.ID, a.TagID, a.Name); err != nil {
			return err
		}
	}

	entryStmt, err := tx.Prepare(`
		INSERT INTO entries (id, title, path, tag_ids, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer entryStmt.Close()

	for _, e := range store.Entries {
		tagIDsJSON, _ := json.Marshal(e.TagIDs)
		if e.TagIDs == nil {
			tagIDsJSON = []byte("[]")
		}
		createdAt := e.CreatedAt.Format(time.RFC3339)

		if _, err := entryStmt.Exec(e.ID, e.Title, e.Path, string(tagIDsJSON), createdAt); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	_, _ = s.db.Exec("PRAGMA foreign_keys = ON")

	return nil
}

// DefaultSQLitePath returns the default database path: ~/.config/tagdex/library.db
func DefaultSQLitePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tagdex", "library.db"), nil
}
