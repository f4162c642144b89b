// Package pack stores collections of map documents in a single SQLite file.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package pack

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/veiled-path/internal/mapdoc"
)

// ErrNotFound is returned when a pack has no map with the requested name.
var ErrNotFound = errors.New("pack: map not found")

// Store manages a level pack database.
type Store struct {
	db *sql.DB
}

// Entry describes one map stored in a pack.
type Entry struct {
	ID        int64
	Name      string // Lookup key, usually the source file stem
	Title     string // Descriptor name
	Size      int
	Walls     int
	Doors     int
	Keys      int
	CreatedAt time.Time
}

// Open creates or opens a pack at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("pack: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("pack: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("pack: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pack: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pack: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS maps (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			size INTEGER NOT NULL,
			walls INTEGER NOT NULL DEFAULT 0,
			doors INTEGER NOT NULL DEFAULT 0,
			keys INTEGER NOT NULL DEFAULT 0,
			source BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Add validates a map document and stores it under name, replacing any
// map with the same name.
func (s *Store) Add(name string, source []byte) (int64, error) {
	if name == "" {
		return 0, errors.New("pack: map name is required")
	}
	d, err := mapdoc.Parse(source)
	if err != nil {
		return 0, fmt.Errorf("pack: map %s: %w", name, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO maps (name, title, size, walls, doors, keys, source)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			title = excluded.title,
			size = excluded.size,
			walls = excluded.walls,
			doors = excluded.doors,
			keys = excluded.keys,
			source = excluded.source`,
		name, d.Name, d.Size, len(d.Walls), len(d.Doors), len(d.Keys), source,
	)
	if err != nil {
		return 0, fmt.Errorf("pack: failed to save map %s: %w", name, err)
	}

	var id int64
	if err := s.db.QueryRow(`SELECT id FROM maps WHERE name = ?`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("pack: failed to read back map %s: %w", name, err)
	}
	return id, nil
}

// List returns every map in the pack ordered by name.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, name, title, size, walls, doors, keys, created_at
		FROM maps
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("pack: failed to query maps: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Title, &e.Size, &e.Walls, &e.Doors, &e.Keys, &createdAt); err != nil {
			return nil, fmt.Errorf("pack: failed to scan map: %w", err)
		}

		// The driver may return the datetime as time.Time or as text
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pack: error iterating maps: %w", err)
	}

	return entries, nil
}

// Source returns the stored document for name.
func (s *Store) Source(name string) ([]byte, error) {
	var source []byte
	err := s.db.QueryRow(`SELECT source FROM maps WHERE name = ?`, name).Scan(&source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("pack: failed to read map %s: %w", name, err)
	}
	return source, nil
}

// Load parses the map stored under name.
func (s *Store) Load(name string) (mapdoc.Descriptor, error) {
	source, err := s.Source(name)
	if err != nil {
		return mapdoc.Descriptor{}, err
	}
	return mapdoc.Parse(source)
}

// Remove deletes the map stored under name.
func (s *Store) Remove(name string) error {
	res, err := s.db.Exec(`DELETE FROM maps WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("pack: failed to delete map %s: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// Count returns the number of maps in the pack.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM maps`).Scan(&n); err != nil {
		return 0, fmt.Errorf("pack: failed to count maps: %w", err)
	}
	return n, nil
}
