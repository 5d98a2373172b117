package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kubepick/kubepick/internal/domain"
	"github.com/kubepick/kubepick/internal/history/migrations"
	"github.com/kubepick/kubepick/internal/paths"
)

// Store persists dispatch records in a SQLite database.
// It implements the domain.HistoryStore interface.
type Store struct {
	db   *sql.DB
	path string
}

// New opens the history database at the given path, creating it if
// needed, and runs migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing database connection.
// Useful for testing with pre-configured databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, path: ""}
}

// DBPath returns the default location of the history database.
func DBPath() string {
	return filepath.Join(paths.AppLocalDataDir(), "history.db")
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and
// its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Record appends one dispatch record. A missing ID or CreatedAt is
// filled in before the insert.
func (s *Store) Record(rec domain.DispatchRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO dispatches
		 (id, created_at, namespace, resource_type, accept_key, action, selected)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.CreatedAt.Format(time.RFC3339),
		rec.Namespace,
		rec.ResourceType,
		rec.AcceptKey,
		rec.Action,
		rec.Selected,
	)
	return err
}

// Recent returns up to limit records, newest first. A non-positive
// limit returns everything.
func (s *Store) Recent(limit int) ([]domain.DispatchRecord, error) {
	// rowid breaks ties between records sharing a timestamp second.
	query := `
		SELECT id, created_at, namespace, resource_type, accept_key, action, selected
		FROM dispatches
		ORDER BY created_at DESC, rowid DESC
	`

	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DispatchRecord

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

// scanRecord scans a single row into a domain.DispatchRecord.
func scanRecord(rows *sql.Rows) (domain.DispatchRecord, error) {
	var (
		rec domain.DispatchRecord
		ts  string
	)

	if err := rows.Scan(
		&rec.ID,
		&ts,
		&rec.Namespace,
		&rec.ResourceType,
		&rec.AcceptKey,
		&rec.Action,
		&rec.Selected,
	); err != nil {
		return domain.DispatchRecord{}, err
	}

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return domain.DispatchRecord{}, err
	}
	rec.CreatedAt = t

	return rec, nil
}

// Verify Store implements domain.HistoryStore
var _ domain.HistoryStore = (*Store)(nil)

// Nop discards records and reports an empty history. It stands in for
// the real store when recording is disabled.
type Nop struct{}

func (Nop) Record(domain.DispatchRecord) error          { return nil }
func (Nop) Recent(int) ([]domain.DispatchRecord, error) { return nil, nil }
func (Nop) Close() error                                { return nil }

var _ domain.HistoryStore = Nop{}
