package migrations_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kubepick/kubepick/internal/history/migrations"
)

func TestLoad(t *testing.T) {
	all, err := migrations.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(all) == 0 {
		t.Fatal("expected at least 1 migration")
	}

	for i := 1; i < len(all); i++ {
		if all[i].Version <= all[i-1].Version {
			t.Errorf("migration %d (v%d) not after %d (v%d)",
				i, all[i].Version, i-1, all[i-1].Version)
		}
	}
}

func TestRunIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := migrations.Run(db); err != nil {
		t.Fatalf("first run: %v", err)
	}

	v1, err := migrations.CurrentVersion(db)
	if err != nil {
		t.Fatalf("get version: %v", err)
	}
	if v1 == 0 {
		t.Fatal("expected a nonzero version after run")
	}

	if err := migrations.Run(db); err != nil {
		t.Fatalf("second run: %v", err)
	}

	v2, err := migrations.CurrentVersion(db)
	if err != nil {
		t.Fatalf("get version: %v", err)
	}

	if v1 != v2 {
		t.Errorf("version changed: %d -> %d", v1, v2)
	}
}

func TestTablesCreated(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := migrations.Run(db); err != nil {
		t.Fatalf("run: %v", err)
	}

	tables := []string{"schema_migrations", "dispatches"}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err == sql.ErrNoRows {
			t.Errorf("table %s not created", table)
		} else if err != nil {
			t.Errorf("check %s: %v", table, err)
		}
	}
}
