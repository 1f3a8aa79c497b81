// Package sqlite persists the project collection in an embedded SQLite
// database using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/storage/record"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain"
	"github.com/jsamuelsen11/gantt-dashboard/internal/domain/project"
	"github.com/jsamuelsen11/gantt-dashboard/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	name TEXT PRIMARY KEY,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS stages (
	project TEXT NOT NULL REFERENCES projects(name) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	color TEXT NOT NULL,
	PRIMARY KEY (project, name)
);
CREATE TABLE IF NOT EXISTS tasks (
	project TEXT NOT NULL REFERENCES projects(name) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	start TEXT NOT NULL,
	finish TEXT NOT NULL,
	stage TEXT NOT NULL,
	color TEXT NOT NULL,
	PRIMARY KEY (project, position)
);
`

// Store implements ports.ProjectStore on a SQLite database. Save replaces
// every row in one transaction so the whole-collection contract holds.
type Store struct {
	db   *sql.DB
	path string
}

var _ ports.ProjectStore = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &domain.StorageError{Op: "open", Err: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &domain.StorageError{Op: "open", Err: fmt.Errorf("open sqlite: %w", err)}
	}
	// One connection keeps the pragmas below in effect for every statement.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `
		PRAGMA foreign_keys = ON;
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		_ = db.Close()
		return nil, &domain.StorageError{Op: "open", Err: fmt.Errorf("set pragmas: %w", err)}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, &domain.StorageError{Op: "open", Err: fmt.Errorf("apply schema: %w", err)}
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "sqlite" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &domain.StorageError{Op: "ping", Err: err}
	}
	return nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads every project with its stages and tasks in stored order.
func (s *Store) Load(ctx context.Context) (map[string]project.Project, error) {
	c, err := s.loadRecords(ctx)
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Err: err}
	}

	projects, err := record.ToDomain(c)
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Err: err}
	}
	return projects, nil
}

func (s *Store) loadRecords(ctx context.Context) (record.Collection, error) {
	c := record.Collection{}

	rows, err := s.db.QueryContext(ctx, `SELECT name FROM projects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		c[name] = record.Project{Tasks: []record.Task{}, Stages: record.StageMap{}}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	stageRows, err := s.db.QueryContext(ctx,
		`SELECT project, name, color FROM stages ORDER BY project, position`)
	if err != nil {
		return nil, fmt.Errorf("query stages: %w", err)
	}
	defer func() { _ = stageRows.Close() }()
	for stageRows.Next() {
		var owner string
		var e record.StageEntry
		if err := stageRows.Scan(&owner, &e.Name, &e.Color); err != nil {
			return nil, fmt.Errorf("scan stage: %w", err)
		}
		p := c[owner]
		p.Stages = append(p.Stages, e)
		c[owner] = p
	}
	if err := stageRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stages: %w", err)
	}

	taskRows, err := s.db.QueryContext(ctx,
		`SELECT project, name, start, finish, stage, color FROM tasks ORDER BY project, position`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = taskRows.Close() }()
	for taskRows.Next() {
		var owner string
		var t record.Task
		if err := taskRows.Scan(&owner, &t.Task, &t.Start, &t.Finish, &t.Stage, &t.Color); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		p := c[owner]
		p.Tasks = append(p.Tasks, t)
		c[owner] = p
	}
	if err := taskRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return c, nil
}

// Save replaces the stored collection with projects.
func (s *Store) Save(ctx context.Context, projects map[string]project.Project) error {
	if err := s.replaceAll(ctx, record.FromDomain(projects)); err != nil {
		return &domain.StorageError{Op: "save", Err: err}
	}
	return nil
}

func (s *Store) replaceAll(ctx context.Context, c record.Collection) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range []string{`DELETE FROM tasks`, `DELETE FROM stages`, `DELETE FROM projects`} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
	}

	for pos, name := range slices.Sorted(maps.Keys(c)) {
		p := c[name]
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO projects (name, position) VALUES (?, ?)`, name, pos); err != nil {
			return fmt.Errorf("insert project %q: %w", name, err)
		}
		for i, st := range p.Stages {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO stages (project, position, name, color) VALUES (?, ?, ?, ?)`,
				name, i, st.Name, st.Color); err != nil {
				return fmt.Errorf("insert stage %q: %w", st.Name, err)
			}
		}
		for i, t := range p.Tasks {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO tasks (project, position, name, start, finish, stage, color)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				name, i, t.Task, t.Start, t.Finish, t.Stage, t.Color); err != nil {
				return fmt.Errorf("insert task %d: %w", i, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
