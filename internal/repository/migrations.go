package repository

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

//go:embed migration/*
var migrationsFS embed.FS

// MigrationsTempDir creates a temporary directory, populates it with the
// migration files, and returns the path to that directory. This lets the
// server binary run migrations without shipping the sql files separately.
//
// It is the caller's responsibility to remove the directory when it is no
// longer needed.
func MigrationsTempDir() (string, error) {
	tmpDir, err := os.MkdirTemp("", "migrations-*")
	if err != nil {
		return "", err
	}

	mFS, err := fs.Sub(migrationsFS, "migration")
	if err != nil {
		return "", err
	}

	if err := fs.WalkDir(mFS, ".", func(path string, d fs.DirEntry, _ error) error {
		dst := filepath.Join(tmpDir, path)
		if dst == tmpDir {
			return nil
		}

		if d.IsDir() {
			if err := os.Mkdir(dst, 0700); err != nil {
				return fmt.Errorf("failed to mkdir %q: %w", dst, err)
			}
			return nil
		}

		content, err := migrationsFS.ReadFile(filepath.Join("migration", path))
		if err != nil {
			return err
		}

		return os.WriteFile(dst, content, 0600)
	}); err != nil {
		return "", err
	}

	return tmpDir, nil
}

type dbLogger struct{}

func (*dbLogger) Printf(format string, v ...interface{}) {
	fmt.Printf(format, v...)
}

func (*dbLogger) Verbose() bool {
	return true
}

// DoSQLMigration runs the versioned sql migrations against the database.
func DoSQLMigration(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return err
	}

	migrationDir, err := MigrationsTempDir()
	if err != nil {
		return fmt.Errorf("failed to create temporary directory for migrations: %w", err)
	}
	defer os.RemoveAll(migrationDir)

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationDir,
		"mysql",
		driver,
	)
	if err != nil {
		return err
	}

	m.Log = &dbLogger{}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}
