package migration

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Runner applies versioned SQL files from Dir in ascending order. Files are
// named V<version>__<name>.sql; applied versions are recorded in
// schema_migrations together with a checksum, and a changed checksum for an
// already-applied version aborts the run.
type Runner struct {
	Dir string
}

// Advisory lock key for migration runs, ascii "jobs".
const lockKey = 1785684595

var migrationNameRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

type migrationFile struct {
	Version  int64
	Name     string
	Filename string
	SQL      string
	Checksum string
}

func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	dir := strings.TrimSpace(r.Dir)
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return err
		}
		dir = filepath.Join(filepath.Dir(exe), "migrations")
	}

	files, err := readMigrationDir(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	// One runner at a time; concurrent server and scraper starts both
	// migrate on boot.
	if _, err := db.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return err
	}
	defer func() {
		_, _ = db.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
	}()

	applied, err := appliedChecksums(ctx, db)
	if err != nil {
		return err
	}

	for _, f := range files {
		if sum, ok := applied[f.Version]; ok {
			if sum != f.Checksum {
				return fmt.Errorf("migration %d (%s) changed after being applied", f.Version, f.Filename)
			}
			continue
		}
		if err := apply(ctx, db, f); err != nil {
			return err
		}
	}
	return nil
}

func readMigrationDir(dir string) ([]migrationFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	out := make([]migrationFile, 0, len(entries))
	seen := map[int64]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := migrationNameRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		version, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad migration version in %s", e.Name())
		}
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("duplicate migration version %d: %s and %s", version, prev, e.Name())
		}
		seen[version] = e.Name()

		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		text := strings.TrimSpace(string(b))
		if text == "" {
			return nil, fmt.Errorf("empty migration file: %s", e.Name())
		}

		sum := sha256.Sum256([]byte(text))
		out = append(out, migrationFile{
			Version:  version,
			Name:     m[2],
			Filename: e.Name(),
			SQL:      text,
			Checksum: hex.EncodeToString(sum[:]),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

func appliedChecksums(ctx context.Context, db *sql.DB) (map[int64]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]string{}
	for rows.Next() {
		var version int64
		var checksum string
		if err := rows.Scan(&version, &checksum); err != nil {
			return nil, err
		}
		out[version] = checksum
	}
	return out, rows.Err()
}

func apply(ctx context.Context, db *sql.DB, f migrationFile) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, f.SQL); err != nil {
		return fmt.Errorf("migration %d (%s): %w", f.Version, f.Filename, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
		f.Version, f.Name, f.Checksum,
	); err != nil {
		return err
	}
	return tx.Commit()
}
