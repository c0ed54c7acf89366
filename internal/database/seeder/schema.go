package seeder

import (
	"context"
	"fmt"
	"strings"

	"job-scout/internal/database"
)

// EnsureTableColumns fails fast when the live schema is missing columns a
// seeder is about to write. Catches a seeder running against a database
// whose migrations have not caught up.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if strings.TrimSpace(table) == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := db.Query(ctx,
		`SELECT column_name FROM information_schema.columns
		 WHERE table_schema = 'public' AND table_name = $1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		existing[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s missing columns: %s", table, strings.Join(missing, ", "))
	}
	return nil
}
