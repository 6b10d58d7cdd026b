package sign

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS signs (
	seq      INTEGER PRIMARY KEY,
	value    TEXT NOT NULL,
	form     TEXT NOT NULL DEFAULT '',
	glyph    TEXT NOT NULL,
	language TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS signs_value ON signs(value);
`

// LoadSQLite reads signs from the signs table of a SQLite database, in the
// order they were saved.
func LoadSQLite(ctx context.Context, path string) ([]Sign, error) {
	// Opening a missing file would silently create an empty database.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInventoryLoad, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", ErrInventoryLoad, path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT value, form, glyph, language FROM signs ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying %s: %w", ErrInventoryLoad, path, err)
	}
	defer rows.Close()

	var signs []Sign
	for rows.Next() {
		var s Sign
		if err := rows.Scan(&s.Value, &s.Form, &s.Glyph, &s.Language); err != nil {
			return nil, fmt.Errorf("%w: scanning %s: %w", ErrInventoryLoad, path, err)
		}
		signs = append(signs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrInventoryLoad, path, err)
	}

	return signs, nil
}

// SaveSQLite replaces the signs table of the database at path with signs.
func SaveSQLite(ctx context.Context, path string, signs []Sign) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM signs`); err != nil {
		return fmt.Errorf("clearing signs: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO signs (seq, value, form, glyph, language) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range signs {
		if _, err := stmt.ExecContext(ctx, i, s.Value, s.Form, s.Glyph, s.Language); err != nil {
			return fmt.Errorf("inserting sign %q: %w", s.Value, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing signs: %w", err)
	}
	return nil
}
