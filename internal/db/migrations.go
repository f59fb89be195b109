package db

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// RunMigrations applies any pending database migrations
func (db *DB) RunMigrations() error {
	// Databases created before the kv table existed
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("ensuring kv table: %w", err)
	}

	if err := db.runUpdatedAtMigration(); err != nil {
		return err
	}

	return nil
}

func (db *DB) runUpdatedAtMigration() error {
	var count int
	err := db.conn.QueryRow(`
		SELECT COUNT(*)
		FROM pragma_table_info('kv')
		WHERE name = 'updated_at'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking for updated_at column: %w", err)
	}

	if count == 0 {
		log.Info("running migration", "table", "kv", "column", "updated_at")

		tx, err := db.conn.Begin()
		if err != nil {
			return fmt.Errorf("starting transaction: %w", err)
		}
		defer tx.Rollback()

		// SQLite rejects non-constant defaults in ADD COLUMN
		_, err = tx.Exec(`ALTER TABLE kv ADD COLUMN updated_at DATETIME`)
		if err != nil && err.Error() != "duplicate column name: updated_at" {
			return fmt.Errorf("adding updated_at column: %w", err)
		}

		if _, err := tx.Exec(`UPDATE kv SET updated_at = CURRENT_TIMESTAMP WHERE updated_at IS NULL`); err != nil {
			return fmt.Errorf("backfilling updated_at: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration: %w", err)
		}

		log.Info("migration completed", "table", "kv")
	}

	return nil
}
