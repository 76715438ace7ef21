package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent, so it
// is safe to call on an already migrated database.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS recipes (
		id          TEXT PRIMARY KEY,
		position    INTEGER NOT NULL UNIQUE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image       TEXT NOT NULL DEFAULT '',
		cook_time   INTEGER NOT NULL CHECK(cook_time > 0),
		servings    INTEGER NOT NULL CHECK(servings > 0),
		calories    INTEGER NOT NULL CHECK(calories > 0),
		difficulty  TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS recipe_tags (
		recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		position  INTEGER NOT NULL,
		tag       TEXT NOT NULL,
		PRIMARY KEY (recipe_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS recipe_ingredients (
		recipe_id  TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		ingredient TEXT NOT NULL,
		PRIMARY KEY (recipe_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS recipe_instructions (
		recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		position  INTEGER NOT NULL,
		step      TEXT NOT NULL,
		PRIMARY KEY (recipe_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS recipe_nutrition (
		recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		position  INTEGER NOT NULL,
		name      TEXT NOT NULL,
		value     TEXT NOT NULL,
		PRIMARY KEY (recipe_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS recipe_moods (
		recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		position  INTEGER NOT NULL,
		mood      TEXT NOT NULL,
		PRIMARY KEY (recipe_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_recipe_moods_mood ON recipe_moods(mood)`,
	`CREATE INDEX IF NOT EXISTS idx_recipe_tags_tag ON recipe_tags(tag)`,
	`CREATE TABLE IF NOT EXISTS catalog_meta (
		id        TEXT PRIMARY KEY CHECK(id = 'default'),
		source    TEXT NOT NULL,
		seeded_at TEXT NOT NULL
	)`,
}
