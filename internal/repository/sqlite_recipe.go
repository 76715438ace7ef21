package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/athulvp5125/Mood-Meal/internal/catalog"
	"github.com/athulvp5125/Mood-Meal/internal/db"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
)

// SQLiteRecipeRepo is a catalog.Source backed by the recipe tables.
type SQLiteRecipeRepo struct {
	db db.DBTX
}

var _ catalog.Source = (*SQLiteRecipeRepo)(nil)

// NewSQLiteRecipeRepo creates a new SQLiteRecipeRepo.
func NewSQLiteRecipeRepo(conn db.DBTX) *SQLiteRecipeRepo {
	return &SQLiteRecipeRepo{db: conn}
}

const recipeColumns = `id, title, description, image, cook_time, servings, calories, difficulty`

func (r *SQLiteRecipeRepo) List(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	index := make(map[string]int)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		index[rec.ID] = len(recipes)
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipes: %w", err)
	}
	rows.Close()

	if err := r.loadChildren(ctx, recipes, index, ""); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *SQLiteRecipeRepo) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)
	rec, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("recipe %q: %w", id, catalog.ErrNotFound)
		}
		return nil, err
	}
	recipes := []domain.Recipe{rec}
	if err := r.loadChildren(ctx, recipes, map[string]int{id: 0}, id); err != nil {
		return nil, err
	}
	return &recipes[0], nil
}

// Count returns the number of stored recipes.
func (r *SQLiteRecipeRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting recipes: %w", err)
	}
	return n, nil
}

// Replace deletes every stored recipe and inserts recipes in order. Run it
// inside a transaction so readers never observe a partial catalog.
func (r *SQLiteRecipeRepo) Replace(ctx context.Context, recipes []domain.Recipe) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recipes`); err != nil {
		return fmt.Errorf("clearing recipes: %w", err)
	}
	for i := range recipes {
		if err := r.insert(ctx, i, &recipes[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecipeRepo) insert(ctx context.Context, position int, rec *domain.Recipe) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO recipes (id, position, title, description, image, cook_time, servings, calories, difficulty)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, position, rec.Title, rec.Description, rec.Image,
		rec.CookTime, rec.Servings, rec.Calories, rec.Difficulty,
	)
	if err != nil {
		return fmt.Errorf("inserting recipe %q: %w", rec.ID, err)
	}

	lists := []struct {
		table, column string
		values        []string
	}{
		{"recipe_tags", "tag", rec.Tags},
		{"recipe_ingredients", "ingredient", rec.Ingredients},
		{"recipe_instructions", "step", rec.Instructions},
		{"recipe_moods", "mood", rec.MoodCategories},
	}
	for _, l := range lists {
		query := `INSERT INTO ` + l.table + ` (recipe_id, position, ` + l.column + `) VALUES (?, ?, ?)`
		for i, v := range l.values {
			if _, err := r.db.ExecContext(ctx, query, rec.ID, i, v); err != nil {
				return fmt.Errorf("inserting %s for recipe %q: %w", l.table, rec.ID, err)
			}
		}
	}
	for i, n := range rec.Nutrition {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO recipe_nutrition (recipe_id, position, name, value) VALUES (?, ?, ?, ?)`,
			rec.ID, i, n.Name, n.Value,
		); err != nil {
			return fmt.Errorf("inserting nutrition for recipe %q: %w", rec.ID, err)
		}
	}
	return nil
}

// loadChildren fills the list fields of recipes. When onlyID is set, only
// that recipe's rows are read.
func (r *SQLiteRecipeRepo) loadChildren(ctx context.Context, recipes []domain.Recipe, index map[string]int, onlyID string) error {
	for i := range recipes {
		recipes[i].Tags = []string{}
		recipes[i].Ingredients = []string{}
		recipes[i].Instructions = []string{}
		recipes[i].Nutrition = []domain.NutritionFact{}
		recipes[i].MoodCategories = []string{}
	}

	lists := []struct {
		table, column string
		field         func(*domain.Recipe) *[]string
	}{
		{"recipe_tags", "tag", func(rec *domain.Recipe) *[]string { return &rec.Tags }},
		{"recipe_ingredients", "ingredient", func(rec *domain.Recipe) *[]string { return &rec.Ingredients }},
		{"recipe_instructions", "step", func(rec *domain.Recipe) *[]string { return &rec.Instructions }},
		{"recipe_moods", "mood", func(rec *domain.Recipe) *[]string { return &rec.MoodCategories }},
	}
	for _, l := range lists {
		err := r.eachChild(ctx, l.table, `recipe_id, `+l.column, onlyID, func(rows *sql.Rows) error {
			var id, v string
			if err := rows.Scan(&id, &v); err != nil {
				return err
			}
			if i, ok := index[id]; ok {
				dst := l.field(&recipes[i])
				*dst = append(*dst, v)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return r.eachChild(ctx, "recipe_nutrition", `recipe_id, name, value`, onlyID, func(rows *sql.Rows) error {
		var id string
		var n domain.NutritionFact
		if err := rows.Scan(&id, &n.Name, &n.Value); err != nil {
			return err
		}
		if i, ok := index[id]; ok {
			recipes[i].Nutrition = append(recipes[i].Nutrition, n)
		}
		return nil
	})
}

func (r *SQLiteRecipeRepo) eachChild(ctx context.Context, table, columns, onlyID string, fn func(*sql.Rows) error) error {
	query := `SELECT ` + columns + ` FROM ` + table
	var args []any
	if onlyID != "" {
		query += ` WHERE recipe_id = ?`
		args = append(args, onlyID)
	}
	query += ` ORDER BY recipe_id, position`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return fmt.Errorf("scanning %s: %w", table, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating %s: %w", table, err)
	}
	return nil
}

// CatalogMeta describes where the stored catalog came from.
type CatalogMeta struct {
	Source   string
	SeededAt time.Time
}

// Meta returns the catalog provenance, or an error wrapping
// catalog.ErrNotFound if the database was never seeded.
func (r *SQLiteRecipeRepo) Meta(ctx context.Context) (*CatalogMeta, error) {
	var m CatalogMeta
	var seededAt string
	err := r.db.QueryRowContext(ctx, `SELECT source, seeded_at FROM catalog_meta WHERE id = 'default'`).
		Scan(&m.Source, &seededAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("catalog meta: %w", catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("reading catalog meta: %w", err)
	}
	t, err := time.Parse(time.RFC3339, seededAt)
	if err != nil {
		return nil, fmt.Errorf("parsing seeded_at: %w", err)
	}
	m.SeededAt = t
	return &m, nil
}

func (r *SQLiteRecipeRepo) setMeta(ctx context.Context, source string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO catalog_meta (id, source, seeded_at) VALUES ('default', ?, ?)`,
		source, at.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing catalog meta: %w", err)
	}
	return nil
}

// SeedCatalog validates recipes and atomically replaces the stored catalog
// with them, recording source as its provenance.
func SeedCatalog(ctx context.Context, uow db.UnitOfWork, recipes []domain.Recipe, source string, now time.Time) error {
	if err := catalog.Validate(recipes); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := NewSQLiteRecipeRepo(tx)
		if err := repo.Replace(ctx, recipes); err != nil {
			return err
		}
		return repo.setMeta(ctx, source, now)
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(s rowScanner) (domain.Recipe, error) {
	var rec domain.Recipe
	err := s.Scan(
		&rec.ID,
		&rec.Title,
		&rec.Description,
		&rec.Image,
		&rec.CookTime,
		&rec.Servings,
		&rec.Calories,
		&rec.Difficulty,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("scanning recipe: %w", err)
	}
	return rec, nil
}
