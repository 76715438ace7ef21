package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/athulvp5125/Mood-Meal/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertRecipe(ctx context.Context, tx db.DBTX, id string, position int) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO recipes (id, position, title, cook_time, servings, calories) VALUES (?, ?, ?, 10, 1, 100)`,
		id, position, "Recipe "+id)
	return err
}

func recipeExists(t *testing.T, uow *db.SQLiteUnitOfWork, id string) bool {
	t.Helper()
	var found bool
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes WHERE id = ?`, id).Scan(&n); err != nil {
			return err
		}
		found = n > 0
		return nil
	})
	require.NoError(t, err)
	return found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertRecipe(ctx, tx, "r1", 0)
	})
	require.NoError(t, err)
	assert.True(t, recipeExists(t, uow, "r1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertRecipe(ctx, tx, "r2", 0); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.False(t, recipeExists(t, uow, "r2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnConstraintViolation(t *testing.T) {
	uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertRecipe(ctx, tx, "r1", 0); err != nil {
			return err
		}
		return insertRecipe(ctx, tx, "r2", 0) // same position
	})
	require.Error(t, err)
	assert.False(t, recipeExists(t, uow, "r1"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertRecipe(ctx, tx, "r3", 0)
			panic("boom")
		})
	})
	assert.False(t, recipeExists(t, uow, "r3"), "row should not exist after panic rollback")
}
