package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/athulvp5125/Mood-Meal/internal/catalog"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedTime = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func builtinRecipes(t *testing.T) []domain.Recipe {
	t.Helper()
	recipes, err := catalog.Builtin().List(context.Background())
	require.NoError(t, err)
	return recipes
}

func TestSeedCatalog_RoundTripsBuiltin(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	want := builtinRecipes(t)

	require.NoError(t, SeedCatalog(ctx, testutil.NewTestUoW(database), want, "builtin", seedTime))

	repo := NewSQLiteRecipeRepo(database)
	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestSQLiteRecipeRepo_PreservesCatalogOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	recipes := []domain.Recipe{
		testutil.NewTestRecipe("z"),
		testutil.NewTestRecipe("a"),
		testutil.NewTestRecipe("m"),
	}
	require.NoError(t, SeedCatalog(ctx, testutil.NewTestUoW(database), recipes, "fixture", seedTime))

	got, err := NewSQLiteRecipeRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, testutil.RecipeIDs(got))
}

func TestSQLiteRecipeRepo_Get(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, SeedCatalog(ctx, testutil.NewTestUoW(database), builtinRecipes(t), "builtin", seedTime))
	repo := NewSQLiteRecipeRepo(database)

	r, err := repo.Get(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Calming Chamomile Lavender Tea Cookies", r.Title)
	assert.Equal(t, []string{"anxious", "stressed"}, r.MoodCategories)
	assert.Len(t, r.Instructions, 9)
	assert.Equal(t, "Preheat oven to 350°F (175°C) and line a baking sheet with parchment paper.", r.Instructions[0])
	assert.Equal(t, domain.NutritionFact{Name: "Fat", Value: "5g"}, r.Nutrition[3])

	_, err = repo.Get(ctx, "999")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestSQLiteRecipeRepo_EmptyLists(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	rec := testutil.NewTestRecipe("bare")
	rec.Nutrition = []domain.NutritionFact{}
	require.NoError(t, SeedCatalog(ctx, testutil.NewTestUoW(database), []domain.Recipe{rec}, "fixture", seedTime))

	got, err := NewSQLiteRecipeRepo(database).Get(ctx, "bare")
	require.NoError(t, err)
	assert.Equal(t, rec, *got)
}

func TestSeedCatalog_ReplacesPreviousCatalog(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	uow := testutil.NewTestUoW(database)

	require.NoError(t, SeedCatalog(ctx, uow, builtinRecipes(t), "builtin", seedTime))
	later := seedTime.Add(time.Hour)
	require.NoError(t, SeedCatalog(ctx, uow, []domain.Recipe{testutil.NewTestRecipe("only")}, "fixture.yaml", later))

	repo := NewSQLiteRecipeRepo(database)
	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, testutil.RecipeIDs(got))

	var orphans int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM recipe_ingredients WHERE recipe_id <> 'only'`).Scan(&orphans))
	assert.Zero(t, orphans)

	meta, err := repo.Meta(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fixture.yaml", meta.Source)
	assert.True(t, later.Equal(meta.SeededAt))
}

func TestSeedCatalog_RejectsInvalid(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	dup := []domain.Recipe{testutil.NewTestRecipe("a"), testutil.NewTestRecipe("a")}
	require.Error(t, SeedCatalog(ctx, testutil.NewTestUoW(database), dup, "fixture", seedTime))

	err := SeedCatalog(ctx, testutil.NewTestUoW(database), nil, "fixture", seedTime)
	require.ErrorIs(t, err, catalog.ErrEmpty)
}

func TestSeedCatalog_RollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, SeedCatalog(ctx, testutil.NewTestUoW(database), builtinRecipes(t), "builtin", seedTime))

	injected := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 5, Err: injected}
	err := SeedCatalog(ctx, uow, []domain.Recipe{testutil.NewTestRecipe("x")}, "fixture", seedTime)
	require.ErrorIs(t, err, injected)

	got, err := NewSQLiteRecipeRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 6, "previous catalog survives a failed reseed")

	meta, err := NewSQLiteRecipeRepo(database).Meta(ctx)
	require.NoError(t, err)
	assert.Equal(t, "builtin", meta.Source)
}

func TestSQLiteRecipeRepo_MetaBeforeSeed(t *testing.T) {
	database := testutil.NewTestDB(t)
	_, err := NewSQLiteRecipeRepo(database).Meta(context.Background())
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestSQLiteRecipeRepo_ListEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	got, err := NewSQLiteRecipeRepo(database).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
