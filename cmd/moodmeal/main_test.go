package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/athulvp5125/Mood-Meal/internal/catalog"
	"github.com/athulvp5125/Mood-Meal/internal/config"
	"github.com/athulvp5125/Mood-Meal/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCatalog_SeedsEmptyDatabase(t *testing.T) {
	cfg := &config.Config{Catalog: config.CatalogConfig{DB: filepath.Join(t.TempDir(), "catalog.db")}}

	src, conn, err := openCatalog(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, conn)
	defer conn.Close()

	recipes, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, recipes, catalog.Builtin().Len())

	meta, err := repository.NewSQLiteRecipeRepo(conn).Meta(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "builtin", meta.Source)
}

func TestOpenCatalog_CancelledContextSeedsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, conn, err := openCatalog(ctx, &config.Config{Catalog: config.CatalogConfig{DB: path}})
	require.Error(t, err)
	assert.Nil(t, conn)

	// A later start still finds an empty database and seeds it in full.
	src, conn, err := openCatalog(context.Background(), &config.Config{Catalog: config.CatalogConfig{DB: path}})
	require.NoError(t, err)
	defer conn.Close()
	recipes, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, recipes, catalog.Builtin().Len())
}

func TestOpenCatalog_Builtin(t *testing.T) {
	src, conn, err := openCatalog(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.Nil(t, conn)
	assert.IsType(t, &catalog.Static{}, src)
}
