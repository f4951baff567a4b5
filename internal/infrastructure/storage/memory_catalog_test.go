package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
)

func sampleCatalog() entity.Catalog {
	return entity.Catalog{
		Source: "catalog.yaml",
		Categories: []entity.Category{
			{Name: "가습기", Products: []string{"가열식 가습기", "초음파 가습기"}},
			{Name: "히터", Products: []string{"전기히터"}},
			{Name: "빈카테고리", Products: []string{}},
		},
	}
}

func TestMemoryCatalogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()

	_, err := repo.GetCatalog(ctx)
	assert.ErrorIs(t, err, entity.ErrEmptyCatalog)

	require.NoError(t, repo.UpdateCatalog(ctx, sampleCatalog()))

	names, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"가습기", "히터", "빈카테고리"}, names)

	products, err := repo.GetByCategory(ctx, "가습기")
	require.NoError(t, err)
	assert.Equal(t, []string{"가열식 가습기", "초음파 가습기"}, products)

	entries, err := repo.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Contains(t, entries, entity.CatalogPick{Category: "히터", Product: "전기히터"})
}

func TestMemoryCatalogUnknownCategoryIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()
	require.NoError(t, repo.UpdateCatalog(ctx, sampleCatalog()))

	products, err := repo.GetByCategory(ctx, "선풍기")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	products, err = repo.GetByCategory(ctx, "빈카테고리")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestMemoryCatalogIsolatedFromCaller(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()
	catalog := sampleCatalog()
	require.NoError(t, repo.UpdateCatalog(ctx, catalog))

	catalog.Categories[0].Products[0] = "changed"
	products, err := repo.GetByCategory(ctx, "가습기")
	require.NoError(t, err)
	assert.Equal(t, "가열식 가습기", products[0])

	products[1] = "changed too"
	again, err := repo.GetByCategory(ctx, "가습기")
	require.NoError(t, err)
	assert.Equal(t, "초음파 가습기", again[1])
}

func TestMemoryCatalogMergesDuplicateCategoryNames(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository()
	require.NoError(t, repo.UpdateCatalog(ctx, entity.Catalog{Categories: []entity.Category{
		{Name: "히터", Products: []string{"a"}},
		{Name: "히터", Products: []string{"b"}},
	}}))

	names, _ := repo.Categories(ctx)
	assert.Equal(t, []string{"히터"}, names)
	products, _ := repo.GetByCategory(ctx, "히터")
	assert.Equal(t, []string{"a", "b"}, products)
}
