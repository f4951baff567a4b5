package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/infrastructure/storage"
	"github.com/yourusername/longtail-keywords/internal/lib/logger"
)

type fakeCatalogParser struct {
	catalog entity.Catalog
	err     error
	path    string
}

func (f *fakeCatalogParser) ParseCatalog(ctx context.Context, filePath string) (entity.Catalog, error) {
	f.path = filePath
	return f.catalog, f.err
}

func sampleCatalog() entity.Catalog {
	return entity.Catalog{Categories: []entity.Category{
		{Name: "생활가전", Products: []string{"공기청정기", "가습기", "제습기"}},
		{Name: "캠핑", Products: []string{"텐트"}},
		{Name: "빈 카테고리"},
	}}
}

func newLoadedCatalogUseCase(t *testing.T) CatalogUseCase {
	t.Helper()
	parser := &fakeCatalogParser{catalog: sampleCatalog()}
	uc := NewCatalogUseCase(storage.NewMemoryCatalogRepository(), parser, logger.Discard())

	count, err := uc.LoadCatalog(context.Background(), "data/catalog.yaml")
	require.NoError(t, err)
	require.Equal(t, 4, count)
	assert.Equal(t, "data/catalog.yaml", parser.path)
	return uc
}

func TestCatalogUseCase_CategoriesAndProducts(t *testing.T) {
	uc := newLoadedCatalogUseCase(t)
	ctx := context.Background()

	categories, err := uc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"생활가전", "캠핑", "빈 카테고리"}, categories)

	products, err := uc.Products(ctx, " 생활가전 ")
	require.NoError(t, err)
	assert.Equal(t, []string{"공기청정기", "가습기", "제습기"}, products)

	unknown, err := uc.Products(ctx, "없는 카테고리")
	require.NoError(t, err)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestCatalogUseCase_RandomIsConsistent(t *testing.T) {
	uc := newLoadedCatalogUseCase(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		pick, err := uc.Random(ctx)
		require.NoError(t, err)

		products, err := uc.Products(ctx, pick.Category)
		require.NoError(t, err)
		assert.Contains(t, products, pick.Product)
		seen[pick.Product] = true
	}
	assert.NotContains(t, seen, "")
}

func TestCatalogUseCase_RandomUsesAllEntries(t *testing.T) {
	uc := newLoadedCatalogUseCase(t)
	impl := uc.(*catalogUseCase)

	var picks []entity.CatalogPick
	for i := 0; i < 4; i++ {
		idx := i
		impl.intN = func(n int) int {
			assert.Equal(t, 4, n)
			return idx
		}
		pick, err := uc.Random(context.Background())
		require.NoError(t, err)
		picks = append(picks, pick)
	}

	assert.Equal(t, []entity.CatalogPick{
		{Category: "생활가전", Product: "공기청정기"},
		{Category: "생활가전", Product: "가습기"},
		{Category: "생활가전", Product: "제습기"},
		{Category: "캠핑", Product: "텐트"},
	}, picks)
}

func TestCatalogUseCase_Empty(t *testing.T) {
	uc := NewCatalogUseCase(storage.NewMemoryCatalogRepository(), &fakeCatalogParser{}, logger.Discard())
	ctx := context.Background()

	_, err := uc.Random(ctx)
	assert.ErrorIs(t, err, entity.ErrEmptyCatalog)

	_, err = uc.Info(ctx)
	assert.ErrorIs(t, err, entity.ErrEmptyCatalog)

	categories, err := uc.Categories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCatalogUseCase_LoadError(t *testing.T) {
	fileErr := &entity.Error{Kind: entity.ErrFile, Message: "카탈로그 파일을 찾을 수 없습니다: x.yaml"}
	uc := NewCatalogUseCase(storage.NewMemoryCatalogRepository(), &fakeCatalogParser{err: fileErr}, logger.Discard())

	count, err := uc.LoadCatalog(context.Background(), "x.yaml")
	assert.Zero(t, count)
	assert.ErrorIs(t, err, entity.ErrFile)
}

func TestCatalogUseCase_Info(t *testing.T) {
	uc := newLoadedCatalogUseCase(t)

	info, err := uc.Info(context.Background())
	require.NoError(t, err)
	assert.Contains(t, info, "카탈로그: catalog.yaml")
	assert.Contains(t, info, "전체 상품: 4")
	assert.Contains(t, info, "• 생활가전: 3개")
	assert.Contains(t, info, "• 빈 카테고리: 0개")
}
