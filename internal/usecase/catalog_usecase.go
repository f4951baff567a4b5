package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
	"github.com/yourusername/longtail-keywords/internal/lib/sl"
)

// CatalogUseCase kategoriya katalogi bilan bog'liq business logic
type CatalogUseCase interface {
	// LoadCatalog fayldan katalogni yuklash, mahsulotlar sonini qaytaradi
	LoadCatalog(ctx context.Context, path string) (int, error)

	// Categories kategoriya nomlari
	Categories(ctx context.Context) ([]string, error)

	// Products kategoriya mahsulotlari; kategoriya yo'q bo'lsa bo'sh ro'yxat
	Products(ctx context.Context, category string) ([]string, error)

	// Random barcha mahsulotlar orasidan tasodifiy bittasi
	Random(ctx context.Context) (entity.CatalogPick, error)

	// Info katalog haqida qisqa ma'lumot
	Info(ctx context.Context) (string, error)
}

type catalogUseCase struct {
	catalogRepo repository.CatalogRepository
	parser      repository.CatalogParser
	intN        func(n int) int
	log         *slog.Logger
}

// NewCatalogUseCase yangi CatalogUseCase yaratish
func NewCatalogUseCase(
	catalogRepo repository.CatalogRepository,
	parser repository.CatalogParser,
	log *slog.Logger,
) CatalogUseCase {
	return &catalogUseCase{
		catalogRepo: catalogRepo,
		parser:      parser,
		intN:        rand.IntN,
		log:         log.With(sl.Module("catalog")),
	}
}

// LoadCatalog faylni parse qilib katalogni yangilash
func (u *catalogUseCase) LoadCatalog(ctx context.Context, path string) (int, error) {
	catalog, err := u.parser.ParseCatalog(ctx, path)
	if err != nil {
		return 0, err
	}

	catalog.Source = filepath.Base(path)
	catalog.LoadedAt = time.Now()

	if err := u.catalogRepo.UpdateCatalog(ctx, catalog); err != nil {
		return 0, fmt.Errorf("failed to update catalog: %w", err)
	}

	count := catalog.ProductCount()
	u.log.Info("catalog loaded",
		slog.String("source", catalog.Source),
		slog.Int("categories", len(catalog.Categories)),
		slog.Int("products", count),
	)
	return count, nil
}

// Categories kategoriya nomlari
func (u *catalogUseCase) Categories(ctx context.Context) ([]string, error) {
	return u.catalogRepo.Categories(ctx)
}

// Products kategoriya mahsulotlari
func (u *catalogUseCase) Products(ctx context.Context, category string) ([]string, error) {
	return u.catalogRepo.GetByCategory(ctx, strings.TrimSpace(category))
}

// Random barcha (kategoriya, mahsulot) juftliklari orasidan bir xil ehtimol bilan tanlash
func (u *catalogUseCase) Random(ctx context.Context) (entity.CatalogPick, error) {
	entries, err := u.catalogRepo.Entries(ctx)
	if err != nil {
		return entity.CatalogPick{}, err
	}
	if len(entries) == 0 {
		return entity.CatalogPick{}, &entity.Error{
			Kind:    entity.ErrEmptyCatalog,
			Op:      "random product",
			Message: "카탈로그에 상품이 없습니다.",
		}
	}
	return entries[u.intN(len(entries))], nil
}

// Info katalog haqida ma'lumot
func (u *catalogUseCase) Info(ctx context.Context) (string, error) {
	catalog, err := u.catalogRepo.GetCatalog(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📦 카탈로그: %s\n", catalog.Source)
	fmt.Fprintf(&sb, "📅 로드 시각: %s\n", catalog.LoadedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&sb, "📊 전체 상품: %d\n\n", catalog.ProductCount())
	sb.WriteString("📂 카테고리:\n")
	for _, cat := range catalog.Categories {
		fmt.Fprintf(&sb, "  • %s: %d개\n", cat.Name, len(cat.Products))
	}
	return sb.String(), nil
}
