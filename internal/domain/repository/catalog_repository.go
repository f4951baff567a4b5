package repository

import (
	"context"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
)

// CatalogRepository kategoriya katalogi bilan ishlash uchun interface
type CatalogRepository interface {
	// UpdateCatalog butun katalogni almashtirish
	UpdateCatalog(ctx context.Context, catalog entity.Catalog) error

	// GetCatalog katalogni olish
	GetCatalog(ctx context.Context) (*entity.Catalog, error)

	// Categories kategoriya nomlari (fayldagi tartibda)
	Categories(ctx context.Context) ([]string, error)

	// GetByCategory kategoriya mahsulotlari; kategoriya yo'q bo'lsa bo'sh ro'yxat
	GetByCategory(ctx context.Context, category string) ([]string, error)

	// Entries barcha (kategoriya, mahsulot) juftliklari
	Entries(ctx context.Context) ([]entity.CatalogPick, error)
}
