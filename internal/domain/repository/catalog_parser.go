package repository

import (
	"context"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
)

// CatalogParser katalog faylini o'qish uchun interface
type CatalogParser interface {
	// ParseCatalog fayldan katalogni o'qish
	ParseCatalog(ctx context.Context, filePath string) (entity.Catalog, error)
}
