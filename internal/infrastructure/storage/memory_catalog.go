package storage

import (
	"context"
	"sync"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
)

type memoryCatalogRepository struct {
	mu       sync.RWMutex
	catalog  *entity.Catalog
	products map[string][]string // key: kategoriya nomi
	entries  []entity.CatalogPick
}

// NewMemoryCatalogRepository in-memory katalog repository yaratish
func NewMemoryCatalogRepository() repository.CatalogRepository {
	return &memoryCatalogRepository{
		products: make(map[string][]string),
	}
}

// UpdateCatalog butun katalogni yangilash
func (m *memoryCatalogRepository) UpdateCatalog(ctx context.Context, catalog entity.Catalog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Tashqaridan o'zgartirib bo'lmasligi uchun nusxa
	categories := make([]entity.Category, 0, len(catalog.Categories))
	products := make(map[string][]string, len(catalog.Categories))
	var entries []entity.CatalogPick

	for _, cat := range catalog.Categories {
		list := append([]string(nil), cat.Products...)
		if _, dup := products[cat.Name]; dup {
			// bir xil nomli kategoriya - mahsulotlarni birlashtiramiz
			products[cat.Name] = append(products[cat.Name], list...)
			for i := range categories {
				if categories[i].Name == cat.Name {
					categories[i].Products = products[cat.Name]
				}
			}
		} else {
			products[cat.Name] = list
			categories = append(categories, entity.Category{Name: cat.Name, Products: list})
		}
		for _, p := range list {
			entries = append(entries, entity.CatalogPick{Category: cat.Name, Product: p})
		}
	}

	catalog.Categories = categories
	m.catalog = &catalog
	m.products = products
	m.entries = entries
	return nil
}

// GetCatalog katalogni olish
func (m *memoryCatalogRepository) GetCatalog(ctx context.Context) (*entity.Catalog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.catalog == nil {
		return nil, &entity.Error{Kind: entity.ErrEmptyCatalog, Op: "get catalog", Message: "카탈로그가 로드되지 않았습니다."}
	}

	catalog := *m.catalog
	return &catalog, nil
}

// Categories kategoriya nomlari
func (m *memoryCatalogRepository) Categories(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.catalog == nil {
		return []string{}, nil
	}

	names := make([]string, 0, len(m.catalog.Categories))
	for _, cat := range m.catalog.Categories {
		names = append(names, cat.Name)
	}
	return names, nil
}

// GetByCategory kategoriya bo'yicha mahsulotlarni olish
func (m *memoryCatalogRepository) GetByCategory(ctx context.Context, category string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products, ok := m.products[category]
	if !ok {
		return []string{}, nil
	}
	out := make([]string, len(products))
	copy(out, products)
	return out, nil
}

// Entries barcha (kategoriya, mahsulot) juftliklari
func (m *memoryCatalogRepository) Entries(ctx context.Context) ([]entity.CatalogPick, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]entity.CatalogPick(nil), m.entries...), nil
}
