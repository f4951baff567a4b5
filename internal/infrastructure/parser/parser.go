package parser

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
)

type catalogParser struct {
	excel repository.CatalogParser
	yaml  repository.CatalogParser
}

// NewCatalogParser fayl kengaytmasiga qarab mos parserni tanlaydigan parser
func NewCatalogParser(log *slog.Logger) repository.CatalogParser {
	return &catalogParser{
		excel: NewExcelParser(log),
		yaml:  NewYAMLParser(),
	}
}

// ParseCatalog katalogni o'qish (.xlsx, .yaml, .yml, .json)
func (p *catalogParser) ParseCatalog(ctx context.Context, filePath string) (entity.Catalog, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx", ".xlsm":
		return p.excel.ParseCatalog(ctx, filePath)
	case ".yaml", ".yml", ".json":
		return p.yaml.ParseCatalog(ctx, filePath)
	default:
		return entity.Catalog{}, &entity.Error{
			Kind:    entity.ErrInvalidInput,
			Op:      "parse catalog",
			Message: fmt.Sprintf("지원하지 않는 카탈로그 형식입니다: %s", filepath.Base(filePath)),
		}
	}
}

// fileError fayl topilmasa ErrFile turidagi xatolik
func fileError(op, filePath string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &entity.Error{
			Kind:    entity.ErrFile,
			Op:      op,
			Message: fmt.Sprintf("카탈로그 파일을 찾을 수 없습니다: %s", filePath),
			Cause:   err,
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// catalogBuilder kategoriyalarni birinchi uchragan tartibda yig'ish
type catalogBuilder struct {
	index      map[string]int
	categories []entity.Category
}

func newCatalogBuilder() *catalogBuilder {
	return &catalogBuilder{index: make(map[string]int)}
}

func (b *catalogBuilder) ensure(category string) int {
	if i, ok := b.index[category]; ok {
		return i
	}
	b.index[category] = len(b.categories)
	b.categories = append(b.categories, entity.Category{Name: category, Products: []string{}})
	return b.index[category]
}

// add mahsulotni fayldagi tartibda qo'shish, takrorlar ham saqlanadi
func (b *catalogBuilder) add(category, product string) {
	i := b.ensure(category)
	b.categories[i].Products = append(b.categories[i].Products, product)
}

func (b *catalogBuilder) build() ([]entity.Category, error) {
	if len(b.categories) == 0 {
		return nil, &entity.Error{
			Kind:    entity.ErrEmptyCatalog,
			Op:      "parse catalog",
			Message: "카탈로그에 카테고리가 없습니다.",
		}
	}
	return b.categories, nil
}
