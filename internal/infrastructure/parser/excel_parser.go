package parser

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
	"github.com/yourusername/longtail-keywords/internal/lib/sl"
)

type excelParser struct {
	log *slog.Logger
}

// NewExcelParser yangi Excel parser yaratish
func NewExcelParser(log *slog.Logger) repository.CatalogParser {
	return &excelParser{log: log.With(sl.Module("parser.excel"))}
}

// ParseCatalog Excel fayldan katalogni o'qish
func (e *excelParser) ParseCatalog(ctx context.Context, filePath string) (entity.Catalog, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return entity.Catalog{}, fileError("open excel catalog", filePath, err)
	}
	defer f.Close()

	categories, err := e.parseExcelFile(f)
	if err != nil {
		return entity.Catalog{}, err
	}

	return entity.Catalog{
		Categories: categories,
		LoadedAt:   time.Now(),
		Source:     filepath.Base(filePath),
	}, nil
}

// parseExcelFile birinchi sheet ni o'qish.
// Ikki ko'rinish qo'llab-quvvatlanadi:
//   - jadval: header da kategoriya va mahsulot ustunlari, har qatorda bitta mahsulot
//   - ustunlar: har bir header katagi kategoriya, pastidagi kataklar uning mahsulotlari
func (e *excelParser) parseExcelFile(f *excelize.File) ([]entity.Category, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file is empty")
	}

	header := rows[0]
	columnMap := mapColumns(header)

	b := newCatalogBuilder()

	categoryCol, hasCategory := columnMap["category"]
	productCol, hasProduct := columnMap["product"]

	if hasCategory && hasProduct {
		e.log.Debug("excel catalog layout", slog.String("layout", "table"),
			slog.Int("category_col", categoryCol), slog.Int("product_col", productCol))

		for _, row := range rows[1:] {
			category := cell(row, categoryCol)
			product := cell(row, productCol)
			if category == "" || product == "" {
				continue
			}
			b.add(category, product)
		}
		return b.build()
	}

	e.log.Debug("excel catalog layout", slog.String("layout", "columns"), slog.Int("columns", len(header)))

	for col := range header {
		category := cell(header, col)
		if category == "" {
			continue
		}
		b.ensure(category)
		for _, row := range rows[1:] {
			if product := cell(row, col); product != "" {
				b.add(category, product)
			}
		}
	}
	return b.build()
}

// mapColumns header qatoridan kategoriya va mahsulot ustunlarini topish
func mapColumns(header []string) map[string]int {
	columnMap := make(map[string]int)

	for i, col := range header {
		colName := strings.ToLower(strings.TrimSpace(col))
		if colName == "" {
			continue
		}

		switch {
		case contains(colName, "category", "카테고리", "분류", "kategoriya"):
			if _, ok := columnMap["category"]; !ok {
				columnMap["category"] = i
			}
		case contains(colName, "product", "name", "상품", "제품", "mahsulot"):
			if _, ok := columnMap["product"]; !ok {
				columnMap["product"] = i
			}
		}
	}

	return columnMap
}

// contains tekshirish uchun helper
func contains(str string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(str, keyword) {
			return true
		}
	}
	return false
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
