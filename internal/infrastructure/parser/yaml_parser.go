package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
	"gopkg.in/yaml.v3"
)

type yamlParser struct{}

// NewYAMLParser YAML/JSON katalog parser yaratish.
// Fayl ko'rinishi: "kategoriya nomi" -> mahsulotlar ro'yxati.
func NewYAMLParser() repository.CatalogParser {
	return &yamlParser{}
}

// ParseCatalog YAML yoki JSON fayldan katalogni o'qish
func (y *yamlParser) ParseCatalog(ctx context.Context, filePath string) (entity.Catalog, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return entity.Catalog{}, fileError("read catalog", filePath, err)
	}

	categories, err := parseYAMLCatalog(data)
	if err != nil {
		return entity.Catalog{}, fmt.Errorf("parse catalog %s: %w", filepath.Base(filePath), err)
	}

	return entity.Catalog{
		Categories: categories,
		LoadedAt:   time.Now(),
		Source:     filepath.Base(filePath),
	}, nil
}

// parseYAMLCatalog node orqali o'qiladi, shunda kategoriyalar tartibi saqlanadi
func parseYAMLCatalog(data []byte) ([]entity.Category, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid catalog syntax: %w", err)
	}

	b := newCatalogBuilder()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return b.build()
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("catalog must be a mapping of category to products (line %d)", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		category := strings.TrimSpace(keyNode.Value)
		if category == "" {
			continue
		}
		b.ensure(category)

		switch valueNode.Kind {
		case yaml.SequenceNode:
			for _, item := range valueNode.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("category %q: product must be a string (line %d)", category, item.Line)
				}
				if product := strings.TrimSpace(item.Value); product != "" {
					b.add(category, product)
				}
			}
		case yaml.ScalarNode:
			// "kategoriya:" qiymatsiz - bo'sh kategoriya
			if valueNode.Tag != "!!null" && strings.TrimSpace(valueNode.Value) != "" {
				return nil, fmt.Errorf("category %q: expected a list of products (line %d)", category, valueNode.Line)
			}
		default:
			return nil, fmt.Errorf("category %q: expected a list of products (line %d)", category, valueNode.Line)
		}
	}

	return b.build()
}
