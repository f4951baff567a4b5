package template

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
)

type fileTemplateSource struct {
	path string
}

// NewFileTemplateSource fayldan prompt shablonini o'qiydigan manba.
// Fayl har safar qayta o'qiladi, shuning uchun tahrirlar darhol ko'rinadi.
func NewFileTemplateSource(path string) repository.TemplateSource {
	return &fileTemplateSource{path: path}
}

// LoadTemplate shablon matnini olish
func (s *fileTemplateSource) LoadTemplate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &entity.Error{
				Kind:    entity.ErrFile,
				Op:      "load template",
				Message: fmt.Sprintf("프롬프트 템플릿 파일을 찾을 수 없습니다: %s", s.path),
				Cause:   err,
			}
		}
		return "", fmt.Errorf("failed to read template %s: %w", s.path, err)
	}
	return string(data), nil
}
