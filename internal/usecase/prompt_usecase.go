package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
	"github.com/yourusername/longtail-keywords/internal/lib/sl"
)

// DefaultPlaceholder shablondagi kalit so'z o'rni
const DefaultPlaceholder = "{keyword}"

// PromptUseCase tanlangan kalit so'z uchun tayyor prompt yaratish
type PromptUseCase interface {
	// Materialize shablondagi placeholder ni kalit so'z bilan almashtirish
	Materialize(ctx context.Context, keyword string) (string, error)
}

type promptUseCase struct {
	source      repository.TemplateSource
	placeholder string
	log         *slog.Logger
}

// NewPromptUseCase yangi PromptUseCase yaratish
func NewPromptUseCase(source repository.TemplateSource, placeholder string, log *slog.Logger) PromptUseCase {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &promptUseCase{
		source:      source,
		placeholder: placeholder,
		log:         log.With(sl.Module("prompt")),
	}
}

// Materialize shablonni har safar qaytadan o'qib placeholder ni almashtirish
func (u *promptUseCase) Materialize(ctx context.Context, keyword string) (string, error) {
	if strings.TrimSpace(keyword) == "" {
		return "", &entity.Error{
			Kind:    entity.ErrInvalidInput,
			Op:      "materialize prompt",
			Message: "키워드를 선택해주세요.",
		}
	}

	tmpl, err := u.source.LoadTemplate(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrFile) {
			return "", err
		}
		return "", fmt.Errorf("materialize prompt: %w", err)
	}

	if !strings.Contains(tmpl, u.placeholder) {
		u.log.Warn("placeholder not found in template", slog.String("placeholder", u.placeholder))
		return tmpl, nil
	}

	return strings.ReplaceAll(tmpl, u.placeholder, keyword), nil
}
