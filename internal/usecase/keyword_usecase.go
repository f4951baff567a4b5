package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
	"github.com/yourusername/longtail-keywords/internal/lib/sl"
)

// KeywordUseCase kalit so'z generatsiyasi bilan bog'liq business logic
type KeywordUseCase interface {
	// Generate kategoriya uchun uzun dumli kalit so'zlarni yaratish
	Generate(ctx context.Context, req entity.KeywordRequest) (*entity.KeywordResult, error)

	// Providers ishlatish mumkin bo'lgan providerlar
	Providers() []entity.Provider
}

type keywordUseCase struct {
	factory repository.GeneratorFactory
	timeout time.Duration
	log     *slog.Logger
}

// NewKeywordUseCase yangi KeywordUseCase yaratish. timeout 0 bo'lsa cheklanmaydi.
func NewKeywordUseCase(factory repository.GeneratorFactory, timeout time.Duration, log *slog.Logger) KeywordUseCase {
	return &keywordUseCase{
		factory: factory,
		timeout: timeout,
		log:     log.With(sl.Module("keywords")),
	}
}

// Generate kalit so'zlarni yaratish
func (u *keywordUseCase) Generate(ctx context.Context, req entity.KeywordRequest) (*entity.KeywordResult, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	generator, err := u.factory.Generator(ctx, req.Provider, req.Model)
	if err != nil {
		return nil, err
	}

	log := u.log.With(
		slog.String("provider", string(generator.Provider())),
		slog.String("model", generator.Model()),
		slog.String("category", req.Category),
	)

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	started := time.Now()
	raw, err := generator.Generate(ctx, BuildInstruction(req.Category))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("request canceled")
			return nil, &entity.Error{Kind: entity.ErrCanceled, Op: "generate keywords", Cause: err}
		}
		log.Error("failed to generate keywords", sl.Err(err))
		return nil, fmt.Errorf("failed to generate keywords: %w", err)
	}

	keywords := CleanKeywords(raw)
	if len(keywords) < entity.MinKeywords {
		log.Warn("fewer keywords than requested",
			slog.Int("count", len(keywords)),
			slog.Int("expected_min", entity.MinKeywords),
		)
	}

	result := &entity.KeywordResult{
		ID:        uuid.New().String(),
		Category:  req.Category,
		Provider:  generator.Provider(),
		Model:     generator.Model(),
		Keywords:  keywords,
		Raw:       raw,
		CreatedAt: started,
		Duration:  time.Since(started),
	}

	log.Info("keywords generated",
		slog.String("id", result.ID),
		slog.Int("count", len(keywords)),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

// Providers ro'yxatdan o'tgan providerlar
func (u *keywordUseCase) Providers() []entity.Provider {
	return u.factory.Available()
}
