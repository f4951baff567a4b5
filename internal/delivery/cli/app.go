package cli

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/yourusername/longtail-keywords/config"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
	"github.com/yourusername/longtail-keywords/internal/infrastructure/gemini"
	"github.com/yourusername/longtail-keywords/internal/infrastructure/llm"
	"github.com/yourusername/longtail-keywords/internal/infrastructure/openai"
	"github.com/yourusername/longtail-keywords/internal/infrastructure/parser"
	"github.com/yourusername/longtail-keywords/internal/infrastructure/storage"
	"github.com/yourusername/longtail-keywords/internal/infrastructure/template"
	"github.com/yourusername/longtail-keywords/internal/lib/sl"
	"github.com/yourusername/longtail-keywords/internal/usecase"
)

const (
	// bot rejimida bir vaqtda provider ga ketadigan so'rovlar
	providerConcurrency = 4

	sessionTTL = 24 * time.Hour
)

// App CLI komandalar va bot uchun umumiy bog'liqliklar
type App struct {
	Config          *config.Config
	Log             *slog.Logger
	DefaultProvider entity.Provider

	Keywords usecase.KeywordUseCase
	Prompts  usecase.PromptUseCase
	Catalog  usecase.CatalogUseCase
	Sessions repository.SessionRepository

	closer io.Closer

	catalogOnce sync.Once
	catalogErr  error
}

// NewApp konfiguratsiyadan barcha komponentlarni yig'ish
func NewApp(cfg *config.Config, log *slog.Logger) (*App, error) {
	registry := llm.NewRegistry(llm.NewPacer(providerConcurrency, cfg.RequestMinInterval), log)
	registry.Register(entity.ProviderGemini, llm.ProviderConfig{
		EnvKey:       "GEMINI_API_KEY",
		APIKey:       cfg.Gemini.APIKey,
		DefaultModel: cfg.Gemini.Model,
	}, gemini.NewGeminiClient)
	registry.Register(entity.ProviderOpenAI, llm.ProviderConfig{
		EnvKey:       "OPENAI_API_KEY",
		APIKey:       cfg.OpenAI.APIKey,
		DefaultModel: cfg.OpenAI.Model,
		BaseURL:      cfg.OpenAI.BaseURL,
	}, openai.NewOpenAIClient)

	log.Debug("providers registered",
		sl.Secret("gemini_api_key", cfg.Gemini.APIKey),
		sl.Secret("openai_api_key", cfg.OpenAI.APIKey),
	)

	return newApp(cfg, log, registry, registry)
}

func newApp(cfg *config.Config, log *slog.Logger, factory repository.GeneratorFactory, closer io.Closer) (*App, error) {
	provider, err := entity.ParseProvider(cfg.DefaultProvider)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:          cfg,
		Log:             log,
		DefaultProvider: provider,
		Keywords:        usecase.NewKeywordUseCase(factory, cfg.RequestTimeout, log),
		Prompts: usecase.NewPromptUseCase(
			template.NewFileTemplateSource(cfg.PromptTemplatePath),
			cfg.PromptPlaceholder,
			log,
		),
		Catalog:  usecase.NewCatalogUseCase(storage.NewMemoryCatalogRepository(), parser.NewCatalogParser(log), log),
		Sessions: storage.NewMemorySessionRepository(provider, cfg.OpenAI.Model, sessionTTL),
		closer:   closer,
	}, nil
}

// LoadCatalog katalogni bir marta yuklash
func (a *App) LoadCatalog(ctx context.Context) error {
	a.catalogOnce.Do(func() {
		_, a.catalogErr = a.Catalog.LoadCatalog(ctx, a.Config.CatalogPath)
	})
	return a.catalogErr
}

// Close provider clientlarini yopish
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
