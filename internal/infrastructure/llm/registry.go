package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
	"github.com/yourusername/longtail-keywords/internal/lib/sl"
)

// SystemInstruction ikkala provider uchun umumiy rol
const SystemInstruction = "당신은 쿠팡파트너스 포스팅을 위한 롱테일 키워드 생성 전문가입니다."

// Options provider client yaratish parametrlari
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	Pacer   *Pacer
	Log     *slog.Logger
}

// Constructor provider client yaratuvchi funksiya
type Constructor func(ctx context.Context, opts Options) (repository.TextGenerator, error)

// ProviderConfig provider sozlamalari
type ProviderConfig struct {
	EnvKey       string // API kalit o'zgaruvchisi nomi (xato xabari uchun)
	APIKey       string
	DefaultModel string
	BaseURL      string
}

type registration struct {
	config      ProviderConfig
	constructor Constructor
}

// Registry providerlar ro'yxati. Clientlar (provider, model) bo'yicha keshlanadi.
type Registry struct {
	mu        sync.Mutex
	providers map[entity.Provider]registration
	clients   map[string]repository.TextGenerator
	pacer     *Pacer
	log       *slog.Logger
}

// NewRegistry yangi Registry yaratish
func NewRegistry(pacer *Pacer, log *slog.Logger) *Registry {
	return &Registry{
		providers: make(map[entity.Provider]registration),
		clients:   make(map[string]repository.TextGenerator),
		pacer:     pacer,
		log:       log.With(sl.Module("llm")),
	}
}

// Register providerni ro'yxatdan o'tkazish
func (r *Registry) Register(provider entity.Provider, cfg ProviderConfig, constructor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[provider] = registration{config: cfg, constructor: constructor}
}

// Available ro'yxatdan o'tgan providerlar (entity.Providers tartibida)
func (r *Registry) Available() []entity.Provider {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entity.Provider
	for _, p := range entity.Providers {
		if _, ok := r.providers[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Generator provider uchun client olish
func (r *Registry) Generator(ctx context.Context, provider entity.Provider, model string) (repository.TextGenerator, error) {
	provider, err := entity.ParseProvider(string(provider))
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.providers[provider]
	if !ok {
		return nil, &entity.Error{
			Kind:    entity.ErrUnavailable,
			Op:      "resolve provider",
			Message: fmt.Sprintf("%s 제공자를 사용할 수 없습니다.", provider),
		}
	}

	if reg.config.APIKey == "" {
		return nil, &entity.Error{
			Kind: entity.ErrConfig,
			Op:   "resolve provider",
			Message: fmt.Sprintf("%s 환경변수가 설정되지 않았습니다.\n환경변수를 설정하거나 .env 파일에 %s를 추가하세요.",
				reg.config.EnvKey, reg.config.EnvKey),
		}
	}

	if model == "" {
		model = reg.config.DefaultModel
	}

	key := string(provider) + "/" + model
	if client, ok := r.clients[key]; ok {
		return client, nil
	}

	client, err := reg.constructor(ctx, Options{
		APIKey:  reg.config.APIKey,
		Model:   model,
		BaseURL: reg.config.BaseURL,
		Pacer:   r.pacer,
		Log:     r.log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", provider, err)
	}

	r.log.With(
		slog.String("provider", string(provider)),
		slog.String("model", model),
		sl.Secret("api_key", reg.config.APIKey),
	).Debug("client created")

	r.clients[key] = client
	return client, nil
}

// Close yaratilgan clientlarni yopish
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.clients))
	for k := range r.clients {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var firstErr error
	for _, k := range keys {
		if c, ok := r.clients[k].(io.Closer); ok {
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		delete(r.clients, k)
	}
	return firstErr
}
