package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
	"github.com/yourusername/longtail-keywords/internal/lib/logger"
)

type stubGenerator struct {
	provider entity.Provider
	model    string
	closed   bool
}

func (s *stubGenerator) Provider() entity.Provider { return s.provider }

func (s *stubGenerator) Model() string { return s.model }

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return prompt, nil
}

func (s *stubGenerator) Close() error {
	s.closed = true
	return nil
}

func newTestRegistry() (*Registry, *int) {
	created := 0
	r := NewRegistry(NewPacer(1, 0), logger.Discard())
	r.Register(entity.ProviderOpenAI, ProviderConfig{
		EnvKey:       "OPENAI_API_KEY",
		APIKey:       "sk-test",
		DefaultModel: "gpt-4o",
	}, func(ctx context.Context, opts Options) (repository.TextGenerator, error) {
		created++
		return &stubGenerator{provider: entity.ProviderOpenAI, model: opts.Model}, nil
	})
	r.Register(entity.ProviderGemini, ProviderConfig{
		EnvKey: "GEMINI_API_KEY",
	}, func(ctx context.Context, opts Options) (repository.TextGenerator, error) {
		return nil, errors.New("must not be called")
	})
	return r, &created
}

func TestRegistryGeneratorCachesByModel(t *testing.T) {
	r, created := newTestRegistry()
	ctx := context.Background()

	g1, err := r.Generator(ctx, "openai", "")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", g1.(*stubGenerator).model)

	g2, err := r.Generator(ctx, entity.ProviderOpenAI, "gpt-4o")
	require.NoError(t, err)
	assert.Same(t, g1, g2)

	_, err = r.Generator(ctx, entity.ProviderOpenAI, "o1")
	require.NoError(t, err)
	assert.Equal(t, 2, *created)
}

func TestRegistryMissingKeyIsConfigError(t *testing.T) {
	r, _ := newTestRegistry()

	_, err := r.Generator(context.Background(), entity.ProviderGemini, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrConfig)
	assert.Contains(t, entity.Describe(err), "GEMINI_API_KEY 환경변수가 설정되지 않았습니다.")
}

func TestRegistryUnregisteredIsUnavailable(t *testing.T) {
	r := NewRegistry(NewPacer(1, 0), logger.Discard())

	_, err := r.Generator(context.Background(), entity.ProviderGemini, "")
	assert.ErrorIs(t, err, entity.ErrUnavailable)
	assert.Empty(t, r.Available())
}

func TestRegistryUnknownProvider(t *testing.T) {
	r, _ := newTestRegistry()

	_, err := r.Generator(context.Background(), "mistral", "")
	assert.ErrorIs(t, err, entity.ErrUnknownProvider)
}

func TestRegistryAvailableOrderAndClose(t *testing.T) {
	r, _ := newTestRegistry()
	assert.Equal(t, []entity.Provider{entity.ProviderGemini, entity.ProviderOpenAI}, r.Available())

	g, err := r.Generator(context.Background(), entity.ProviderOpenAI, "")
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.True(t, g.(*stubGenerator).closed)
}
