package usecase

import (
	"context"
	"sync"

	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
)

type fakeGenerator struct {
	mu       sync.Mutex
	provider entity.Provider
	model    string
	raw      string
	err      error
	block    chan struct{} // yopilguncha yoki ctx tugaguncha kutadi
	calls    int
	prompts  []string
}

func (f *fakeGenerator) Provider() entity.Provider { return f.provider }

func (f *fakeGenerator) Model() string { return f.model }

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.err != nil {
		return "", f.err
	}
	return f.raw, nil
}

func (f *fakeGenerator) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeFactory struct {
	generator *fakeGenerator
	err       error
	calls     int
}

func (f *fakeFactory) Generator(ctx context.Context, provider entity.Provider, model string) (repository.TextGenerator, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if model != "" {
		f.generator.model = model
	}
	f.generator.provider = provider
	return f.generator, nil
}

func (f *fakeFactory) Available() []entity.Provider {
	return []entity.Provider{entity.ProviderGemini, entity.ProviderOpenAI}
}
