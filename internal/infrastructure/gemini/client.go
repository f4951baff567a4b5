package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
	"github.com/yourusername/longtail-keywords/internal/infrastructure/llm"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
	pacer  *llm.Pacer
	log    *slog.Logger
}

// NewGeminiClient yangi Gemini client yaratish
func NewGeminiClient(ctx context.Context, opts llm.Options) (repository.TextGenerator, error) {
	clientOpts := []option.ClientOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.BaseURL))
	}

	client, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(opts.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(llm.SystemInstruction)},
	}

	pacer := opts.Pacer
	if pacer == nil {
		pacer = llm.NewPacer(1, 0)
	}

	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	return &geminiClient{
		client: client,
		model:  model,
		name:   opts.Model,
		pacer:  pacer,
		log:    log.With(slog.String("provider", string(entity.ProviderGemini))),
	}, nil
}

// Provider provider nomi
func (g *geminiClient) Provider() entity.Provider {
	return entity.ProviderGemini
}

// Model ishlatilayotgan model nomi
func (g *geminiClient) Model() string {
	return g.name
}

// Generate bitta GenerateContent so'rovi
func (g *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	release, err := g.pacer.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	g.log.Debug("generate content", slog.String("model", g.name), slog.Int("prompt_length", len(prompt)))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// extractText javobdan textni ajratib olish
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no response candidates")
	}

	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				result.WriteString(string(text))
			}
		}
	}
	return result.String(), nil
}

// Close client ni yopish
func (g *geminiClient) Close() error {
	return g.client.Close()
}
