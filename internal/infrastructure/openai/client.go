package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
	"github.com/yourusername/longtail-keywords/internal/infrastructure/llm"
)

// temperature reasoning bo'lmagan modellar uchun
const temperature = 0.7

type openaiClient struct {
	client *goopenai.Client
	model  string
	pacer  *llm.Pacer
	log    *slog.Logger
}

// NewOpenAIClient yangi OpenAI client yaratish
func NewOpenAIClient(_ context.Context, opts llm.Options) (repository.TextGenerator, error) {
	if opts.Model == "" {
		return nil, errors.New("openai model is empty")
	}

	conf := goopenai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		conf.BaseURL = opts.BaseURL
	}

	pacer := opts.Pacer
	if pacer == nil {
		pacer = llm.NewPacer(1, 0)
	}

	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	return &openaiClient{
		client: goopenai.NewClientWithConfig(conf),
		model:  opts.Model,
		pacer:  pacer,
		log:    log.With(slog.String("provider", string(entity.ProviderOpenAI))),
	}, nil
}

// Provider provider nomi
func (c *openaiClient) Provider() entity.Provider {
	return entity.ProviderOpenAI
}

// Model ishlatilayotgan model nomi
func (c *openaiClient) Model() string {
	return c.model
}

// Generate bitta chat completion so'rovi
func (c *openaiClient) Generate(ctx context.Context, prompt string) (string, error) {
	release, err := c.pacer.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	c.log.Debug("chat completion", slog.String("model", c.model), slog.Int("prompt_length", len(prompt)))

	resp, err := c.client.CreateChatCompletion(ctx, buildRequest(c.model, prompt))
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// buildRequest o1/o3 modellari temperature parametrini qo'llab-quvvatlamaydi
func buildRequest(model, prompt string) goopenai.ChatCompletionRequest {
	req := goopenai.ChatCompletionRequest{
		Model: model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: llm.SystemInstruction},
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if !entity.IsReasoningModel(model) {
		req.Temperature = temperature
	}
	return req
}
