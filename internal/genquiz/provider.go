package genquiz

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/studyai-app/studyai-lambda/internal/config"
)

// Provider is a single request/response exchange with a generative model.
type Provider interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type ProviderConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
}

const (
	defaultModel       = openai.GPT4oMini
	defaultMaxTokens   = 2000
	defaultTemperature = 0.8
)

func NewProviderConfigFromEnv() ProviderConfig {
	cfg := ProviderConfig{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		Model:       os.Getenv("OPENAI_MODEL"),
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return cfg
}

type openAIProvider struct {
	cfg    ProviderConfig
	client *openai.Client
}

func NewOpenAIProvider(cfg ProviderConfig) Provider {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}

	p := &openAIProvider{cfg: cfg}
	if cfg.APIKey != "" {
		p.client = openai.NewClient(cfg.APIKey)
	}
	return p
}

func (p *openAIProvider) Complete(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)

	if p.client == nil {
		return "", ErrMissingCredential
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		log.WithError(err).Error("Chat completion request failed")
		return "", fmt.Errorf("%w: completion request failed", ErrInvalidResponse)
	}

	log.Info("Provider response received")

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in completion", ErrInvalidResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
