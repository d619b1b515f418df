package gigachat

import (
	"context"
	"fmt"

	"ai-booking-assistant/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// Provider wraps the GigaChat SDK behind the same Generate contract as the
// Gemini provider, for deployments where Gemini is unreachable.
type Provider struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func NewProvider(cfg *config.GigaChatConfig, logger *zap.Logger) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GIGACHAT_API_KEY is not set")
	}

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(context.Background(), cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.Temperature = 0.3

	return &Provider{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := p.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *Provider) Close() error {
	if p.client != nil {
		p.client.Close()
	}
	return nil
}
