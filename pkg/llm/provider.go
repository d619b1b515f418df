package llm

import (
	"context"
	"fmt"
	"strings"

	"ai-booking-assistant/pkg/config"
	"ai-booking-assistant/pkg/llm/gigachat"

	"go.uber.org/zap"
)

// Provider generates a plain-text completion for a prompt. Calls are blocking
// and honor ctx cancellation; no retry logic lives at this layer.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}

// New builds the provider selected by LLM_PROVIDER.
func New(cfg *config.Config, logger *zap.Logger) (Provider, error) {
	switch cfg.LLM.Provider {
	case "gemini", "":
		return NewGeminiProvider(&cfg.Gemini, logger)
	case "gigachat":
		return gigachat.NewProvider(&cfg.GigaChat, logger)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLM.Provider)
	}
}

// CoerceText flattens an arbitrarily shaped model payload into plain text.
// Provider responses vary: a bare string, a list of parts, or nested
// content/text/parts objects. Unknown shapes fall back to fmt.Sprint.
func CoerceText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := CoerceText(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	case map[string]interface{}:
		if text, ok := val["text"]; ok {
			return CoerceText(text)
		}
		if content, ok := val["content"]; ok {
			return CoerceText(content)
		}
		if parts, ok := val["parts"]; ok {
			return CoerceText(parts)
		}
		return fmt.Sprint(val)
	default:
		return fmt.Sprint(val)
	}
}
