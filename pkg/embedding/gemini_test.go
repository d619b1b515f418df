package embedding

import (
	"context"
	"errors"
	"testing"

	"ai-booking-assistant/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedWithoutAPIKey(t *testing.T) {
	provider := NewGeminiProvider(&config.GeminiConfig{EmbeddingModel: "text-embedding-004"})

	_, err := provider.Embed(context.Background(), "some text")

	var confErr *ConfigurationError
	require.True(t, errors.As(err, &confErr))
	assert.Equal(t, "GEMINI_API_KEY", confErr.Credential)
	assert.Contains(t, confErr.Error(), "GEMINI_API_KEY")
}
