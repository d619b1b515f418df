package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ai-booking-assistant/pkg/config"
)

type GeminiProvider struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiProvider(cfg *config.GeminiConfig) *GeminiProvider {
	return &GeminiProvider{
		apiKey:     cfg.APIKey,
		model:      cfg.EmbeddingModel,
		httpClient: &http.Client{},
	}
}

type embeddingRequestPart struct {
	Text string `json:"text"`
}

type embeddingRequestContent struct {
	Parts []embeddingRequestPart `json:"parts"`
}

type embeddingRequest struct {
	Model   string                  `json:"model"`
	Content embeddingRequestContent `json:"content"`
}

type embeddingResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

func (p *GeminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if p.apiKey == "" {
		return nil, &ConfigurationError{Credential: "GEMINI_API_KEY"}
	}

	reqBody := embeddingRequest{
		Model: "models/" + p.model,
		Content: embeddingRequestContent{
			Parts: []embeddingRequestPart{{Text: text}},
		},
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1/models/%s:embedContent",
		p.model,
	)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(reqJSON))
	if err != nil {
		return nil, err
	}

	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	// A rejected key must surface as a configuration problem naming the
	// credential, never as a bare provider error.
	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return nil, &ConfigurationError{
			Credential: "GEMINI_API_KEY",
			Err:        fmt.Errorf("provider rejected request, code %d, body %s", res.StatusCode, string(resBytes)),
		}
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error from gemini response, code %d, body %s", res.StatusCode, string(resBytes))
	}

	var resEmbedding embeddingResponse
	if err := json.Unmarshal(resBytes, &resEmbedding); err != nil {
		return nil, err
	}

	return resEmbedding.Embedding.Values, nil
}
