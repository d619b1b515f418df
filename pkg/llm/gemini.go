package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ai-booking-assistant/pkg/config"

	"go.uber.org/zap"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

type GeminiProvider struct {
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewGeminiProvider(cfg *config.GeminiConfig, logger *zap.Logger) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	return &GeminiProvider{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{},
		logger:     logger,
	}, nil
}

type geminiRequestPart struct {
	Text string `json:"text"`
}

type geminiRequestContent struct {
	Parts []geminiRequestPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiRequestContent `json:"contents"`
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiRequestContent{
			{Parts: []geminiRequestPart{{Text: prompt}}},
		},
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf(geminiEndpoint, p.model)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(reqJSON))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("error from gemini response, code %d, body %s", res.StatusCode, string(resBytes))
	}

	// Candidate content is decoded loosely: the parts layout has shifted
	// across API versions, so flattening goes through CoerceText.
	var genResp struct {
		Candidates []struct {
			Content interface{} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(resBytes, &genResp); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}

	if len(genResp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in gemini response")
	}

	text := CoerceText(genResp.Candidates[0].Content)
	p.logger.Debug("Gemini generation completed", zap.Int("text_length", len(text)))

	return text, nil
}

func (p *GeminiProvider) Close() error {
	return nil
}
