package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"ai-booking-assistant/internal/models"
	"ai-booking-assistant/internal/vectorstore"
	"ai-booking-assistant/pkg/config"
	"ai-booking-assistant/pkg/embedding"
	"ai-booking-assistant/pkg/llm"

	"go.uber.org/zap"
)

// NotFoundAnswer is the literal fallback the model is instructed to return
// when the retrieved context does not cover the question.
const NotFoundAnswer = "Not found in documents."

// NoDocumentsMessage is shown when a query arrives before any ingestion.
const NoDocumentsMessage = "No documents have been indexed yet. Please upload PDFs first."

// jsonArrayPattern extracts the first bracketed array from a model reply that
// wraps JSON in prose or code fences.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// maxDoctorSuggestions caps the extraction result; the prompt asks for the
// same limit but the model is not trusted to honor it.
const maxDoctorSuggestions = 3

// RAGService answers questions and finds doctor suggestions over the
// persisted document index.
type RAGService struct {
	llm      llm.Provider
	embedder embedding.Provider
	store    *vectorstore.Store
	config   *config.RAGConfig
	logger   *zap.Logger
}

func NewRAGService(
	llmProvider llm.Provider,
	embedder embedding.Provider,
	store *vectorstore.Store,
	cfg *config.RAGConfig,
	logger *zap.Logger,
) *RAGService {
	return &RAGService{
		llm:      llmProvider,
		embedder: embedder,
		store:    store,
		config:   cfg,
		logger:   logger,
	}
}

// Search loads the index and returns the topK chunks nearest to the query.
// A missing index surfaces as vectorstore.ErrIndexNotFound.
func (s *RAGService) Search(ctx context.Context, query string, topK int) ([]vectorstore.Chunk, error) {
	index, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	queryEmbedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	return index.SearchSimilar(queryEmbedding, topK), nil
}

// Answer runs the full retrieve-then-generate pipeline for a free-form
// question. The model is constrained to the retrieved context and instructed
// to reply with NotFoundAnswer when the context does not contain the answer.
// Failures are downgraded to user-facing strings; the chat surface has no
// other error channel.
func (s *RAGService) Answer(ctx context.Context, query string) string {
	chunks, err := s.Search(ctx, query, s.config.AnswerTopK)
	if errors.Is(err, vectorstore.ErrIndexNotFound) {
		return NoDocumentsMessage
	}
	if err != nil {
		s.logger.Error("Document search failed", zap.Error(err))
		return "Sorry, I couldn't search the documents right now. Please try again later."
	}

	contextText := joinChunks(chunks)
	prompt := fmt.Sprintf(
		"Use the following context from documents to answer the question concisely.\n\n"+
			"Context:\n%s\n\n"+
			"Question: %s\n"+
			"Answer briefly and only using the context. If not found, reply: '%s'",
		contextText, query, NotFoundAnswer,
	)

	answer, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("Answer generation failed", zap.Error(err))
		return "Sorry, I couldn't generate an answer right now. Please try again later."
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return NotFoundAnswer
	}
	return answer
}

// SuggestDoctors asks the model to extract doctor records relevant to the
// query from the retrieved context. The model reply is expected to contain a
// JSON array; anything unparseable yields an empty slice, never an error, so
// flaky model output degrades to "no matches".
func (s *RAGService) SuggestDoctors(ctx context.Context, query string) ([]models.DoctorSuggestion, error) {
	chunks, err := s.Search(ctx, query, s.config.DoctorTopK)
	if err != nil {
		return nil, err
	}

	contextText := joinChunks(chunks)
	prompt := fmt.Sprintf(
		"From the following context, extract up to %d doctors most relevant to the request.\n\n"+
			"Context:\n%s\n\n"+
			"Request: %s\n\n"+
			"Reply with ONLY a JSON array. Each element must have the keys "+
			`"name", "specialization", "experience_years" (integer), "fee" and `+
			`"available_times" (array of "HH:MM" strings). `+
			"If no doctors match, reply with an empty JSON array [].",
		maxDoctorSuggestions, contextText, query,
	)

	raw, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("Doctor suggestion generation failed", zap.Error(err))
		return nil, err
	}

	return parseDoctorSuggestions(raw), nil
}

// parseDoctorSuggestions pulls the first JSON array out of a model reply and
// decodes it. Missing or malformed arrays produce an empty result.
func parseDoctorSuggestions(raw string) []models.DoctorSuggestion {
	payload := strings.TrimSpace(raw)
	if match := jsonArrayPattern.FindString(payload); match != "" {
		payload = match
	}

	var suggestions []models.DoctorSuggestion
	if err := json.Unmarshal([]byte(payload), &suggestions); err != nil {
		return nil
	}
	if len(suggestions) > maxDoctorSuggestions {
		suggestions = suggestions[:maxDoctorSuggestions]
	}

	for i := range suggestions {
		for j, t := range suggestions[i].AvailableTimes {
			suggestions[i].AvailableTimes[j] = zeroPadTime(t)
		}
	}

	return suggestions
}

func joinChunks(chunks []vectorstore.Chunk) string {
	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, c.Content)
	}
	return strings.Join(parts, "\n")
}
