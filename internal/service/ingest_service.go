package service

import (
	"context"
	"fmt"
	"strings"

	"ai-booking-assistant/internal/vectorstore"
	"ai-booking-assistant/pkg/config"
	"ai-booking-assistant/pkg/embedding"

	"github.com/gen2brain/go-fitz"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IngestService builds the document index: PDF text extraction, chunking,
// embedding and persistence. Ingestion replaces any existing index wholesale;
// callers must serialize it against searches.
type IngestService struct {
	embedder embedding.Provider
	store    *vectorstore.Store
	config   *config.RAGConfig
	logger   *zap.Logger
}

func NewIngestService(
	embedder embedding.Provider,
	store *vectorstore.Store,
	cfg *config.RAGConfig,
	logger *zap.Logger,
) *IngestService {
	return &IngestService{
		embedder: embedder,
		store:    store,
		config:   cfg,
		logger:   logger,
	}
}

// Ingest extracts text from the given PDF blobs, chunks it, embeds every
// chunk and persists the result. Returns the number of chunks indexed.
// Unreadable documents and pages are skipped without failing the batch; a
// rejected embedding credential surfaces as embedding.ConfigurationError.
func (s *IngestService) Ingest(ctx context.Context, documents [][]byte) (int, error) {
	var texts []string
	for i, doc := range documents {
		text, err := s.extractText(doc)
		if err != nil {
			s.logger.Warn("Skipping unreadable document",
				zap.Int("document", i),
				zap.Error(err),
			)
			continue
		}
		if text != "" {
			texts = append(texts, text)
		}
	}

	allText := sanitizeUTF8(strings.Join(texts, "\n"))
	chunks := splitText(allText, s.config.ChunkSize, s.config.ChunkOverlap)

	index := &vectorstore.Index{}
	for i, content := range chunks {
		vector, err := s.embedder.Embed(ctx, content)
		if err != nil {
			return 0, fmt.Errorf("failed to embed chunk %d: %w", i, err)
		}
		index.Chunks = append(index.Chunks, vectorstore.Chunk{
			ID:        uuid.New().String(),
			Content:   content,
			Position:  i,
			Embedding: vector,
		})
	}

	if err := s.store.Save(index); err != nil {
		return 0, fmt.Errorf("failed to persist index: %w", err)
	}

	s.logger.Info("Documents ingested",
		zap.Int("documents", len(documents)),
		zap.Int("chunks", len(index.Chunks)),
	)

	return len(index.Chunks), nil
}

// extractText pulls plain text out of a PDF. Pages without extractable text
// are skipped.
func (s *IngestService) extractText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var textBuilder strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.Error(err),
			)
			continue
		}
		if pageText != "" {
			textBuilder.WriteString(pageText)
			textBuilder.WriteString("\n")
		}
	}

	return strings.TrimSpace(textBuilder.String()), nil
}
