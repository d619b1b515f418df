package vectorstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// ErrIndexNotFound means no documents have been ingested yet. Callers surface
// a specific "no documents indexed" message instead of a generic failure.
var ErrIndexNotFound = errors.New("vector index not found")

// Chunk is an immutable span of extracted text plus its embedding. Chunks are
// created at ingestion time and replaced wholesale on re-ingestion.
type Chunk struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Position  int       `json:"position"`
	Embedding []float32 `json:"embedding"`
}

// Index is the searchable collection of chunks for one ingestion batch.
type Index struct {
	Chunks []Chunk `json:"chunks"`
}

// SearchSimilar returns up to topK chunks ordered by ascending cosine
// distance to the query embedding.
func (idx *Index) SearchSimilar(embedding []float32, topK int) []Chunk {
	type scored struct {
		chunk    Chunk
		distance float64
	}

	results := make([]scored, 0, len(idx.Chunks))
	for _, chunk := range idx.Chunks {
		results = append(results, scored{
			chunk:    chunk,
			distance: 1 - cosineSimilarity(embedding, chunk.Embedding),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].distance < results[j].distance
	})

	if len(results) > topK {
		results = results[:topK]
	}

	chunks := make([]Chunk, len(results))
	for i, r := range results {
		chunks[i] = r.chunk
	}
	return chunks
}

// Store persists the index at a fixed path. Saving is a full replace; there
// are no incremental update semantics.
type Store struct {
	path   string
	logger *zap.Logger
}

func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

func (s *Store) Save(index *Index) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	data, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	// Write-then-rename so a crashed save never leaves a truncated index
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to replace index: %w", err)
	}

	s.logger.Info("Vector index saved",
		zap.String("path", s.path),
		zap.Int("chunks", len(index.Chunks)),
	)

	return nil
}

func (s *Store) Load() (*Index, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrIndexNotFound
		}
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	var index Index
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to decode index: %w", err)
	}

	return &index, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i] * b[i])
		normA += float64(a[i] * a[i])
		normB += float64(b[i] * b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
