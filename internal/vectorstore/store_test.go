package vectorstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "data", "index.json"), zap.NewNop())
}

func TestStoreLoadMissingIndex(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load()

	assert.True(t, errors.Is(err, ErrIndexNotFound))
}

func TestStoreSaveLoadRoundtrip(t *testing.T) {
	store := newTestStore(t)
	index := &Index{Chunks: []Chunk{
		{ID: "a", Content: "first", Position: 0, Embedding: []float32{0.1, 0.2}},
		{ID: "b", Content: "second", Position: 1, Embedding: []float32{0.3, 0.4}},
	}}

	require.NoError(t, store.Save(index))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, index.Chunks, loaded.Chunks)
}

func TestStoreSaveReplacesPreviousIndex(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(&Index{Chunks: []Chunk{
		{ID: "old", Content: "stale", Embedding: []float32{1}},
	}}))
	require.NoError(t, store.Save(&Index{Chunks: []Chunk{
		{ID: "new", Content: "fresh", Embedding: []float32{1}},
	}}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Chunks, 1)
	assert.Equal(t, "new", loaded.Chunks[0].ID)
}

func TestSearchSimilarOrdersByDistance(t *testing.T) {
	index := &Index{Chunks: []Chunk{
		{ID: "far", Embedding: []float32{0, 1}},
		{ID: "near", Embedding: []float32{1, 0}},
		{ID: "middle", Embedding: []float32{1, 1}},
	}}

	results := index.SearchSimilar([]float32{1, 0}, 2)

	require.Len(t, results, 2)
	assert.Equal(t, "near", results[0].ID)
	assert.Equal(t, "middle", results[1].ID)
}

func TestSearchSimilarTopKLargerThanIndex(t *testing.T) {
	index := &Index{Chunks: []Chunk{
		{ID: "only", Embedding: []float32{1, 0}},
	}}

	results := index.SearchSimilar([]float32{1, 0}, 10)

	assert.Len(t, results, 1)
}

func TestSearchSimilarEmptyIndex(t *testing.T) {
	index := &Index{}

	assert.Empty(t, index.SearchSimilar([]float32{1, 0}, 3))
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{1, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	// Mismatched lengths and zero vectors degrade to zero similarity
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1}, []float32{1, 0}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 0}))
}
