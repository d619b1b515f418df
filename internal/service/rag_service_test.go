package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"ai-booking-assistant/internal/vectorstore"
	"ai-booking-assistant/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) Close() error { return nil }

type fakeEmbedder struct {
	vector []float32
	err    error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.vector, f.err
}

func newTestRAGService(t *testing.T, llmReply string) (*RAGService, *vectorstore.Store) {
	t.Helper()
	store := vectorstore.NewStore(filepath.Join(t.TempDir(), "index.json"), zap.NewNop())
	cfg := &config.RAGConfig{AnswerTopK: 3, DoctorTopK: 4}
	svc := NewRAGService(
		&fakeLLM{reply: llmReply},
		&fakeEmbedder{vector: []float32{1, 0}},
		store,
		cfg,
		zap.NewNop(),
	)
	return svc, store
}

func saveTestIndex(t *testing.T, store *vectorstore.Store) {
	t.Helper()
	err := store.Save(&vectorstore.Index{Chunks: []vectorstore.Chunk{
		{ID: "c1", Content: "The clinic opens at 9 AM.", Position: 0, Embedding: []float32{1, 0}},
		{ID: "c2", Content: "Dr. X is a cardiologist.", Position: 1, Embedding: []float32{0, 1}},
	}})
	require.NoError(t, err)
}

func TestAnswerWithoutIndex(t *testing.T) {
	svc, _ := newTestRAGService(t, "irrelevant")

	answer := svc.Answer(context.Background(), "clinic hours")

	assert.Equal(t, NoDocumentsMessage, answer)
}

func TestAnswerReturnsModelReply(t *testing.T) {
	svc, store := newTestRAGService(t, "  The clinic opens at 9 AM.  ")
	saveTestIndex(t, store)

	answer := svc.Answer(context.Background(), "clinic hours")

	assert.Equal(t, "The clinic opens at 9 AM.", answer)
}

func TestAnswerEmptyReplyFallsBack(t *testing.T) {
	svc, store := newTestRAGService(t, "   ")
	saveTestIndex(t, store)

	answer := svc.Answer(context.Background(), "clinic hours")

	assert.Equal(t, NotFoundAnswer, answer)
}

func TestSuggestDoctorsParsesProseWrappedJSON(t *testing.T) {
	reply := `Sure! [{"name":"Dr. X","specialization":"Cardiology","experience_years":5,` +
		`"fee":"$50","available_times":["9:0"]}] Hope this helps`
	svc, store := newTestRAGService(t, reply)
	saveTestIndex(t, store)

	suggestions, err := svc.SuggestDoctors(context.Background(), "find a cardiologist")

	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Dr. X", suggestions[0].Name)
	assert.Equal(t, "Cardiology", suggestions[0].Specialization)
	assert.Equal(t, 5, suggestions[0].ExperienceYears)
	assert.Equal(t, "$50", suggestions[0].Fee)
	assert.Equal(t, []string{"009:0"}, suggestions[0].AvailableTimes)
}

func TestSuggestDoctorsCapsResultCount(t *testing.T) {
	reply := `[{"name":"Dr. A"},{"name":"Dr. B"},{"name":"Dr. C"},{"name":"Dr. D"},{"name":"Dr. E"}]`
	svc, store := newTestRAGService(t, reply)
	saveTestIndex(t, store)

	suggestions, err := svc.SuggestDoctors(context.Background(), "find a doctor")

	require.NoError(t, err)
	require.Len(t, suggestions, maxDoctorSuggestions)
	assert.Equal(t, "Dr. A", suggestions[0].Name)
	assert.Equal(t, "Dr. C", suggestions[2].Name)
}

func TestSuggestDoctorsMalformedReplyYieldsEmpty(t *testing.T) {
	svc, store := newTestRAGService(t, "I have no idea, sorry!")
	saveTestIndex(t, store)

	suggestions, err := svc.SuggestDoctors(context.Background(), "find a doctor")

	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestDoctorsWithoutIndex(t *testing.T) {
	svc, _ := newTestRAGService(t, "irrelevant")

	_, err := svc.SuggestDoctors(context.Background(), "find a doctor")

	assert.True(t, errors.Is(err, vectorstore.ErrIndexNotFound))
}

func TestParseDoctorSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{"plain array", `[{"name":"A"},{"name":"B"}]`, 2},
		{"code fenced", "```json\n[{\"name\":\"A\"}]\n```", 1},
		{"empty array", "[]", 0},
		{"no array at all", "nothing here", 0},
		{"broken json", `[{"name":}]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, parseDoctorSuggestions(tt.raw), tt.expected)
		})
	}
}

func TestSearchRanksByCosineDistance(t *testing.T) {
	svc, store := newTestRAGService(t, "irrelevant")
	saveTestIndex(t, store)

	chunks, err := svc.Search(context.Background(), "anything", 1)

	require.NoError(t, err)
	require.Len(t, chunks, 1)
	// Query embedding is [1,0]; the first chunk matches it exactly
	assert.Equal(t, "c1", chunks[0].ID)
}
