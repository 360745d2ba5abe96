package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tajaar/Rag-chat/internal/chunker"
	"github.com/Tajaar/Rag-chat/internal/domain"
	"github.com/Tajaar/Rag-chat/internal/embedding/tfidf"
	"github.com/Tajaar/Rag-chat/internal/index"
	"github.com/Tajaar/Rag-chat/internal/summarizer"
	"github.com/Tajaar/Rag-chat/internal/vectorstore/memory"
)

type fakeGenerator struct {
	answer     string
	err        error
	lastPrompt string
}

func (g *fakeGenerator) Generate(prompt string) (string, error) {
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.answer, nil
}

// recordingIndex fails the test if touched and can simulate faults.
type recordingIndex struct {
	t           *testing.T
	failRetr    error
	failAdd     error
	resetCalls  int
	addCalls    int
	queryCalls  int
	forbidCalls bool
}

func (r *recordingIndex) Reset() error {
	if r.forbidCalls {
		r.t.Fatal("index accessed before any document was loaded")
	}
	r.resetCalls++
	return nil
}

func (r *recordingIndex) Add(chunks []domain.Chunk) error {
	if r.forbidCalls {
		r.t.Fatal("index accessed before any document was loaded")
	}
	r.addCalls++
	return r.failAdd
}

func (r *recordingIndex) Retrieve(query string, topK int) (domain.RetrievalResult, error) {
	if r.forbidCalls {
		r.t.Fatal("index accessed before any document was loaded")
	}
	r.queryCalls++
	if r.failRetr != nil {
		return nil, r.failRetr
	}
	return nil, nil
}

func newLiveService(gen domain.Generator) *Service {
	idx := index.New(memory.NewStore(), tfidf.NewEmbedder())
	return New(chunker.NewWords(5, ""), idx, gen, summarizer.NewFrequency(2), 3)
}

func TestService_LoadDocumentChunkCount(t *testing.T) {
	s := newLiveService(&fakeGenerator{answer: "ok"})
	res, err := s.LoadDocument("The sky is blue. Grass is green.")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Chunks)
	assert.True(t, s.Loaded())
	assert.NotEmpty(t, res.Summary)
}

func TestService_AskBeforeLoad(t *testing.T) {
	ri := &recordingIndex{t: t, forbidCalls: true}
	s := New(chunker.NewWords(5, ""), ri, &fakeGenerator{}, nil, 3)

	_, err := s.AskQuestion("anything?")
	require.ErrorIs(t, err, domain.ErrNotReady)
}

func TestService_AskReturnsGeneratorAnswer(t *testing.T) {
	gen := &fakeGenerator{answer: "The sky is blue."}
	s := newLiveService(gen)
	_, err := s.LoadDocument("The sky is blue. Grass is green.")
	require.NoError(t, err)

	answer, err := s.AskQuestion("what color is the sky?")
	require.NoError(t, err)
	assert.Equal(t, "The sky is blue.", answer)
	assert.Contains(t, gen.lastPrompt, "what color is the sky?")
	assert.Contains(t, gen.lastPrompt, "sky")
}

func TestService_GeneratorFailureYieldsFallback(t *testing.T) {
	gen := &fakeGenerator{err: &domain.GenerationError{Status: 500, Err: errors.New("boom")}}
	s := newLiveService(gen)
	_, err := s.LoadDocument("The sky is blue. Grass is green.")
	require.NoError(t, err)

	answer, err := s.AskQuestion("why?")
	require.NoError(t, err)
	assert.Equal(t, FallbackAnswer, answer)
}

func TestService_RetrievalFailureYieldsNoContextAnswer(t *testing.T) {
	ri := &recordingIndex{t: t, failRetr: &domain.RetrievalError{Err: errors.New("store down")}}
	s := New(chunker.NewWords(5, ""), ri, &fakeGenerator{answer: "unused"}, nil, 3)
	_, err := s.LoadDocument("The sky is blue.")
	require.NoError(t, err)

	answer, err := s.AskQuestion("why?")
	require.NoError(t, err)
	assert.Equal(t, NoContextAnswer, answer)
}

func TestService_EmptyDocument(t *testing.T) {
	s := newLiveService(&fakeGenerator{})
	_, err := s.LoadDocument("   \n ")
	require.ErrorIs(t, err, domain.ErrEmptyDocument)
	assert.False(t, s.Loaded())
}

func TestService_PartialAddSurfacedButQueryable(t *testing.T) {
	ri := &recordingIndex{t: t, failAdd: &domain.PartialAddError{Added: 1, Total: 2, Err: errors.New("store hiccup")}}
	s := New(chunker.NewWords(1, ""), ri, &fakeGenerator{answer: "ok"}, nil, 3)

	_, err := s.LoadDocument("two words")
	var perr *domain.PartialAddError
	require.ErrorAs(t, err, &perr)
	assert.True(t, s.Loaded(), "degraded index stays queryable")
}

func TestService_ReloadReplacesDocument(t *testing.T) {
	gen := &fakeGenerator{answer: "answer"}
	s := newLiveService(gen)
	_, err := s.LoadDocument("Alpha beta gamma delta epsilon. Zeta eta theta.")
	require.NoError(t, err)
	_, err = s.LoadDocument("Completely different second document text here.")
	require.NoError(t, err)

	_, err = s.AskQuestion("different document?")
	require.NoError(t, err)
	assert.False(t, strings.Contains(gen.lastPrompt, "Alpha beta gamma"),
		"old document must not survive a reload")
}
