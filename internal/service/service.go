// Package service wires chunking, indexing and generation into the two
// operations the front-ends call: load a document, ask a question.
package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Tajaar/Rag-chat/internal/domain"
	"github.com/Tajaar/Rag-chat/internal/index"
	"github.com/Tajaar/Rag-chat/internal/prompt"
)

// FallbackAnswer is returned when the language-model backend fails.
// Backend faults never propagate to the user as raw errors.
const FallbackAnswer = "Sorry, I could not generate an answer right now. Please check that the model backend is running and try again."

// NoContextAnswer is returned when the vector store cannot be queried.
const NoContextAnswer = "No document context is available right now, so I cannot answer that question."

// LoadResult reports what a document load produced.
type LoadResult struct {
	Chunks  int
	Summary string
}

// Service is the orchestrator. The live index is its only state that
// spans queries; chunking, prompt assembly and generation are stateless
// transforms. One mutex serializes index mutation against retrieval, so
// concurrent LoadDocument calls cannot reset the collection out from
// under an in-flight add.
type Service struct {
	mu         sync.Mutex
	chunker    domain.Chunker
	index      domain.VectorIndex
	generator  domain.Generator
	summarizer domain.Summarizer
	topK       int
	loaded     bool
}

// New creates the orchestrator. summarizer may be nil; topK <= 0 falls
// back to the default retrieval depth.
func New(chunker domain.Chunker, idx domain.VectorIndex, generator domain.Generator, summarizer domain.Summarizer, topK int) *Service {
	if topK <= 0 {
		topK = index.DefaultTopK
	}
	return &Service{
		chunker:    chunker,
		index:      idx,
		generator:  generator,
		summarizer: summarizer,
		topK:       topK,
	}
}

// LoadDocument chunks the text, resets the index and repopulates it.
// Loading is replace-not-merge: whatever was indexed before is gone once
// the reset lands. A failure during add leaves a partial chunk set; the
// index stays usable in that degraded state and the error says how far
// the population got.
func (s *Service) LoadDocument(text string) (LoadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chunks, err := s.chunker.Chunk(text)
	if err != nil {
		return LoadResult{}, err
	}
	if len(chunks) == 0 {
		return LoadResult{}, domain.ErrEmptyDocument
	}
	if err := s.index.Reset(); err != nil {
		return LoadResult{}, fmt.Errorf("reset index: %w", err)
	}
	s.loaded = false
	if err := s.index.Add(chunks); err != nil {
		var perr *domain.PartialAddError
		if errors.As(err, &perr) && perr.Added > 0 {
			// degraded but queryable
			s.loaded = true
		}
		return LoadResult{Chunks: len(chunks)}, err
	}
	s.loaded = true

	result := LoadResult{Chunks: len(chunks)}
	if s.summarizer != nil {
		if summary, err := s.summarizer.Summarize(text, 0); err == nil {
			result.Summary = summary
		}
	}
	return result, nil
}

// AskQuestion retrieves the top-k chunks for the question, assembles the
// prompt and calls the generator. Backend failures are converted into
// fixed user-visible answers; the only errors returned are caller
// mistakes such as asking before any document is loaded.
func (s *Service) AskQuestion(question string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return "", domain.ErrNotReady
	}
	hits, err := s.index.Retrieve(question, s.topK)
	if err != nil {
		var rerr *domain.RetrievalError
		if errors.As(err, &rerr) {
			return NoContextAnswer, nil
		}
		return "", err
	}
	answer, err := s.generator.Generate(prompt.Assemble(question, hits.Texts()))
	if err != nil {
		var gerr *domain.GenerationError
		if errors.As(err, &gerr) {
			return FallbackAnswer, nil
		}
		return "", err
	}
	return answer, nil
}

// Loaded reports whether a document has been indexed and is queryable.
func (s *Service) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}
