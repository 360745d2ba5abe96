// Package memory provides a brute-force in-memory vector store.
package memory

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/Tajaar/Rag-chat/internal/domain"
)

// Store keeps vectors in process memory and searches them with exact
// cosine similarity, so result ordering is fully deterministic. Ties are
// broken by insertion order.
type Store struct {
	mu        sync.RWMutex
	exists    bool
	dimension int
	chunks    []domain.Chunk
	vectors   [][]float64
}

func NewStore() *Store { return &Store{} }

func (s *Store) EnsureCollection(dimension int) (bool, error) {
	if dimension <= 0 {
		return false, errors.New("memory: invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exists {
		if dimension != s.dimension {
			return false, fmt.Errorf("memory: collection has dimension %d, requested %d", s.dimension, dimension)
		}
		return false, nil
	}
	s.exists = true
	s.dimension = dimension
	s.chunks = nil
	s.vectors = nil
	return true, nil
}

func (s *Store) DropCollection() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exists = false
	s.dimension = 0
	s.chunks = nil
	s.vectors = nil
	return nil
}

func (s *Store) Add(chunks []domain.Chunk, vectors [][]float64) error {
	if len(chunks) != len(vectors) {
		return errors.New("memory: chunks and vectors length mismatch")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.exists {
		return errors.New("memory: collection does not exist")
	}
	for _, v := range vectors {
		if len(v) != s.dimension {
			return errors.New("memory: vector dimension mismatch")
		}
	}
	s.chunks = append(s.chunks, chunks...)
	s.vectors = append(s.vectors, vectors...)
	return nil
}

func (s *Store) Query(vector []float64, topK int) ([]domain.ScoredChunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if topK <= 0 || !s.exists || len(s.chunks) == 0 {
		return nil, nil
	}
	idxs := make([]int, len(s.vectors))
	scores := make([]float64, len(s.vectors))
	for i, v := range s.vectors {
		idxs[i] = i
		scores[i] = cosine(v, vector)
	}
	sort.SliceStable(idxs, func(a, b int) bool { return scores[idxs[a]] > scores[idxs[b]] })
	if topK > len(idxs) {
		topK = len(idxs)
	}
	out := make([]domain.ScoredChunk, 0, topK)
	for _, i := range idxs[:topK] {
		out = append(out, domain.ScoredChunk{
			Text:     s.chunks[i].Text,
			Metadata: s.chunks[i].Metadata,
			Score:    scores[i],
		})
	}
	return out, nil
}

// Len reports the number of stored chunks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

func cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
