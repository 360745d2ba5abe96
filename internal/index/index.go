// Package index owns the lifecycle of the single live chunk collection:
// reset, bulk add with embedding, and top-k retrieval.
package index

import (
	"fmt"

	"github.com/Tajaar/Rag-chat/internal/domain"
	"github.com/Tajaar/Rag-chat/internal/vectorstore"
)

// DefaultTopK is the retrieval depth used when the caller passes none.
const DefaultTopK = 3

// insertBatchSize bounds one store write so a backend failure partway
// through a population leaves earlier batches queryable.
const insertBatchSize = 64

// Index binds one vector store collection to one embedder. The same
// embedder serves population and query time; swapping it mid-life would
// invalidate every stored similarity. Corpus preparation runs once per
// collection lifetime, so chunks from later Adds and every query embed
// in the space established by the first population.
type Index struct {
	store    vectorstore.Store
	embedder domain.Embedder
	ids      map[string]struct{}
	prepared bool
}

func New(store vectorstore.Store, embedder domain.Embedder) *Index {
	return &Index{
		store:    store,
		embedder: embedder,
		ids:      make(map[string]struct{}),
	}
}

// Reset drops the collection. It is idempotent: dropping a missing or
// already-empty collection succeeds. The collection is recreated on the
// next Add, when the embedding dimension is known.
func (x *Index) Reset() error {
	if err := x.store.DropCollection(); err != nil {
		return &domain.RetrievalError{Err: err}
	}
	x.ids = make(map[string]struct{})
	x.prepared = false
	return nil
}

// Add embeds every chunk and inserts it into the collection. Chunks with
// missing metadata are default-filled; id collisions are a programming
// error, not a retryable condition. Ids are registered only once their
// batch has landed, so a pre-insert failure can be retried with the same
// chunks. Corpus preparation happens on the first Add after a Reset;
// later Adds embed in that established space. A failure partway through
// leaves the collection with a partial chunk set, reported via
// PartialAddError.
func (x *Index) Add(chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	texts := make([]string, len(chunks))
	seen := make(map[string]struct{}, len(chunks))
	for i, ch := range chunks {
		if ch.ID == "" {
			return &domain.IndexError{Op: "add", Msg: "chunk with empty id"}
		}
		if _, exists := x.ids[ch.ID]; exists {
			return &domain.IndexError{Op: "add", Msg: fmt.Sprintf("duplicate chunk id %s", ch.ID)}
		}
		if _, exists := seen[ch.ID]; exists {
			return &domain.IndexError{Op: "add", Msg: fmt.Sprintf("duplicate chunk id %s", ch.ID)}
		}
		seen[ch.ID] = struct{}{}
		if len(ch.Metadata) == 0 {
			// some vector-store backends reject empty metadata maps
			chunks[i].Metadata = map[string]string{"source": "unknown"}
		}
		texts[i] = ch.Text
	}
	if !x.prepared {
		if err := x.embedder.Prepare(texts); err != nil {
			return &domain.PartialAddError{Added: 0, Total: len(chunks), Err: err}
		}
		x.prepared = true
	}
	vectors := make([][]float64, len(chunks))
	for i, text := range texts {
		vec, err := x.embedder.Embed(text)
		if err != nil {
			return &domain.PartialAddError{Added: 0, Total: len(chunks), Err: err}
		}
		vectors[i] = vec
	}
	if _, err := x.store.EnsureCollection(x.embedder.Dimension()); err != nil {
		return &domain.PartialAddError{Added: 0, Total: len(chunks), Err: err}
	}
	for start := 0; start < len(chunks); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		if err := x.store.Add(chunks[start:end], vectors[start:end]); err != nil {
			return &domain.PartialAddError{Added: start, Total: len(chunks), Err: err}
		}
		for _, ch := range chunks[start:end] {
			x.ids[ch.ID] = struct{}{}
		}
	}
	return nil
}

// Retrieve embeds the query and returns up to topK chunks ordered by
// descending similarity. An empty or missing collection yields an empty
// result, not an error.
func (x *Index) Retrieve(query string, topK int) (domain.RetrievalResult, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}
	vec, err := x.embedder.Embed(query)
	if err != nil {
		return nil, &domain.RetrievalError{Err: err}
	}
	hits, err := x.store.Query(vec, topK)
	if err != nil {
		return nil, &domain.RetrievalError{Err: err}
	}
	return hits, nil
}
