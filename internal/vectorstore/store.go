package vectorstore

import "github.com/Tajaar/Rag-chat/internal/domain"

// Store is a named-collection vector store. One logical collection holds
// the current document's chunks; "new document" means drop and recreate,
// never merge.
type Store interface {
	// EnsureCollection creates the collection if it does not exist and
	// reports whether it had to be created.
	EnsureCollection(dimension int) (created bool, err error)
	// DropCollection removes the collection. A missing collection is
	// not an error.
	DropCollection() error
	// Add inserts chunks with their embedding vectors.
	Add(chunks []domain.Chunk, vectors [][]float64) error
	// Query returns up to topK stored chunks ordered by descending
	// similarity to the vector. A missing or empty collection yields an
	// empty result.
	Query(vector []float64, topK int) ([]domain.ScoredChunk, error)
}
