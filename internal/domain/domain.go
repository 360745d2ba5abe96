package domain

// Chunk is a bounded slice of document text, the unit of retrieval.
// IDs are generated at chunk-creation time and are never reused across
// an index reset.
type Chunk struct {
	ID       string
	Text     string
	Metadata map[string]string
}

// ScoredChunk is one retrieval hit: a chunk's text and metadata together
// with its similarity to the query (higher is closer).
type ScoredChunk struct {
	Text     string
	Metadata map[string]string
	Score    float64
}

// RetrievalResult is an ordered sequence of hits, best first. It is
// ephemeral and never persisted; it may be empty when the index is empty
// or nothing clears the backend's relevance threshold.
type RetrievalResult []ScoredChunk

// Texts returns the chunk texts in rank order.
func (r RetrievalResult) Texts() []string {
	out := make([]string, len(r))
	for i, h := range r {
		out[i] = h.Text
	}
	return out
}

// Message is one turn of a chat transcript. The core produces these
// pairs; persisting them is a front-end concern.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Chunker splits raw document text into ordered chunks.
type Chunker interface {
	Chunk(text string) ([]Chunk, error)
}

// Embedder converts free text into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
// The same embedder must serve both index population and query time.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
}

// VectorIndex owns the single live collection of embedded chunks.
type VectorIndex interface {
	Reset() error
	Add(chunks []Chunk) error
	Retrieve(query string, topK int) (RetrievalResult, error)
}

// Generator sends one assembled prompt to a language-model backend and
// returns the trimmed answer text.
type Generator interface {
	Generate(prompt string) (string, error)
}

// Summarizer produces a brief summary of the provided text, shown by
// front-ends after a document loads.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}
