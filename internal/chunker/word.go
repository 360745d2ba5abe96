package chunker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Tajaar/Rag-chat/internal/domain"
)

// Words splits text into fixed-size word-count windows with no overlap.
// Every window is joined with single spaces, so concatenating all chunks'
// words in order reproduces the source word sequence exactly. The trailing
// partial window is kept.
type Words struct {
	chunkSize int
	source    string
}

func NewWords(chunkSize int, source string) *Words {
	if source == "" {
		source = "uploaded"
	}
	return &Words{chunkSize: chunkSize, source: source}
}

func (c *Words) Chunk(text string) ([]domain.Chunk, error) {
	if c.chunkSize <= 0 {
		return nil, &domain.ChunkParamsError{Size: c.chunkSize, Reason: "chunk size must be positive"}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}
	chunks := make([]domain.Chunk, 0, len(words)/c.chunkSize+1)
	for i := 0; i < len(words); i += c.chunkSize {
		end := i + c.chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, domain.Chunk{
			ID:       uuid.New().String(),
			Text:     strings.Join(words[i:end], " "),
			Metadata: map[string]string{"source": c.source},
		})
	}
	return chunks, nil
}
