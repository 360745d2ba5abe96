package chunker

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/Tajaar/Rag-chat/internal/domain"
)

// Sentences groups whole sentences into chunks with sentence-level
// overlap. Useful when answers tend to live inside single sentences and
// character budgets matter less than sentence integrity.
type Sentences struct {
	perChunk int
	overlap  int
	splitter *regexp.Regexp
}

func NewSentences(perChunk, overlap int) *Sentences {
	if perChunk <= 0 {
		perChunk = 5
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= perChunk {
		overlap = perChunk - 1
	}
	return &Sentences{
		perChunk: perChunk,
		overlap:  overlap,
		splitter: regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`),
	}
}

func (c *Sentences) Chunk(text string) ([]domain.Chunk, error) {
	sentences := c.splitter.FindAllString(text, -1)
	if len(sentences) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil, nil
		}
		sentences = []string{trimmed}
	}
	for i := range sentences {
		sentences[i] = strings.TrimSpace(sentences[i])
	}
	var chunks []domain.Chunk
	i := 0
	for i < len(sentences) {
		end := i + c.perChunk
		if end > len(sentences) {
			end = len(sentences)
		}
		chunks = append(chunks, domain.Chunk{
			ID:   uuid.New().String(),
			Text: strings.Join(sentences[i:end], " "),
		})
		if end == len(sentences) {
			break
		}
		i = end - c.overlap
	}
	return chunks, nil
}
