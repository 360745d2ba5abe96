package chunker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Tajaar/Rag-chat/internal/domain"
)

// defaultSeparators is the split priority: paragraph, line, sentence
// terminators, then word breaks.
var defaultSeparators = []string{"\n\n", "\n", ".", "!", "?", " "}

// Recursive splits text on a priority list of separators, keeping chunks
// at or under chunkSize characters, then re-merges adjacent pieces so
// consecutive chunks share chunkOverlap characters at the boundary.
type Recursive struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
}

func NewRecursive(chunkSize, chunkOverlap int) *Recursive {
	if chunkOverlap < 0 {
		chunkOverlap = 0
	}
	if chunkSize > 0 && chunkOverlap >= chunkSize {
		// equal-or-larger overlap would never make progress
		chunkOverlap = chunkSize / 4
	}
	return &Recursive{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   defaultSeparators,
	}
}

func (c *Recursive) Chunk(text string) ([]domain.Chunk, error) {
	if c.chunkSize <= 0 {
		return nil, &domain.ChunkParamsError{Size: c.chunkSize, Overlap: c.chunkOverlap, Reason: "chunk size must be positive"}
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var chunks []domain.Chunk
	for _, piece := range c.merge(c.fragments(text, c.separators)) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		chunks = append(chunks, domain.Chunk{
			ID:   uuid.New().String(),
			Text: piece,
		})
	}
	return chunks, nil
}

// fragments recursively splits text until every piece fits chunkSize,
// falling through the separator priority list and finally hard-cutting.
func (c *Recursive) fragments(text string, separators []string) []string {
	if len(text) <= c.chunkSize {
		return []string{text}
	}
	for i, sep := range separators {
		if !strings.Contains(text, sep) {
			continue
		}
		var out []string
		for _, piece := range strings.SplitAfter(text, sep) {
			if piece == "" {
				continue
			}
			if len(piece) > c.chunkSize {
				out = append(out, c.fragments(piece, separators[i+1:])...)
			} else {
				out = append(out, piece)
			}
		}
		return out
	}
	// no separator left: hard cut
	var out []string
	for start := 0; start < len(text); start += c.chunkSize {
		end := start + c.chunkSize
		if end > len(text) {
			end = len(text)
		}
		out = append(out, text[start:end])
	}
	return out
}

// merge packs adjacent fragments into chunks of at most chunkSize
// characters, seeding each new chunk with the tail of the previous one.
func (c *Recursive) merge(pieces []string) []string {
	var merged []string
	var cur strings.Builder
	for _, p := range pieces {
		if cur.Len() > 0 && cur.Len()+len(p) > c.chunkSize {
			chunk := cur.String()
			merged = append(merged, chunk)
			cur.Reset()
			if c.chunkOverlap > 0 {
				tail := chunk
				if len(tail) > c.chunkOverlap {
					tail = tail[len(tail)-c.chunkOverlap:]
				}
				cur.WriteString(tail)
			}
		}
		cur.WriteString(p)
	}
	if strings.TrimSpace(cur.String()) != "" {
		merged = append(merged, cur.String())
	}
	return merged
}
