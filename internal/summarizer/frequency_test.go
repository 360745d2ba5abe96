package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequency_PicksAtMostMaxSentences(t *testing.T) {
	s := NewFrequency(2)
	text := "Cats hunt mice. Dogs chase cats. Mice eat cheese. Cheese smells strong. Cats sleep all day."
	out, err := s.Summarize(text, 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, strings.Count(out, "."), 2)
	assert.NotEmpty(t, out)
}

func TestFrequency_KeepsSourceOrder(t *testing.T) {
	s := NewFrequency(5)
	text := "First sentence here. Second sentence here. Third sentence here."
	out, err := s.Summarize(text, 5)
	require.NoError(t, err)

	first := strings.Index(out, "First")
	third := strings.Index(out, "Third")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, third)
	assert.Less(t, first, third)
}

func TestFrequency_NoSentencePunctuation(t *testing.T) {
	s := NewFrequency(3)
	out, err := s.Summarize("just a fragment without terminators", 3)
	require.NoError(t, err)
	assert.Equal(t, "just a fragment without terminators", out)
}
