package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_ContextBeforeQuestion(t *testing.T) {
	out := Assemble("what color is the sky?", []string{"The sky is blue."})

	ctxPos := strings.Index(out, "The sky is blue.")
	qPos := strings.Index(out, "what color is the sky?")
	require.NotEqual(t, -1, ctxPos)
	require.NotEqual(t, -1, qPos)
	assert.Less(t, ctxPos, qPos)
}

func TestAssemble_JoinsContextsWithBlankLines(t *testing.T) {
	out := Assemble("q", []string{"first", "second", "third"})
	assert.Contains(t, out, "first\n\nsecond\n\nthird")
}

func TestAssemble_EmptyContexts(t *testing.T) {
	out := Assemble("q", nil)
	assert.Contains(t, out, "CONTEXT:\n\n")
	assert.Contains(t, out, "QUESTION:\nq")
}

func TestAssemble_InstructsStrictGrounding(t *testing.T) {
	out := Assemble("q", []string{"ctx"})
	assert.Contains(t, out, "strictly using only the context")
}
