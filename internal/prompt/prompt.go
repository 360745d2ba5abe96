// Package prompt renders the context-constrained prompt sent to the
// language model.
package prompt

import "strings"

// template places CONTEXT before QUESTION: chat-style models weight the
// trailing portion of the prompt most heavily, so the question sits last.
const template = `You are a helpful assistant. Answer the question strictly using only the context below.

CONTEXT:
%CONTEXT%

QUESTION:
%QUESTION%

STRUCTURED ANSWER:
- Provide bullet points, tables, or well-formatted text if necessary.
- Keep it concise and relevant to the context.
- If the context does not contain the answer, say so instead of guessing.`

// Assemble renders the prompt for one question over the retrieved
// contexts. Contexts are joined with blank lines; an empty context list
// produces an empty context block so the model is steered to admit it
// has nothing to ground on.
func Assemble(question string, contexts []string) string {
	block := strings.Join(contexts, "\n\n")
	out := strings.Replace(template, "%CONTEXT%", block, 1)
	return strings.Replace(out, "%QUESTION%", question, 1)
}
