// Package summarizer produces the short blurb front-ends show after a
// document is loaded.
package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var (
	sentenceRe = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)
	wordRe     = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)
)

// Frequency is an extractive summarizer: sentences are scored by the
// normalized frequency of their content words, and the best ones are
// emitted in source order.
type Frequency struct {
	maxSentences int
	stopwords    map[string]struct{}
}

func NewFrequency(maxSentences int) *Frequency {
	if maxSentences <= 0 {
		maxSentences = 3
	}
	return &Frequency{maxSentences: maxSentences, stopwords: stopwords()}
}

func (f *Frequency) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		maxSentences = f.maxSentences
	}
	sentences := sentenceRe.FindAllString(text, -1)
	if len(sentences) == 0 {
		return strings.TrimSpace(text), nil
	}
	freq := f.wordFrequencies(sentences)

	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, sent := range sentences {
		words := f.contentWords(sent)
		total := 0.0
		for _, w := range words {
			total += freq[w]
		}
		// length normalization keeps long sentences from dominating
		if n := float64(len(words)); n > 0 {
			total /= math.Sqrt(n)
		}
		ranked[i] = scored{idx: i, score: total}
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].score > ranked[b].score })

	if maxSentences > len(ranked) {
		maxSentences = len(ranked)
	}
	picked := make([]int, maxSentences)
	for i := range picked {
		picked[i] = ranked[i].idx
	}
	sort.Ints(picked)

	parts := make([]string, 0, len(picked))
	for _, idx := range picked {
		parts = append(parts, strings.TrimSpace(sentences[idx]))
	}
	return strings.Join(parts, " "), nil
}

func (f *Frequency) wordFrequencies(sentences []string) map[string]float64 {
	freq := map[string]float64{}
	for _, sent := range sentences {
		for _, w := range f.contentWords(sent) {
			freq[w]++
		}
	}
	peak := 0.0
	for _, v := range freq {
		if v > peak {
			peak = v
		}
	}
	if peak > 0 {
		for k := range freq {
			freq[k] /= peak
		}
	}
	return freq
}

func (f *Frequency) contentWords(sent string) []string {
	var out []string
	for _, w := range wordRe.FindAllString(strings.ToLower(sent), -1) {
		if _, stop := f.stopwords[w]; stop {
			continue
		}
		out = append(out, w)
	}
	return out
}

func stopwords() map[string]struct{} {
	words := strings.Fields("a an the and or but if for to of in on at by with as is are was were be been it this that these those from so such into about through not no")
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
