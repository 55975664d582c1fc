package matching

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/hiresight/talentd/internal/types"
)

// maxVocabulary bounds the TF-IDF vector space.
const maxVocabulary = 5000

// similarityStopWords filters common English words that add noise to text matching.
var similarityStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "such": true, "any": true,
	"his": true, "her": true, "had": true, "out": true, "when": true,
	"where": true, "there": true, "here": true, "some": true, "them": true,
}

// buildCandidateText synthesizes the text representation of a candidate for
// similarity scoring: name, skills, resume text, industry, and notes, with
// absent fields skipped.
func buildCandidateText(c *types.CandidateProfile) string {
	parts := []string{c.Name}
	if len(c.Skills) > 0 {
		parts = append(parts, strings.Join(c.Skills, " "))
	}
	if c.ResumeText != "" {
		parts = append(parts, c.ResumeText)
	}
	if c.Industry != "" {
		parts = append(parts, c.Industry)
	}
	if c.Notes != "" {
		parts = append(parts, c.Notes)
	}
	return strings.Join(parts, " ")
}

// tokenize splits text into lowercase terms, skipping stop words and terms
// shorter than 3 runes. Tech suffixes like "c++", "c#", and "node.js" are
// preserved by treating + # . as word characters.
func tokenize(text string) []string {
	var terms []string
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) >= 3 && !similarityStopWords[w] {
			terms = append(terms, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return terms
}

// similarities computes the TF-IDF cosine similarity between the job text and
// each candidate text, scaled to [0,100] and rounded to one decimal. A blank
// job text or empty pool yields all zeros; similarity is an enrichment signal,
// so a degenerate vocabulary degrades to zeros rather than failing the run.
func similarities(jobText string, candidateTexts []string) []float64 {
	scores := make([]float64, len(candidateTexts))
	if len(candidateTexts) == 0 || strings.TrimSpace(jobText) == "" {
		return scores
	}

	docs := make([][]string, 0, len(candidateTexts)+1)
	docs = append(docs, tokenize(jobText))
	for _, text := range candidateTexts {
		docs = append(docs, tokenize(text))
	}

	vocab := buildVocabulary(docs)
	if len(vocab) == 0 {
		return scores
	}

	df := make([]int, len(vocab))
	counts := make([]map[string]int, len(docs))
	for i, doc := range docs {
		tf := make(map[string]int, len(doc))
		for _, term := range doc {
			tf[term]++
		}
		counts[i] = tf
		for term := range tf {
			if idx, ok := vocab[term]; ok {
				df[idx]++
			}
		}
	}

	// Smoothed IDF, as if one extra document contained every term.
	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	jobVec := vectorize(counts[0], vocab, idf)
	if jobVec == nil {
		return scores
	}
	for i := 1; i < len(docs); i++ {
		candVec := vectorize(counts[i], vocab, idf)
		if candVec == nil {
			continue
		}
		dot := 0.0
		for idx, w := range candVec {
			dot += w * jobVec[idx]
		}
		scores[i-1] = round1(dot * 100)
	}
	return scores
}

// buildVocabulary assigns an index to each distinct term, keeping only the
// maxVocabulary most frequent terms across the corpus (ties broken
// alphabetically so the space is deterministic).
func buildVocabulary(docs [][]string) map[string]int {
	freq := make(map[string]int)
	for _, doc := range docs {
		for _, term := range doc {
			freq[term]++
		}
	}
	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxVocabulary {
		terms = terms[:maxVocabulary]
	}
	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}
	return vocab
}

// vectorize builds the L2-normalized TF-IDF vector for one document as a
// sparse index-to-weight map. Returns nil for a zero-norm document.
func vectorize(tf map[string]int, vocab map[string]int, idf []float64) map[int]float64 {
	vec := make(map[int]float64, len(tf))
	norm := 0.0
	for term, count := range tf {
		idx, ok := vocab[term]
		if !ok {
			continue
		}
		w := float64(count) * idf[idx]
		vec[idx] = w
		norm += w * w
	}
	if norm == 0 {
		return nil
	}
	norm = math.Sqrt(norm)
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
