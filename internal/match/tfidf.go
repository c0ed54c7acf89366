package match

import (
	"math"
	"strings"
)

// TFIDF computes an ad-hoc cosine similarity over just the two texts:
// term frequencies weighted by inverse document frequency across the pair,
// English stopwords removed. Pure Go, always available.
type TFIDF struct{}

func (TFIDF) Name() string { return "tfidf" }

func (TFIDF) Score(a, b string) (float64, error) {
	aTF := termFrequencies(a)
	bTF := termFrequencies(b)
	if len(aTF) == 0 || len(bTF) == 0 {
		return 0, nil
	}

	vocab := make(map[string]struct{}, len(aTF)+len(bTF))
	for t := range aTF {
		vocab[t] = struct{}{}
	}
	for t := range bTF {
		vocab[t] = struct{}{}
	}

	// Smoothed idf over the two-document collection, mirroring the usual
	// vectorizer formula idf = ln((1+n)/(1+df)) + 1 with n = 2.
	var dot, aNorm, bNorm float64
	for t := range vocab {
		df := 0
		if aTF[t] > 0 {
			df++
		}
		if bTF[t] > 0 {
			df++
		}
		idf := math.Log(3.0/float64(1+df)) + 1

		aW := float64(aTF[t]) * idf
		bW := float64(bTF[t]) * idf
		dot += aW * bW
		aNorm += aW * aW
		bNorm += bW * bW
	}

	if aNorm == 0 || bNorm == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(aNorm) * math.Sqrt(bNorm)), nil
}

func termFrequencies(text string) map[string]int {
	out := map[string]int{}
	for _, tok := range strings.Fields(NormalizeQuery(text)) {
		if _, stop := englishStopwords[tok]; stop {
			continue
		}
		if len(tok) < 2 {
			continue
		}
		out[tok]++
	}
	return out
}

var englishStopwords = func() map[string]struct{} {
	words := []string{
		"a", "an", "and", "are", "as", "at", "be", "but", "by", "for",
		"from", "has", "have", "he", "her", "his", "if", "in", "into",
		"is", "it", "its", "more", "no", "not", "of", "on", "or", "our",
		"she", "so", "such", "that", "the", "their", "then", "there",
		"these", "they", "this", "to", "was", "we", "were", "which",
		"will", "with", "you", "your",
	}
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}()
