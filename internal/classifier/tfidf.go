package classifier

import (
	"math"
)

// Vectorizer maps text to the TF-IDF feature space fitted over a corpus.
// Out-of-vocabulary words contribute zero weight at transform time.
type Vectorizer struct {
	Vocabulary map[string]int
	IDF        []float64
}

// FitVectorizer builds the vocabulary and smoothed IDF weights from a
// corpus of documents
func FitVectorizer(docs []string) *Vectorizer {
	vocab := make(map[string]int)
	docFreq := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range Tokenize(doc) {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
			}
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	// Smoothed IDF: ln((1+n)/(1+df)) + 1, so no term gets a zero weight
	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for tok, idx := range vocab {
		idf[idx] = math.Log((1+n)/(1+float64(docFreq[tok]))) + 1
	}

	return &Vectorizer{Vocabulary: vocab, IDF: idf}
}

// Dim returns the dimensionality of the fitted feature space
func (v *Vectorizer) Dim() int {
	return len(v.Vocabulary)
}

// Transform maps a single text into a sparse L2-normalized TF-IDF vector
func (v *Vectorizer) Transform(text string) map[int]float64 {
	counts := make(map[int]float64)
	for _, tok := range Tokenize(text) {
		if idx, ok := v.Vocabulary[tok]; ok {
			counts[idx]++
		}
	}

	var norm float64
	for idx, tf := range counts {
		w := tf * v.IDF[idx]
		counts[idx] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range counts {
			counts[idx] /= norm
		}
	}

	return counts
}
