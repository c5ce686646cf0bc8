package bpe

import (
	"sync"

	"github.com/subword-ml/subword/internal/parallel"
)

// Pair is an ordered pair of adjacent symbols within a word.
//
// Pairs are comparable and used directly as map keys.
type Pair struct {
	First  string
	Second string
}

// Fused returns the symbol produced by merging the pair.
func (p Pair) Fused() string {
	return p.First + p.Second
}

// Less orders pairs lexicographically by First, then Second. It is the
// documented tie-break for pair selection during training.
func (p Pair) Less(q Pair) bool {
	if p.First != q.First {
		return p.First < q.First
	}
	return p.Second < q.Second
}

// PairStats maps each adjacent symbol pair to the sum of the frequencies
// of every word containing it. Rebuilt from scratch each training
// iteration; iteration order carries no meaning.
type PairStats map[Pair]int

// Count returns the aggregate frequency for p, or zero if absent.
func (s PairStats) Count(p Pair) int {
	return s[p]
}

// ComputePairStats counts every adjacent symbol pair across the table,
// weighted by word frequency. Words with fewer than two symbols contribute
// nothing; the result may be empty.
func ComputePairStats(v Vocab) PairStats {
	stats := make(PairStats)
	for word, freq := range v {
		countWordPairs(stats, word, freq)
	}
	return stats
}

// computePairStatsParallel fans the word list out over chunked workers,
// each accumulating into a local map, then merges the locals. The numeric
// result is identical to ComputePairStats.
func computePairStatsParallel(v Vocab, cfg parallel.Config) PairStats {
	words := make([]string, 0, len(v))
	for word := range v {
		words = append(words, word)
	}

	var (
		mu    sync.Mutex
		stats = make(PairStats)
	)
	parallel.Chunks(len(words), cfg, func(start, end int) {
		local := make(PairStats)
		for _, word := range words[start:end] {
			countWordPairs(local, word, v[word])
		}
		mu.Lock()
		for p, n := range local {
			stats[p] += n
		}
		mu.Unlock()
	})

	return stats
}

func countWordPairs(stats PairStats, word string, freq int) {
	symbols := Symbols(word)
	for i := 0; i < len(symbols)-1; i++ {
		stats[Pair{symbols[i], symbols[i+1]}] += freq
	}
}
