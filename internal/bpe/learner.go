package bpe

import (
	"github.com/subword-ml/subword/internal/parallel"
)

// MergeRule records one learned merge: the pair that was fused and the
// iteration at which it was chosen. Earlier rules have higher priority.
type MergeRule struct {
	Pair  Pair
	Index int
}

// Progress is called once per completed training iteration.
type Progress func(iteration int, rule MergeRule, pairFreq int)

type trainConfig struct {
	parallelStats bool
	parallelCfg   parallel.Config
	progress      Progress
}

// TrainOption customizes a training run.
type TrainOption func(*trainConfig)

// WithParallelStats enables chunked parallel pair counting. The merge loop
// itself stays sequential; only the per-iteration stats pass fans out.
func WithParallelStats(cfg parallel.Config) TrainOption {
	return func(tc *trainConfig) {
		tc.parallelStats = true
		tc.parallelCfg = cfg
	}
}

// WithProgress registers a per-iteration callback. The learner itself
// never logs.
func WithProgress(fn Progress) TrainOption {
	return func(tc *trainConfig) {
		tc.progress = fn
	}
}

// Train learns up to numMerges merge rules from the table.
//
// Each iteration recomputes pair statistics from the current table, selects
// the most frequent pair, fuses it across the table, and records the rule.
// Ties on frequency are broken deterministically by lexicographic order of
// the pair (First, then Second); map iteration order never decides a merge.
//
// Training stops early when no word has two symbols left. Delivering fewer
// rules than requested is a normal outcome, observable from the returned
// slice length, not an error. Train(v, 0) returns no rules and a table
// equal to the input.
//
// The input table is never mutated; the returned table is a fresh value
// even when zero merges were performed.
func Train(v Vocab, numMerges int, opts ...TrainOption) ([]MergeRule, Vocab, error) {
	var tc trainConfig
	for _, opt := range opts {
		opt(&tc)
	}

	if numMerges < 0 {
		numMerges = 0
	}
	table := v.Clone()
	rules := make([]MergeRule, 0, numMerges)

	for i := 0; i < numMerges; i++ {
		var stats PairStats
		if tc.parallelStats {
			stats = computePairStatsParallel(table, tc.parallelCfg)
		} else {
			stats = ComputePairStats(table)
		}
		if len(stats) == 0 {
			break
		}

		best, freq := selectPair(stats)

		merged, err := MergeVocab(best, table)
		if err != nil {
			// Unreachable for pairs discovered via stats; surfaced for
			// contract honesty.
			return rules, table, err
		}
		table = merged

		rule := MergeRule{Pair: best, Index: i}
		rules = append(rules, rule)
		if tc.progress != nil {
			tc.progress(i, rule, freq)
		}
	}

	return rules, table, nil
}

// selectPair picks the maximum-frequency pair, breaking frequency ties by
// lexicographic pair order so training is deterministic.
func selectPair(stats PairStats) (Pair, int) {
	var (
		best     Pair
		bestFreq = -1
	)
	for p, freq := range stats {
		if freq > bestFreq || (freq == bestFreq && p.Less(best)) {
			best = p
			bestFreq = freq
		}
	}
	return best, bestFreq
}
