package bpe

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedPair reports a merge request whose pair is not exactly two
// non-empty symbols. This is a contract violation: callers are expected to
// only request pairs previously discovered via ComputePairStats.
var ErrMalformedPair = errors.New("merge pair must be two non-empty symbols")

// MergeVocab produces a new table in which every occurrence of p as two
// whole, adjacent symbols is fused into the single symbol p.Fused().
//
// Matching is structural over the symbol sequence, never substring matching
// over the joined key, so a pair ("a","b") cannot match inside a symbol
// like "xaby". Replacement is non-overlapping and scans left to right.
// Words not containing the pair are carried over unchanged; frequencies are
// accumulated onto the new key. The input table is not mutated.
func MergeVocab(p Pair, v Vocab) (Vocab, error) {
	if p.First == "" || p.Second == "" {
		return nil, fmt.Errorf("%w: %+v", ErrMalformedPair, p)
	}

	out := make(Vocab, len(v))
	for word, freq := range v {
		out.Add(mergeWord(p, word), freq)
	}
	return out, nil
}

// mergeWord rewrites one table key, fusing every non-overlapping
// occurrence of the pair.
func mergeWord(p Pair, word string) string {
	symbols := Symbols(word)
	merged := make([]string, 0, len(symbols))

	i := 0
	for i < len(symbols) {
		if i+1 < len(symbols) && symbols[i] == p.First && symbols[i+1] == p.Second {
			merged = append(merged, p.Fused())
			i += 2
		} else {
			merged = append(merged, symbols[i])
			i++
		}
	}

	return strings.Join(merged, " ")
}
