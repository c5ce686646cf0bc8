package bpe

import (
	"sort"
	"strings"
)

// DeriveTokens aggregates the table into per-symbol frequencies and a
// mapping from each word's plain concatenation (EndOfWord included as
// literal text) to its symbol sequence.
//
// Distinct table keys can concatenate to the same string; later entries
// then overwrite earlier ones in the word mapping. This is documented
// lossy behavior of the catalog, kept as is.
func DeriveTokens(v Vocab) (map[string]int, map[string][]string) {
	freqs := make(map[string]int)
	words := make(map[string][]string, len(v))

	for word, freq := range v {
		symbols := Symbols(word)
		for _, sym := range symbols {
			freqs[sym] += freq
		}
		words[strings.Join(symbols, "")] = symbols
	}

	return freqs, words
}

// TokenLength measures a token in bytes, except that a trailing EndOfWord
// marker counts as exactly one unit regardless of its spelling.
//
// TokenLength("hi</w>") is 3; TokenLength("</w>") is 1.
func TokenLength(tok string) int {
	if strings.HasSuffix(tok, EndOfWord) {
		return len(tok) - len(EndOfWord) + 1
	}
	return len(tok)
}

// SortTokens orders the catalog for the greedy tokenizer: length
// descending, then frequency descending, so longer and more frequent
// tokens are tried first. Remaining ties fall back to lexicographic order
// to keep the list deterministic.
func SortTokens(freqs map[string]int) []string {
	tokens := make([]string, 0, len(freqs))
	for tok := range freqs {
		tokens = append(tokens, tok)
	}

	sort.Slice(tokens, func(i, j int) bool {
		li, lj := TokenLength(tokens[i]), TokenLength(tokens[j])
		if li != lj {
			return li > lj
		}
		fi, fj := freqs[tokens[i]], freqs[tokens[j]]
		if fi != fj {
			return fi > fj
		}
		return tokens[i] < tokens[j]
	})

	return tokens
}
