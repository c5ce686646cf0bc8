package bpe

import (
	"strings"
)

// TokenizeWord segments input against a priority-ordered token list,
// typically the output of SortTokens applied to a trained vocabulary.
//
// The first token in priority order with at least one occurrence in the
// input fully determines this level's segmentation: all of its
// non-overlapping left-to-right matches are emitted, and the gaps between
// and around them recurse with only the remaining, lower-priority tokens.
// Higher-priority tokens already exhausted at an outer level are never
// retried inside a gap. There is no backtracking; once a token matches,
// later tokens are not considered at this level even if they would yield a
// shorter overall segmentation.
//
// Matching is literal substring search, so every character of a token,
// including "." and other pattern metacharacters, matches only itself.
//
// Input that no token can cover resolves to unknown, never an error:
// an exhausted token list with non-empty input yields [unknown], and an
// empty input yields an empty sequence.
func TokenizeWord(input string, sorted []string, unknown string) []string {
	if input == "" {
		return nil
	}
	if len(sorted) == 0 {
		return []string{unknown}
	}

	for i, tok := range sorted {
		starts := matchPositions(input, tok)
		if len(starts) == 0 {
			continue
		}

		rest := sorted[i+1:]
		var out []string
		pos := 0
		for _, start := range starts {
			out = append(out, TokenizeWord(input[pos:start], rest, unknown)...)
			out = append(out, tok)
			pos = start + len(tok)
		}
		out = append(out, TokenizeWord(input[pos:], rest, unknown)...)
		return out
	}

	return []string{unknown}
}

// Tokenize splits text on whitespace, symbolizes each word with the
// end-of-word marker the same way BuildVocab does, and segments each word
// independently.
func Tokenize(text string, sorted []string, unknown string) []string {
	var out []string
	for _, word := range strings.Fields(text) {
		out = append(out, TokenizeWord(word+EndOfWord, sorted, unknown)...)
	}
	return out
}

// matchPositions returns the start offset of every non-overlapping
// occurrence of tok in input, scanning left to right.
func matchPositions(input, tok string) []int {
	if tok == "" {
		return nil
	}
	var starts []int
	pos := 0
	for {
		idx := strings.Index(input[pos:], tok)
		if idx < 0 {
			return starts
		}
		starts = append(starts, pos+idx)
		pos += idx + len(tok)
	}
}
