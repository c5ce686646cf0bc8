package bpe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// EndOfWord terminates every word's symbol sequence. It is an ordinary
	// symbol to the merge machinery but counts as one unit of length.
	EndOfWord = "</w>"

	// Unknown stands in for input the tokenizer cannot match against any
	// known token.
	Unknown = "</u>"
)

// Vocab is a word frequency table: each key is the space-joined symbol
// sequence of one corpus word (terminated by EndOfWord), each value the
// number of times that exact symbolization occurred.
//
// Training never mutates a Vocab in place; every merge step produces a
// fresh table.
type Vocab map[string]int

// Count returns the frequency recorded for word, or zero if absent.
func (v Vocab) Count(word string) int {
	return v[word]
}

// Add accumulates freq onto word, inserting it if absent.
func (v Vocab) Add(word string, freq int) {
	v[word] += freq
}

// Symbols splits a table key back into its symbol sequence.
func Symbols(word string) []string {
	return strings.Fields(word)
}

// TotalSymbols sums the symbol count of every word, weighted by frequency.
// Each delivered merge strictly reduces this quantity.
func (v Vocab) TotalSymbols() int {
	total := 0
	for word, freq := range v {
		total += len(Symbols(word)) * freq
	}
	return total
}

// Clone returns an independent copy of the table.
func (v Vocab) Clone() Vocab {
	out := make(Vocab, len(v))
	for word, freq := range v {
		out[word] = freq
	}
	return out
}

// BuildVocab scans UTF-8 text line by line, splits each line on whitespace,
// symbolizes every word as its runes plus EndOfWord, and accumulates
// occurrence counts.
//
// The symbolization of "low" is "l o w </w>".
func BuildVocab(r io.Reader) (Vocab, error) {
	vocab := make(Vocab)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, word := range strings.Fields(scanner.Text()) {
			vocab.Add(symbolizeWord(word), 1)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan corpus: %w", err)
	}

	return vocab, nil
}

// LoadVocabFile builds a Vocab from a corpus file on disk.
func LoadVocabFile(path string) (Vocab, error) {
	f, err := os.Open(path) //nolint:gosec // G304: Path comes from trusted caller
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()

	return BuildVocab(f)
}

// symbolizeWord splits one surface word into single-rune symbols and
// appends the end-of-word marker, joined by spaces.
func symbolizeWord(word string) string {
	var sb strings.Builder
	sb.Grow(len(word)*2 + len(EndOfWord))
	for _, r := range word {
		sb.WriteRune(r)
		sb.WriteByte(' ')
	}
	sb.WriteString(EndOfWord)
	return sb.String()
}
