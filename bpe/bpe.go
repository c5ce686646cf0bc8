// Package bpe is the public API for subword vocabulary learning and
// greedy tokenization.
//
// This package wraps the internal implementation and provides a clean
// surface for the full pipeline: build a word frequency table from a
// corpus, learn merge rules, and segment new text.
//
// Example usage:
//
//	import "github.com/subword-ml/subword/bpe"
//
//	vocab, err := bpe.LoadVocabFile("corpus.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	model, err := bpe.TrainModel(vocab, 1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tokens := model.TokenizeText("lowest lower")
//
//	if err := bpe.SaveModel("model.bpe", model); err != nil {
//	    log.Fatal(err)
//	}
package bpe

import (
	"io"

	"github.com/subword-ml/subword/internal/bpe"
	"github.com/subword-ml/subword/internal/modelfile"
	"github.com/subword-ml/subword/internal/parallel"
)

// Sentinel symbols.
const (
	// EndOfWord terminates every word's symbol sequence.
	EndOfWord = bpe.EndOfWord

	// Unknown stands in for input the tokenizer cannot match.
	Unknown = bpe.Unknown
)

// Vocab is a word frequency table keyed by space-joined symbol sequences.
type Vocab = bpe.Vocab

// Pair is an ordered pair of adjacent symbols.
type Pair = bpe.Pair

// PairStats maps adjacent symbol pairs to aggregate frequencies.
type PairStats = bpe.PairStats

// MergeRule records one learned merge and its priority index.
type MergeRule = bpe.MergeRule

// Model is a trained BPE model: ordered merges plus the token catalog.
type Model = bpe.Model

// TrainOption customizes a training run.
type TrainOption = bpe.TrainOption

// ErrMalformedPair reports a merge request that is not two non-empty symbols.
var ErrMalformedPair = bpe.ErrMalformedPair

// BuildVocab builds a word frequency table from UTF-8 corpus text.
func BuildVocab(r io.Reader) (Vocab, error) {
	return bpe.BuildVocab(r)
}

// LoadVocabFile builds a word frequency table from a corpus file.
func LoadVocabFile(path string) (Vocab, error) {
	return bpe.LoadVocabFile(path)
}

// ComputePairStats counts adjacent symbol pairs, weighted by word frequency.
func ComputePairStats(v Vocab) PairStats {
	return bpe.ComputePairStats(v)
}

// MergeVocab fuses every whole-symbol occurrence of the pair into one symbol.
func MergeVocab(p Pair, v Vocab) (Vocab, error) {
	return bpe.MergeVocab(p, v)
}

// Train learns up to numMerges merge rules from the table.
//
// Delivering fewer rules than requested means the vocabulary was exhausted;
// that is a normal outcome, not an error.
func Train(v Vocab, numMerges int, opts ...TrainOption) ([]MergeRule, Vocab, error) {
	return bpe.Train(v, numMerges, opts...)
}

// TrainModel trains and captures the final token catalog in one step.
func TrainModel(v Vocab, numMerges int, opts ...TrainOption) (*Model, error) {
	return bpe.TrainModel(v, numMerges, opts...)
}

// NewModel assembles a model from an existing merge rule list and catalog.
func NewModel(merges []MergeRule, tokenFreqs map[string]int) *Model {
	return bpe.NewModel(merges, tokenFreqs)
}

// WithParallelStats enables chunked parallel pair counting during training.
func WithParallelStats() TrainOption {
	return bpe.WithParallelStats(parallel.DefaultConfig())
}

// WithProgress registers a per-iteration training callback.
func WithProgress(fn func(iteration int, rule MergeRule, pairFreq int)) TrainOption {
	return bpe.WithProgress(fn)
}

// DeriveTokens aggregates a table into token frequencies and a word-to-symbols
// mapping.
func DeriveTokens(v Vocab) (map[string]int, map[string][]string) {
	return bpe.DeriveTokens(v)
}

// TokenLength measures a token in bytes, counting a trailing end-of-word
// marker as one unit.
func TokenLength(tok string) int {
	return bpe.TokenLength(tok)
}

// SortTokens orders tokens by length then frequency, descending.
func SortTokens(freqs map[string]int) []string {
	return bpe.SortTokens(freqs)
}

// TokenizeWord greedy-segments input against a priority-ordered token list.
func TokenizeWord(input string, sorted []string, unknown string) []string {
	return bpe.TokenizeWord(input, sorted, unknown)
}

// Tokenize splits text on whitespace and greedy-segments each word.
func Tokenize(text string, sorted []string, unknown string) []string {
	return bpe.Tokenize(text, sorted, unknown)
}

// SaveModel writes a trained model to a file.
func SaveModel(path string, m *Model) error {
	return modelfile.Save(path, m)
}

// LoadModel reads a trained model from a file.
func LoadModel(path string) (*Model, error) {
	return modelfile.Load(path)
}
