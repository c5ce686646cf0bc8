package bpe

import (
	"strings"
)

// Model is a trained BPE model: the ordered merge rule list (the sole
// learned artifact) plus a snapshot of the final token catalog, so a
// reloaded model can rebuild its tokenizer priority list without the
// corpus.
type Model struct {
	Merges     []MergeRule
	TokenFreqs map[string]int

	sorted []string
	cache  *segCache
}

// TrainModel trains on the table and captures the final token catalog.
func TrainModel(v Vocab, numMerges int, opts ...TrainOption) (*Model, error) {
	rules, final, err := Train(v, numMerges, opts...)
	if err != nil {
		return nil, err
	}

	freqs, _ := DeriveTokens(final)
	return NewModel(rules, freqs), nil
}

// NewModel assembles a model from a merge rule list and token catalog,
// e.g. one read back from a model file.
func NewModel(merges []MergeRule, tokenFreqs map[string]int) *Model {
	return &Model{
		Merges:     merges,
		TokenFreqs: tokenFreqs,
		cache:      newSegCache(1024),
	}
}

// SortedTokens returns the catalog in tokenizer priority order. The list
// is computed once and reused.
func (m *Model) SortedTokens() []string {
	if m.sorted == nil {
		m.sorted = SortTokens(m.TokenFreqs)
	}
	return m.sorted
}

// SplitWord segments one surface word by replaying the learned merges, in
// training order, over its character-level symbolization. This yields the
// same segmentation training itself would have produced for a word seen in
// the corpus.
func (m *Model) SplitWord(word string) []string {
	key := symbolizeWord(word)
	for _, rule := range m.Merges {
		key = mergeWord(rule.Pair, key)
	}
	return Symbols(key)
}

// TokenizeWord greedy-segments one already-symbolized word (EndOfWord
// suffix included) with the model's priority list. Segmentations are
// cached per input word.
func (m *Model) TokenizeWord(word string) []string {
	if toks := m.cache.get(word); toks != nil {
		return toks
	}
	toks := TokenizeWord(word, m.SortedTokens(), Unknown)
	m.cache.add(word, toks)
	return toks
}

// TokenizeText splits text on whitespace and greedy-segments each word.
func (m *Model) TokenizeText(text string) []string {
	var out []string
	for _, word := range strings.Fields(text) {
		out = append(out, m.TokenizeWord(word+EndOfWord)...)
	}
	return out
}

// segCache is a fixed-capacity slot cache of word segmentations. Eviction
// is round-robin over insertion order; hit results alias the stored slice
// and must be treated as read-only.
type segCache struct {
	capacity int
	order    []string
	index    int
	values   map[string][]string
}

func newSegCache(capacity int) *segCache {
	if capacity <= 0 {
		capacity = 128
	}
	return &segCache{
		capacity: capacity,
		order:    make([]string, capacity),
		values:   make(map[string][]string, capacity),
	}
}

func (c *segCache) get(key string) []string {
	if c == nil {
		return nil
	}
	return c.values[key]
}

func (c *segCache) add(key string, val []string) {
	if c == nil {
		return
	}
	if _, ok := c.values[key]; ok {
		return
	}
	slot := c.index % c.capacity
	if old := c.order[slot]; old != "" {
		delete(c.values, old)
	}
	c.order[slot] = key
	c.values[key] = val
	c.index++
}
