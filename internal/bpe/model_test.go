package bpe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedModel(t *testing.T) *Model {
	t.Helper()
	model, err := TrainModel(Vocab{
		"l o w e s t </w>": 3,
		"l o w e r </w>":   2,
		"l o w </w>":       5,
	}, 10)
	require.NoError(t, err)
	return model
}

func TestTrainModel(t *testing.T) {
	model := trainedModel(t)

	assert.NotEmpty(t, model.Merges)
	assert.NotEmpty(t, model.TokenFreqs)
	assert.Equal(t, Pair{"l", "o"}, model.Merges[0].Pair, "(l,o) has frequency 10")
}

func TestModel_SortedTokens(t *testing.T) {
	model := trainedModel(t)

	tokens := model.SortedTokens()
	require.NotEmpty(t, tokens)
	for i := 1; i < len(tokens); i++ {
		assert.GreaterOrEqual(t, TokenLength(tokens[i-1]), TokenLength(tokens[i]),
			"tokens must be ordered longest first")
	}
}

func TestModel_SplitWord(t *testing.T) {
	model := trainedModel(t)

	// "low" appears 10 times word-initially; replaying the merges on a
	// corpus word reproduces a training segmentation ending in </w>.
	symbols := model.SplitWord("lowest")
	require.NotEmpty(t, symbols)

	var joined string
	for _, sym := range symbols {
		joined += sym
	}
	assert.Equal(t, "lowest</w>", joined)
}

func TestModel_TokenizeText(t *testing.T) {
	model := trainedModel(t)

	tokens := model.TokenizeText("low lowest")
	assert.NotContains(t, tokens, Unknown, "corpus words segment without unknowns")

	var joined string
	for _, tok := range tokens {
		joined += tok
	}
	assert.Equal(t, "low</w>lowest</w>", joined)
}

func TestModel_TokenizeWordCaches(t *testing.T) {
	model := trainedModel(t)

	first := model.TokenizeWord("lowest</w>")
	second := model.TokenizeWord("lowest</w>")
	assert.Equal(t, first, second)
}

func TestModel_UnknownFallback(t *testing.T) {
	model := trainedModel(t)

	tokens := model.TokenizeText("zzz")
	assert.Contains(t, tokens, Unknown)
}

func TestSegCache_Eviction(t *testing.T) {
	c := newSegCache(2)
	c.add("a", []string{"a"})
	c.add("b", []string{"b"})
	c.add("c", []string{"c"}) // evicts "a"

	assert.Nil(t, c.get("a"))
	assert.Equal(t, []string{"b"}, c.get("b"))
	assert.Equal(t, []string{"c"}, c.get("c"))
}
