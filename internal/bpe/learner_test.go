package bpe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subword-ml/subword/internal/parallel"
)

func lowestLowerVocab() Vocab {
	return Vocab{
		"l o w e s t </w>": 3,
		"l o w e r </w>":   2,
	}
}

func TestTrain_FirstMergeIsLO(t *testing.T) {
	rules, table, err := Train(lowestLowerVocab(), 1)
	require.NoError(t, err)
	require.Len(t, rules, 1)

	// (l,o), (o,w) and (w,e) all have frequency 5; the lexicographic
	// tie-break selects (l,o).
	assert.Equal(t, Pair{"l", "o"}, rules[0].Pair)
	assert.Equal(t, 0, rules[0].Index)
	assert.Equal(t, Vocab{
		"lo w e s t </w>": 3,
		"lo w e r </w>":   2,
	}, table)
}

func TestTrain_ZeroMerges(t *testing.T) {
	input := lowestLowerVocab()
	rules, table, err := Train(input, 0)
	require.NoError(t, err)

	assert.Empty(t, rules)
	assert.Equal(t, input, table)
}

func TestTrain_DoesNotMutateInput(t *testing.T) {
	input := lowestLowerVocab()
	_, _, err := Train(input, 3)
	require.NoError(t, err)
	assert.Equal(t, lowestLowerVocab(), input)
}

func TestTrain_UnderDelivery(t *testing.T) {
	// "a b </w>" exhausts after two merges; the third is impossible.
	rules, table, err := Train(Vocab{"a b </w>": 1}, 10)
	require.NoError(t, err)

	assert.Len(t, rules, 2)
	assert.Equal(t, Vocab{"ab</w>": 1}, table)
}

func TestTrain_Monotonic(t *testing.T) {
	table := Vocab{
		"l o w e s t </w>": 3,
		"l o w e r </w>":   2,
		"n e w e s t </w>": 6,
		"w i d e s t </w>": 3,
	}

	prev := table.TotalSymbols()
	for i := 0; i < 8; i++ {
		rules, next, err := Train(table, 1)
		require.NoError(t, err)
		if len(rules) == 0 {
			break
		}
		cur := next.TotalSymbols()
		assert.Less(t, cur, prev, "merge %d must strictly reduce total symbols", i)
		table, prev = next, cur
	}
}

func TestTrain_Deterministic(t *testing.T) {
	corpus := Vocab{
		"l o w e s t </w>": 3,
		"l o w e r </w>":   2,
		"n e w e s t </w>": 6,
		"w i d e s t </w>": 3,
		"l o w </w>":       5,
	}

	first, _, err := Train(corpus, 20)
	require.NoError(t, err)
	second, _, err := Train(corpus, 20)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	t.Run("parallel stats agree", func(t *testing.T) {
		cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}
		par, _, err := Train(corpus, 20, WithParallelStats(cfg))
		require.NoError(t, err)
		assert.Equal(t, first, par)
	})
}

func TestTrain_TieBreakLexicographic(t *testing.T) {
	// Every adjacent pair occurs exactly once; (a,b) sorts first.
	rules, _, err := Train(Vocab{"c d </w>": 1, "a b </w>": 1}, 1)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, Pair{"a", "b"}, rules[0].Pair)
}

func TestTrain_Progress(t *testing.T) {
	var iterations []int
	var freqs []int
	_, _, err := Train(lowestLowerVocab(), 3, WithProgress(func(i int, rule MergeRule, freq int) {
		iterations = append(iterations, i)
		freqs = append(freqs, freq)
	}))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, iterations)
	assert.Equal(t, 5, freqs[0], "first merge pair has combined frequency 5")
}
