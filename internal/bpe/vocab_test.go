package bpe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVocab(t *testing.T) {
	tests := []struct {
		name   string
		corpus string
		want   Vocab
	}{
		{
			name:   "single word",
			corpus: "low",
			want:   Vocab{"l o w </w>": 1},
		},
		{
			name:   "repeated words across lines",
			corpus: "low low\nlow lower",
			want: Vocab{
				"l o w </w>":     3,
				"l o w e r </w>": 1,
			},
		},
		{
			name:   "empty corpus",
			corpus: "",
			want:   Vocab{},
		},
		{
			name:   "whitespace only",
			corpus: "  \n\t\n",
			want:   Vocab{},
		},
		{
			name:   "multibyte runes become single symbols",
			corpus: "héllo",
			want:   Vocab{"h é l l o </w>": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocab, err := BuildVocab(strings.NewReader(tt.corpus))
			require.NoError(t, err)
			assert.Equal(t, tt.want, vocab)
		})
	}
}

func TestVocab_Accessors(t *testing.T) {
	v := make(Vocab)

	assert.Equal(t, 0, v.Count("l o w </w>"), "missing key counts as zero")

	v.Add("l o w </w>", 2)
	v.Add("l o w </w>", 3)
	assert.Equal(t, 5, v.Count("l o w </w>"))
}

func TestVocab_TotalSymbols(t *testing.T) {
	v := Vocab{
		"l o w </w>": 2, // 4 symbols x 2
		"h i </w>":   1, // 3 symbols x 1
	}
	assert.Equal(t, 11, v.TotalSymbols())
}

func TestVocab_Clone(t *testing.T) {
	v := Vocab{"a b </w>": 1}
	c := v.Clone()
	c.Add("a b </w>", 5)

	assert.Equal(t, 1, v.Count("a b </w>"), "clone must not share storage")
	assert.Equal(t, 6, c.Count("a b </w>"))
}

func TestSymbols(t *testing.T) {
	assert.Equal(t, []string{"l", "o", "w", "</w>"}, Symbols("l o w </w>"))
	assert.Empty(t, Symbols(""))
}
