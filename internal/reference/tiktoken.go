// Package reference wraps pretrained tiktoken encodings so trained models
// can be compared against a production tokenizer. It never reads or writes
// tiktoken's file formats; it only segments text for reporting.
package reference

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

const (
	// EncodingCL100kBase is the encoding used by GPT-4 and GPT-3.5-turbo.
	EncodingCL100kBase = "cl100k_base"
	// EncodingP50kBase is the encoding used by GPT-3 and Codex.
	EncodingP50kBase = "p50k_base"
)

// TikToken wraps the pkoukk/tiktoken-go library for a single encoding.
type TikToken struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewTikToken loads the named tiktoken encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3).
func NewTikToken(encodingName string) (*TikToken, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}

	return &TikToken{
		encoding: encoding,
		name:     encodingName,
	}, nil
}

// Segments tokenizes text and decodes each token ID back to its surface
// piece, preserving order.
func (t *TikToken) Segments(text string) []string {
	ids := t.encoding.Encode(text, nil, nil)
	pieces := make([]string, len(ids))
	for i, id := range ids {
		pieces[i] = t.encoding.Decode([]int{id})
	}
	return pieces
}

// Count returns the number of tokens the encoding produces for text.
func (t *TikToken) Count(text string) int {
	return len(t.encoding.Encode(text, nil, nil))
}

// Name returns the encoding name.
func (t *TikToken) Name() string {
	return t.name
}
