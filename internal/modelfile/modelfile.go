// Package modelfile reads and writes trained BPE models as line-oriented
// text files.
//
// Format:
//
//	# subword bpe v1
//	# merges 2
//	l o
//	lo w
//	# tokens 3
//	low</w> 5
//	e 7
//	r 2
//
// Merge rule lines hold the two symbols of one rule in training order;
// token lines hold one catalog token and its aggregate frequency. Symbols
// never contain whitespace, which keeps both line shapes unambiguous.
package modelfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/subword-ml/subword/internal/bpe"
)

const (
	magic         = "# subword bpe"
	formatVersion = 1
)

// Write serializes the model to w.
func Write(w io.Writer, m *bpe.Model) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s v%d\n", magic, formatVersion)
	fmt.Fprintf(bw, "# merges %d\n", len(m.Merges))
	for _, rule := range m.Merges {
		fmt.Fprintf(bw, "%s %s\n", rule.Pair.First, rule.Pair.Second)
	}

	// Token lines in sorted order so files diff cleanly across runs.
	tokens := bpe.SortTokens(m.TokenFreqs)
	fmt.Fprintf(bw, "# tokens %d\n", len(tokens))
	for _, tok := range tokens {
		fmt.Fprintf(bw, "%s %d\n", tok, m.TokenFreqs[tok])
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write model: %w", err)
	}
	return nil
}

// Save writes the model to a file.
func Save(path string, m *bpe.Model) error {
	f, err := os.Create(path) //nolint:gosec // G304: Path comes from trusted caller
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}

	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read parses a model from r.
func Read(r io.Reader) (*bpe.Model, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, ErrInvalidMagic
	}
	version, err := parseMagic(scanner.Text())
	if err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, fmt.Errorf("%w: v%d", ErrUnsupportedVersion, version)
	}

	numMerges, err := parseSectionHeader(scanner, "merges")
	if err != nil {
		return nil, err
	}
	merges := make([]bpe.MergeRule, 0, numMerges)
	for i := 0; i < numMerges; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: merge %d of %d", ErrTruncated, i, numMerges)
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedRule, scanner.Text())
		}
		merges = append(merges, bpe.MergeRule{
			Pair:  bpe.Pair{First: parts[0], Second: parts[1]},
			Index: i,
		})
	}

	numTokens, err := parseSectionHeader(scanner, "tokens")
	if err != nil {
		return nil, err
	}
	freqs := make(map[string]int, numTokens)
	for i := 0; i < numTokens; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: token %d of %d", ErrTruncated, i, numTokens)
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedToken, scanner.Text())
		}
		freq, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedToken, scanner.Text())
		}
		freqs[parts[0]] = freq
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}

	return bpe.NewModel(merges, freqs), nil
}

// Load reads a model from a file.
func Load(path string) (*bpe.Model, error) {
	f, err := os.Open(path) //nolint:gosec // G304: Path comes from trusted caller
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

func parseMagic(line string) (int, error) {
	if !strings.HasPrefix(line, magic+" v") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMagic, line)
	}
	version, err := strconv.Atoi(strings.TrimPrefix(line, magic+" v"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMagic, line)
	}
	return version, nil
}

func parseSectionHeader(scanner *bufio.Scanner, name string) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("%w: missing %q section", ErrTruncated, name)
	}
	line := scanner.Text()
	prefix := "# " + name + " "
	if !strings.HasPrefix(line, prefix) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	count, err := strconv.Atoi(strings.TrimPrefix(line, prefix))
	if err != nil || count < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	return count, nil
}
