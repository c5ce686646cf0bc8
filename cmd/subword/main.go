// Package main provides the subword CLI: train BPE models, inspect their
// vocabularies, and tokenize text.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/subword-ml/subword/bpe"
	"github.com/subword-ml/subword/internal/reference"
)

const version = "0.1.0"

func main() {
	if err := NewCLI().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewCLI builds the subword command tree.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "subword",
		Short:         "BPE subword vocabulary learner and tokenizer",
		SilenceUsage:  true,
		SilenceErrors: false,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	trainCmd := &cobra.Command{
		Use:   "train CORPUS",
		Short: "Learn a BPE merge table from a text corpus",
		Args:  cobra.ExactArgs(1),
		RunE:  trainHandler,
	}
	trainCmd.Flags().IntP("merges", "n", 1000, "Number of merges to learn")
	trainCmd.Flags().StringP("output", "o", "model.bpe", "Model file to write")
	trainCmd.Flags().Bool("parallel", false, "Count pairs on multiple cores")
	trainCmd.Flags().Int("log-every", 100, "Log progress every N merges (0 disables)")

	tokenizeCmd := &cobra.Command{
		Use:   "tokenize [TEXT...]",
		Short: "Tokenize text with a trained model (reads stdin if no args)",
		RunE:  tokenizeHandler,
	}
	tokenizeCmd.Flags().StringP("model", "m", "model.bpe", "Model file to load")

	vocabCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Show a trained model's tokens in tokenizer priority order",
		Args:  cobra.NoArgs,
		RunE:  vocabHandler,
	}
	vocabCmd.Flags().StringP("model", "m", "model.bpe", "Model file to load")
	vocabCmd.Flags().Int("top", 50, "Number of tokens to show (0 for all)")

	compareCmd := &cobra.Command{
		Use:   "compare TEXT...",
		Short: "Segment text with the model and a reference tiktoken encoding",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareHandler,
	}
	compareCmd.Flags().StringP("model", "m", "model.bpe", "Model file to load")
	compareCmd.Flags().StringP("encoding", "e", reference.EncodingCL100kBase, "Reference tiktoken encoding")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("subword %s\n", version)
		},
	}

	rootCmd.AddCommand(trainCmd, tokenizeCmd, vocabCmd, compareCmd, versionCmd)
	return rootCmd
}

func trainHandler(cmd *cobra.Command, args []string) error {
	numMerges, _ := cmd.Flags().GetInt("merges")
	output, _ := cmd.Flags().GetString("output")
	useParallel, _ := cmd.Flags().GetBool("parallel")
	logEvery, _ := cmd.Flags().GetInt("log-every")

	vocab, err := bpe.LoadVocabFile(args[0])
	if err != nil {
		return err
	}
	slog.Info("corpus loaded", "path", args[0], "distinct_words", len(vocab), "total_symbols", vocab.TotalSymbols())

	opts := []bpe.TrainOption{
		bpe.WithProgress(func(iteration int, rule bpe.MergeRule, pairFreq int) {
			if logEvery > 0 && (iteration+1)%logEvery == 0 {
				slog.Info("merge learned",
					"iteration", iteration+1,
					"pair", rule.Pair.First+"+"+rule.Pair.Second,
					"freq", pairFreq)
			}
		}),
	}
	if useParallel {
		opts = append(opts, bpe.WithParallelStats())
	}

	model, err := bpe.TrainModel(vocab, numMerges, opts...)
	if err != nil {
		return err
	}
	if len(model.Merges) < numMerges {
		slog.Warn("vocabulary exhausted before merge budget",
			"requested", numMerges, "delivered", len(model.Merges))
	}

	if err := bpe.SaveModel(output, model); err != nil {
		return err
	}
	slog.Info("model saved", "path", output, "merges", len(model.Merges), "tokens", len(model.TokenFreqs))
	return nil
}

func tokenizeHandler(cmd *cobra.Command, args []string) error {
	modelPath, _ := cmd.Flags().GetString("model")

	model, err := bpe.LoadModel(modelPath)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		fmt.Println(strings.Join(model.TokenizeText(strings.Join(args, " ")), " "))
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		fmt.Println(strings.Join(model.TokenizeText(scanner.Text()), " "))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}

func vocabHandler(cmd *cobra.Command, args []string) error {
	modelPath, _ := cmd.Flags().GetString("model")
	top, _ := cmd.Flags().GetInt("top")

	model, err := bpe.LoadModel(modelPath)
	if err != nil {
		return err
	}

	tokens := model.SortedTokens()
	if top > 0 && top < len(tokens) {
		tokens = tokens[:top]
	}

	var data [][]string
	for _, tok := range tokens {
		data = append(data, []string{
			tok,
			strconv.Itoa(bpe.TokenLength(tok)),
			strconv.Itoa(model.TokenFreqs[tok]),
		})
	}

	renderTable(cmd.OutOrStdout(), []string{"TOKEN", "LEN", "FREQ"}, data)
	return nil
}

func compareHandler(cmd *cobra.Command, args []string) error {
	modelPath, _ := cmd.Flags().GetString("model")
	encoding, _ := cmd.Flags().GetString("encoding")

	model, err := bpe.LoadModel(modelPath)
	if err != nil {
		return err
	}
	ref, err := reference.NewTikToken(encoding)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	ours := model.TokenizeText(text)
	theirs := ref.Segments(text)

	renderTable(cmd.OutOrStdout(), []string{"TOKENIZER", "TOKENS", "SEGMENTATION"}, [][]string{
		{"subword", strconv.Itoa(len(ours)), strings.Join(ours, " ")},
		{ref.Name(), strconv.Itoa(len(theirs)), strings.Join(theirs, " ")},
	})
	return nil
}

func renderTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
