// Package bpe implements Byte-Pair Encoding vocabulary learning and
// greedy subword tokenization.
//
// The pipeline works over a word-frequency table built from a corpus:
//   - BuildVocab: corpus text -> Vocab (word frequency table)
//   - ComputePairStats: Vocab -> adjacent symbol-pair frequencies
//   - MergeVocab: fuse one pair across the whole table
//   - Train: iterate stats+merge, recording an ordered merge rule list
//   - DeriveTokens / SortTokens: final table -> prioritized token list
//   - TokenizeWord: greedy longest-known-token-first segmentation
//
// Example usage:
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
// Every operation is a pure transformation over in-memory tables; the
// package never logs and never retries. Training progress can be observed
// through the WithProgress option.
package bpe
