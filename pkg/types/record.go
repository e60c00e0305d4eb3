// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record is one processed document in the JSON corpus. Field order matches
// the on-disk layout.
type Record struct {
	// FileName is the base name of the source PDF.
	FileName string `json:"file_name" yaml:"file_name"`

	// CharCount is the number of Unicode code points in Text.
	CharCount int `json:"char_count" yaml:"char_count"`

	// WordCount is the number of whitespace-delimited tokens in Text.
	WordCount int `json:"word_count" yaml:"word_count"`

	// Text is the reviewed document text, one sentence per line.
	Text string `json:"text" yaml:"text"`
}
