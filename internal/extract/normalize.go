// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// spaceClass lists every rune treated as whitespace. Go's \s is ASCII-only
// and omits \v, so the Unicode separators and the C0 information separators
// are spelled out.
const spaceClass = `\s\p{Z}\x{0B}\x{1C}-\x{1F}\x{85}`

var (
	// noiseRe matches runs of anything that is not a word character,
	// whitespace, period, comma, or apostrophe.
	noiseRe = regexp.MustCompile(`[^\p{L}\p{N}_` + spaceClass + `.,']+`)

	spaceRunRe = regexp.MustCompile(`[` + spaceClass + `]+`)
)

// Normalize cleans raw extracted PDF text into one sentence per line.
//
// The text is composed to NFC, stripped of punctuation noise, flattened to
// single spaces, and then split after every period that ends a sentence.
// Ellipses ("..", "...") never start a new line.
func Normalize(raw string) string {
	s := norm.NFC.String(raw)
	s = noiseRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\n", " ")
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return breakSentences(s)
}

// breakSentences turns the space after a lone period into a newline. The
// input must already have its whitespace collapsed to single spaces.
func breakSentences(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' && i > 0 && s[i-1] == '.' && (i < 2 || s[i-2] != '.') {
			b.WriteByte('\n')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
