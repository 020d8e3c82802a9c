// Package hyphen inserts soft break points into words that would overflow
// their container. Hyphenation is pre-flight and measurement-gated: a word
// is only touched when it provably does not fit, so text that already fits
// renders byte-identical to its input.
package hyphen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/talvid/swipedeck/internal/measure"
)

// SoftHyphen is U+00AD, an invisible break opportunity that only renders
// as a hyphen when a line actually wraps there.
const SoftHyphen = '­'

// minWordLength is the shortest word (in runes) considered for hyphenation.
const minWordLength = 6

// Constraints describe the container a text run must fit into.
type Constraints struct {
	ContainerWidthPx float64
	Font             measure.FontSpec
	BufferPx         float64
}

// SplitFunc produces the syllable parts of a single word. Returning fewer
// than two parts means the word offers no break opportunity.
type SplitFunc func(word string) []string

// Engine applies measurement-gated soft hyphenation to text runs.
type Engine struct {
	measurer measure.Measurer
	split    SplitFunc
}

// New creates an Engine with an explicit measurer and splitter.
func New(m measure.Measurer, split SplitFunc) *Engine {
	return &Engine{measurer: m, split: split}
}

// NewGerman creates an Engine backed by the German syllable splitter.
func NewGerman(m measure.Measurer) *Engine {
	return New(m, SplitGerman)
}

// Apply returns text with soft hyphens inserted into words that exceed the
// container width minus the buffer. Whitespace is preserved exactly, so
// the transformation is lossless apart from the inserted break points.
// Without a measurer (no rendering surface) Apply is a passthrough.
func (e *Engine) Apply(text string, c Constraints) string {
	if e == nil || e.measurer == nil || e.split == nil {
		return text
	}
	if c.ContainerWidthPx <= 0 {
		return text
	}
	limit := c.ContainerWidthPx - c.BufferPx

	var b strings.Builder
	b.Grow(len(text))
	for _, tok := range tokenize(text) {
		if !eligible(tok) {
			b.WriteString(tok)
			continue
		}
		if e.measurer.Width(tok, c.Font) <= limit {
			b.WriteString(tok)
			continue
		}
		parts := e.split(tok)
		if len(parts) < 2 {
			b.WriteString(tok)
			continue
		}
		b.WriteString(strings.Join(parts, string(SoftHyphen)))
	}
	return b.String()
}

// tokenize splits text into alternating runs of whitespace and
// non-whitespace so that rejoining the tokens reproduces the input.
func tokenize(text string) []string {
	var tokens []string
	start := 0
	var inSpace bool
	for i, r := range text {
		space := unicode.IsSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			tokens = append(tokens, text[start:i])
			start = i
			inSpace = space
		}
	}
	if start < len(text) {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

// eligible reports whether a token may be hyphenated at all. Whitespace
// runs, short words, abbreviations, words carrying digits or symbol
// characters, and words that already contain a break point are left alone.
func eligible(tok string) bool {
	if tok == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(tok)
	if unicode.IsSpace(first) {
		return false
	}
	if utf8.RuneCountInString(tok) < minWordLength {
		return false
	}

	hasLetter := false
	hasLower := false
	for _, r := range tok {
		switch {
		case r == '-' || r == SoftHyphen || r == '‐':
			return false
		case unicode.IsDigit(r) || unicode.IsSymbol(r) || r == '%' || r == '§':
			return false
		case unicode.IsLetter(r):
			hasLetter = true
			if unicode.IsLower(r) {
				hasLower = true
			}
		}
	}
	if hasLetter && !hasLower {
		// Fully uppercase words are treated as abbreviations.
		return false
	}
	return hasLetter
}
