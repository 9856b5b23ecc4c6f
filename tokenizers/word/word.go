// Package word implements the whitespace and punctuation based tokenizers
// for raw text.
package word

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/cidrugHug8/bleunet/tokenizers/api"
)

// Tokenizer splits text on whitespace and, unless configured as
// whitespace-only, makes every punctuation rune a token of its own. Casing
// uses the locale-independent (und) caser so scores do not depend on the
// host locale.
type Tokenizer struct {
	lowercase  bool
	nfc        bool
	splitPunct bool
}

// Compile time assert that word.Tokenizer implements api.Tokenizer.
var _ api.Tokenizer = &Tokenizer{}

// New returns the word tokenizer: whitespace separates tokens and every
// punctuation rune becomes its own token.
func New(config api.Config) *Tokenizer {
	return &Tokenizer{lowercase: config.Lowercase, nfc: config.NFC, splitPunct: true}
}

// NewWhitespace returns the whitespace-only tokenizer for text that is
// already tokenized.
func NewWhitespace(config api.Config) *Tokenizer {
	return &Tokenizer{lowercase: config.Lowercase, nfc: config.NFC}
}

// Tokenize splits text into tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	if t.nfc {
		text = norm.NFC.String(text)
	}
	if t.lowercase {
		text = cases.Lower(language.Und).String(text)
	}
	if !t.splitPunct {
		return strings.Fields(text)
	}

	var tokens []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range text {
		switch {
		case isWhitespace(r):
			flush()
		case isPunctuation(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func isWhitespace(r rune) bool {
	if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isPunctuation(r rune) bool {
	// ASCII punctuation, including the symbol ranges ($, +, ~, ...) that
	// unicode.IsPunct leaves out.
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}
