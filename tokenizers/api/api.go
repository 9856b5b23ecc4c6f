// Package api defines the tokenizer contract shared by the scoring pipeline
// and the tokenizer implementations.
//
// It is split from the parent tokenizers package so that implementations can
// reference the contract while the parent package references the
// implementations, without an import cycle.
package api

// Tokenizer splits raw text into the token sequence the scoring packages
// consume. Implementations must be deterministic and safe for concurrent
// use; scoring treats tokens as opaque strings compared for exact equality,
// so every normalization a metric should see happens here.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Kind names a tokenizer implementation.
type Kind string

const (
	// KindWord splits on whitespace and makes every punctuation rune its own
	// token, the usual setup for surface-form scoring.
	KindWord Kind = "word"

	// KindWhitespace splits on whitespace only, for input that is already
	// tokenized.
	KindWhitespace Kind = "whitespace"

	// KindSentencePiece encodes text into the subword pieces of a
	// SentencePiece model, giving language-independent (spBLEU-style)
	// scoring.
	KindSentencePiece Kind = "sentencepiece"
)

// Config selects and configures a tokenizer implementation.
type Config struct {
	// Kind of tokenizer to build. An empty Kind means KindWord.
	Kind Kind

	// Lowercase folds text with a locale-independent lower casing before
	// splitting, for case-insensitive scoring.
	Lowercase bool

	// NFC applies Unicode NFC normalization before splitting. Only the word
	// and whitespace tokenizers honor it; SentencePiece models carry their
	// own normalizer.
	NFC bool

	// ModelPath locates the SentencePiece model file. Required for
	// KindSentencePiece, ignored otherwise.
	ModelPath string
}
