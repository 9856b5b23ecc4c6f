// Package sentencepiece implements an api.Tokenizer based on the
// SentencePiece tokenizer.
package sentencepiece

import (
	esentencepiece "github.com/eliben/go-sentencepiece"
	"github.com/pkg/errors"

	"github.com/cidrugHug8/bleunet/tokenizers/api"
)

// New creates a SentencePiece tokenizer from config.ModelPath, which must be
// a SentencePiece model proto. Scoring on subword pieces instead of words
// (the spBLEU setup) keeps scores comparable across languages that have no
// shared notion of a word.
func New(config api.Config) (*Tokenizer, error) {
	if config.ModelPath == "" {
		return nil, errors.Errorf("sentencepiece tokenizer requires a model file path")
	}
	proc, err := esentencepiece.NewProcessorFromPath(config.ModelPath)
	if err != nil {
		return nil, errors.Wrapf(err, "can't create sentencepiece tokenizer from %q", config.ModelPath)
	}
	return &Tokenizer{Processor: proc}, nil
}

// Tokenizer implements api.Tokenizer based on the SentencePiece tokenizer by
// Google.
type Tokenizer struct {
	Processor *esentencepiece.Processor
}

// Compile time assert that sentencepiece.Tokenizer implements api.Tokenizer.
var _ api.Tokenizer = &Tokenizer{}

// Tokenize returns the text split into its SentencePiece pieces. The pieces
// keep the model's metaspace marker, so token identity still encodes word
// boundaries.
func (t *Tokenizer) Tokenize(text string) []string {
	tokens := t.Processor.Encode(text)
	pieces := make([]string, len(tokens))
	for i, token := range tokens {
		pieces[i] = token.Text
	}
	return pieces
}
