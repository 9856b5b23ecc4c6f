// Package tokenizers builds the tokenizer selected by an api.Config.
//
// The implementations live in subpackages (word, sentencepiece) and only
// depend on tokenizers/api; this package is the one place that knows them
// all.
package tokenizers

import (
	"github.com/pkg/errors"

	"github.com/cidrugHug8/bleunet/tokenizers/api"
	"github.com/cidrugHug8/bleunet/tokenizers/sentencepiece"
	"github.com/cidrugHug8/bleunet/tokenizers/word"
)

// New returns the tokenizer selected by config.Kind. An empty Kind selects
// the word tokenizer.
func New(config api.Config) (api.Tokenizer, error) {
	switch config.Kind {
	case api.KindWord, "":
		return word.New(config), nil
	case api.KindWhitespace:
		return word.NewWhitespace(config), nil
	case api.KindSentencePiece:
		return sentencepiece.New(config)
	default:
		return nil, errors.Errorf("unknown tokenizer kind %q", config.Kind)
	}
}
