package dictionary

import "github.com/rs/zerolog"

type Option func(*Dictionary) *Dictionary

func DefaultOptions() *Dictionary {
	return &Dictionary{
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger mutations and rejected words are reported to.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dictionary) *Dictionary {
		d.logger = logger
		return d
	}
}

// WithMaxNodes caps the number of trie nodes, see trie.WithMaxNodes.
func WithMaxNodes(limit int) Option {
	return func(d *Dictionary) *Dictionary {
		d.maxNodes = limit
		return d
	}
}

// WithLowercase folds ASCII upper case letters to lower case before a word reaches
// the trie. Every other byte outside 'a'..'z' is still rejected.
func WithLowercase(fold bool) Option {
	return func(d *Dictionary) *Dictionary {
		d.lowercase = fold
		return d
	}
}
