package trie

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol is returned when a word contains a byte outside 'a'..'z'.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrAllocation is returned when an insert needs more nodes than the trie may hold.
	ErrAllocation = errors.New("node allocation failed")
)

// SymbolError describes the first byte of a word that is outside the alphabet.
type SymbolError struct {
	Word   string // the rejected input
	Pos    int    // byte offset of the offending symbol
	Symbol byte   // the offending byte
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s: %q has byte %q at position %d, only 'a'..'z' is accepted",
		ErrInvalidSymbol, e.Word, e.Symbol, e.Pos)
}

func (e *SymbolError) Unwrap() error {
	return ErrInvalidSymbol
}

// allocationError reports that inserting word would need missing new nodes on top of
// the live ones, over the configured limit.
func allocationError(word string, live, missing, limit int) error {
	return fmt.Errorf("%w: inserting %q needs %d new nodes, %d of %d in use",
		ErrAllocation, word, missing, live, limit)
}
