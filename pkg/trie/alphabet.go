package trie

// AlphabetSize is the number of child slots of every node.
const AlphabetSize = 26

// index maps a letter to its child slot, 'a' -> 0 ... 'z' -> 25.
func index(letter byte) (int, bool) {
	if letter < 'a' || letter > 'z' {
		return -1, false
	}
	return int(letter - 'a'), true
}

// letterAt is the inverse of index.
func letterAt(i int) byte {
	if i < 0 || i >= AlphabetSize {
		panic("[BUG] letterAt: slot out of range")
	}
	return byte('a' + i)
}

// Validate returns a *SymbolError for the first byte of word outside 'a'..'z', or nil.
// The empty word is valid.
func Validate(word string) error {
	for pos := 0; pos < len(word); pos++ {
		if _, ok := index(word[pos]); !ok {
			return &SymbolError{Word: word, Pos: pos, Symbol: word[pos]}
		}
	}
	return nil
}
