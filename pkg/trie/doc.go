// ## Overview
// Package trie implements a prefix tree over the lowercase ASCII alphabet ('a'..'z').
// It stores a set of words and answers membership, full listing and prefix
// autocomplete queries. Listings are always returned in ascending alphabetical order,
// because children are visited in alphabet order.
//
// Each node owns a fixed array of 26 child slots and a bitmask mirroring which slots
// are occupied. Deleting a word eagerly prunes every node that no longer leads to a
// stored word, so the tree only ever holds the nodes needed by the current word set.
//
// ## Example usage:
//
//	words := trie.New()
//	_ = words.Insert("p")
//	_ = words.Insert("praline")
//	_ = words.Insert("pro")
//	_ = words.Insert("propane")
//
//	fmt.Println(words.ListAll())          // [p praline pro propane]
//	_ = words.Delete("praline")
//
//	set, ok, _ := words.Autocomplete("pr")
//	fmt.Println(set, ok)                  // [pro propane] true
//
//	_, ok, _ = words.Autocomplete("prol")
//	fmt.Println(ok)                       // false, no such prefix
//
// Any byte outside 'a'..'z' is rejected with an error wrapping ErrInvalidSymbol.
//
// A Trie is not safe for concurrent use. Wrap it with a lock (see package dictionary)
// when it is shared between goroutines.
package trie
