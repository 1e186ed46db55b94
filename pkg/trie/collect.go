package trie

// WordSet is a fully materialized list of words in ascending alphabetical order.
type WordSet []string

// Len returns the number of words in the set.
func (ws WordSet) Len() int {
	return len(ws)
}

// Strings returns the words as a plain slice.
func (ws WordSet) Strings() []string {
	return []string(ws)
}

// Free drops the storage of the set.
func (ws *WordSet) Free() {
	*ws = nil
}

// frame is one pending node of a traversal. depth is the length of the word spelled
// by the path up to and including node.
type frame struct {
	node  *Node
	depth int
}

// collect visits every stored word below from, from included, in ascending order.
// prefix is the word spelled by the path to from. Words are built in one path buffer
// that is truncated on backtrack, and nodes wait on an explicit stack, so neither
// memory nor call depth is spent per node. It returns false if visit stopped the walk.
func collect(from *Node, prefix string, visit func(word string) bool) bool {
	path := make([]byte, 0, len(prefix)+16)
	path = append(path, prefix...)

	if from.terminal && !visit(prefix) {
		return false
	}

	stack := from.pushChildren(make([]frame, 0, AlphabetSize), len(prefix)+1)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// path[:depth-1] is the parent's word: it was either the last node popped or
		// a shared ancestor of it.
		path = append(path[:f.depth-1], f.node.letter)
		if f.node.terminal && !visit(string(path)) {
			return false
		}
		stack = f.node.pushChildren(stack, f.depth+1)
	}
	return true
}

// ListAll returns every stored word in ascending order. An empty trie returns an
// empty, non-nil set.
func (t *Trie) ListAll() WordSet {
	words := make(WordSet, 0, t.words)
	collect(t.root, "", func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

// Autocomplete returns every stored word that starts with prefix, in ascending order.
// ok is false when no stored word has that prefix, which is different from a
// non-nil empty set. The empty prefix behaves like ListAll.
func (t *Trie) Autocomplete(prefix string) (words WordSet, ok bool, err error) {
	if err := Validate(prefix); err != nil {
		return nil, false, err
	}
	if len(prefix) == 0 {
		return t.ListAll(), true, nil
	}

	node := walk(t.root, prefix)
	if node == nil {
		return nil, false, nil
	}

	words = WordSet{}
	collect(node, prefix, func(word string) bool {
		words = append(words, word)
		return true
	})
	return words, true, nil
}

// Walk calls fn for every stored word starting with prefix, in ascending order, until
// fn returns false. It does not build a result set, so it can be stopped early and
// simply called again to restart. found is false when the prefix has no path.
func (t *Trie) Walk(prefix string, fn func(word string) bool) (found bool, err error) {
	if err := Validate(prefix); err != nil {
		return false, err
	}
	node := walk(t.root, prefix)
	if node == nil {
		return false, nil
	}
	collect(node, prefix, fn)
	return true, nil
}
