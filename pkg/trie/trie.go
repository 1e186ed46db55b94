package trie

// Trie is a set of lowercase words stored as a prefix tree.
type Trie struct {
	root     *Node
	nodes    int // live nodes, root excluded
	words    int // terminal nodes
	maxNodes int // 0 means unlimited
}

// New creates an empty trie. The root always exists, even when the trie is empty.
func New(opts ...Option) *Trie {
	t := &Trie{root: &Node{}}
	for _, opt := range opts {
		t = opt(t)
	}
	return t
}

// Root returns the root node, which represents the empty prefix.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	return t.words
}

// NodeCount returns the number of live nodes, not counting the root.
func (t *Trie) NodeCount() int {
	return t.nodes
}

// Insert adds word to the trie. Inserting the empty word, or a word that is already
// stored, succeeds without changing anything.
//
// The word is validated before the tree is touched. When a node limit is set, the
// number of nodes the word needs is checked before any of them is linked, so a failed
// insert leaves the trie exactly as it was.
func (t *Trie) Insert(word string) error {
	if err := Validate(word); err != nil {
		return err
	}
	if len(word) == 0 {
		return nil
	}

	if t.maxNodes > 0 {
		if missing := missingNodes(t.root, word); t.nodes+missing > t.maxNodes {
			return allocationError(word, t.nodes, missing, t.maxNodes)
		}
	}

	current := t.root
	for pos := 0; pos < len(word); pos++ {
		i, _ := index(word[pos])
		next := current.children[i]
		if next == nil {
			next = current.attach(i)
			t.nodes++
		}
		current = next
	}

	if !current.terminal {
		current.terminal = true
		t.words++
	}
	return nil
}

// Delete removes word from the trie and prunes every node that no longer leads to a
// stored word. Deleting the empty word, or a word that is not stored, is a no-op.
// The root is never pruned.
func (t *Trie) Delete(word string) error {
	if err := Validate(word); err != nil {
		return err
	}
	if len(word) == 0 {
		return nil
	}

	path := walkPath(t.root, word)
	if path == nil {
		// never inserted, or already pruned away
		return nil
	}

	last := path[len(path)-1]
	if !last.terminal {
		// only a prefix of other words
		return nil
	}
	last.terminal = false
	t.words--

	t.prune(path, word)
	return nil
}

// prune walks path from the leaf up to, but not including, the root and unlinks every
// node that is neither terminal nor has children. It stops at the first node that is
// still needed.
func (t *Trie) prune(path []*Node, word string) {
	for depth := len(path) - 1; depth > 0; depth-- {
		node := path[depth]
		if node.terminal || node.HasChildren() {
			return
		}
		i, _ := index(word[depth-1])
		path[depth-1].detach(i)
		t.nodes--
	}
}

// Exists reports whether word is stored. A word that is only the prefix of stored
// words, or that contains bytes outside the alphabet, does not exist.
func (t *Trie) Exists(word string) bool {
	node := walk(t.root, word)
	return node != nil && node.terminal
}

// Contains is Exists, but reports invalid input as an error instead of false.
func (t *Trie) Contains(word string) (bool, error) {
	if err := Validate(word); err != nil {
		return false, err
	}
	return t.Exists(word), nil
}

// Free releases every node of the trie. The walk uses an explicit stack, so its
// depth does not depend on the length of the stored words. The trie is empty and
// ready for reuse afterwards.
func (t *Trie) Free() {
	stack := []*Node{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node.ForEachChild(func(child *Node) {
			stack = append(stack, child)
		})
		node.children = [AlphabetSize]*Node{}
		node.mask = 0
	}
	t.root.terminal = false
	t.nodes = 0
	t.words = 0
}
