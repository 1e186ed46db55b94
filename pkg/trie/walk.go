package trie

// walk follows s one letter at a time starting at from and returns the node at the
// end of the path, or nil if a link is missing. The empty string returns from.
func walk(from *Node, s string) *Node {
	current := from
	for pos := 0; pos < len(s) && current != nil; pos++ {
		i, ok := index(s[pos])
		if !ok {
			return nil
		}
		current = current.children[i]
	}
	return current
}

// walkPath is walk that also records every visited node, from included.
// On success the returned slice has len(s)+1 entries; path[k] is the node reached
// after k letters. It returns nil when the path cannot be completed.
func walkPath(from *Node, s string) []*Node {
	path := make([]*Node, 1, len(s)+1)
	path[0] = from
	current := from
	for pos := 0; pos < len(s); pos++ {
		i, ok := index(s[pos])
		if !ok {
			return nil
		}
		if current = current.children[i]; current == nil {
			return nil
		}
		path = append(path, current)
	}
	return path
}

// missingNodes returns how many nodes an insert of word would have to create.
func missingNodes(from *Node, word string) int {
	current := from
	for pos := 0; pos < len(word); pos++ {
		i, _ := index(word[pos])
		if current.children[i] == nil {
			return len(word) - pos
		}
		current = current.children[i]
	}
	return 0
}
