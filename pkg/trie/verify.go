package trie

import "fmt"

// Verify walks the whole trie and checks its structural invariants:
//   - the mask of every node mirrors its occupied slots
//   - every child carries the letter of its slot
//   - no node below the root is a dead end (neither terminal nor with children)
//   - the node and word counters match what is reachable
//
// It returns the first violation found, nil for a healthy trie.
func (t *Trie) Verify() error {
	if t.root.terminal {
		return fmt.Errorf("root is marked terminal")
	}

	nodes, words := 0, 0
	stack := []*Node{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.terminal {
			words++
		}
		if node != t.root && !node.terminal && !node.HasChildren() {
			return fmt.Errorf("dead node %q is neither terminal nor has children", node.letter)
		}

		for i, child := range node.children {
			occupied := child != nil
			if bit := node.mask&(1<<i) != 0; bit != occupied {
				return fmt.Errorf("node %q: mask bit %d is %t but slot occupied is %t",
					node.letter, i, bit, occupied)
			}
			if !occupied {
				continue
			}
			if child.letter != letterAt(i) {
				return fmt.Errorf("node %q: child in slot %d has letter %q", node.letter, i, child.letter)
			}
			nodes++
			stack = append(stack, child)
		}
	}

	if nodes != t.nodes {
		return fmt.Errorf("node count is %d but %d nodes are reachable", t.nodes, nodes)
	}
	if words != t.words {
		return fmt.Errorf("word count is %d but %d words are reachable", t.words, words)
	}
	return nil
}
