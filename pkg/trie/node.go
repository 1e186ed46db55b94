package trie

import "math/bits"

// Node is a single trie node. The root represents the empty prefix and carries no letter.
type Node struct {
	children [AlphabetSize]*Node // owned children, indexed by alphabet position
	mask     uint32              // bit i is set iff children[i] != nil
	letter   byte                // the letter of this node, zero for the root
	terminal bool                // the path from the root to this node is a stored word
}

// Letter returns the letter this node represents, or 0 for the root.
func (n *Node) Letter() byte {
	return n.letter
}

// IsTerminal reports whether the path to this node spells a stored word.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

// HasChildren reports whether any child slot is occupied, without scanning the slots.
func (n *Node) HasChildren() bool {
	return n.mask != 0
}

// Child returns the child for letter, nil if there is none.
func (n *Node) Child(letter byte) (*Node, error) {
	i, ok := index(letter)
	if !ok {
		return nil, &SymbolError{Word: string(letter), Symbol: letter}
	}
	return n.children[i], nil
}

// attach links a new child at slot i and sets its mask bit.
func (n *Node) attach(i int) *Node {
	if n.children[i] != nil {
		panic("[BUG] attach: slot is already occupied")
	}
	child := &Node{letter: letterAt(i)}
	n.children[i] = child
	n.mask |= 1 << i
	return child
}

// detach unlinks the child at slot i, clears its mask bit and returns it.
func (n *Node) detach(i int) *Node {
	child := n.children[i]
	if child == nil {
		panic("[BUG] detach: slot is empty")
	}
	n.children[i] = nil
	n.mask &^= 1 << i
	return child
}

// ForEachChild calls f for every child in alphabet order.
// will return the original node n
func (n *Node) ForEachChild(f func(child *Node)) *Node {
	for m := n.mask; m != 0; m &= m - 1 {
		f(n.children[bits.TrailingZeros32(m)])
	}
	return n
}

// pushChildren appends the children of n to stack in reverse alphabet order,
// so popping the stack yields them in alphabet order.
func (n *Node) pushChildren(stack []frame, depth int) []frame {
	for m := n.mask; m != 0; {
		i := bits.Len32(m) - 1
		stack = append(stack, frame{node: n.children[i], depth: depth})
		m &^= 1 << i
	}
	return stack
}
