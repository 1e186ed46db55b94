package trie

type Option func(*Trie) *Trie

// WithMaxNodes limits how many nodes (root excluded) the trie may hold.
// An insert that would go over the limit fails with ErrAllocation.
// Zero or a negative value means no limit.
func WithMaxNodes(limit int) Option {
	return func(t *Trie) *Trie {
		if limit < 0 {
			limit = 0
		}
		t.maxNodes = limit
		return t
	}
}
