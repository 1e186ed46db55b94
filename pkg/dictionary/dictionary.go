package dictionary

import (
	"errors"
	"strings"
	"sync"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
	"github.com/rs/zerolog"
)

// Dictionary is a word set backed by a trie that is safe for concurrent use.
// The whole trie is the unit of locking: mutations take the write lock and
// queries share the read lock.
type Dictionary struct {
	mu        sync.RWMutex
	words     *trie.Trie
	logger    zerolog.Logger
	maxNodes  int
	lowercase bool
}

// NewDictionary creates an empty dictionary configured by opts.
func NewDictionary(opts ...Option) *Dictionary {
	d := DefaultOptions()
	for _, opt := range opts {
		d = opt(d)
	}
	d.words = trie.New(trie.WithMaxNodes(d.maxNodes))
	return d
}

// Insert adds word and reports what changed. The error is the same as the one in the
// result; it is non-nil for invalid words and when the node limit is reached.
func (d *Dictionary) Insert(word string) (*OperationResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.insert(word)
}

// InsertAll adds every word in order. Invalid words are reported and skipped;
// the first allocation failure stops the load and is returned.
func (d *Dictionary) InsertAll(words []string) ([]*OperationResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	results := make([]*OperationResult, 0, len(words))
	for _, word := range words {
		result, err := d.insert(word)
		results = append(results, result)
		if errors.Is(err, trie.ErrAllocation) {
			return results, err
		}
	}
	return results, nil
}

func (d *Dictionary) insert(word string) (*OperationResult, error) {
	word = d.normalize(word)
	result := &OperationResult{Action: InsertWord, Word: word}

	nodes, count := d.words.NodeCount(), d.words.Len()
	if err := d.words.Insert(word); err != nil {
		result.Err = err
		d.logger.Warn().Err(err).Str("word", word).Msg("insert rejected")
		return result, err
	}
	result.NodesAdded = d.words.NodeCount() - nodes
	result.Changed = d.words.Len() != count

	d.logger.Debug().
		Str("word", word).
		Bool("changed", result.Changed).
		Int("nodes_added", result.NodesAdded).
		Msg("insert")
	return result, nil
}

// Delete removes word and reports how many nodes were pruned. Deleting a word that
// is not stored succeeds with Changed set to false.
func (d *Dictionary) Delete(word string) (*OperationResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	word = d.normalize(word)
	result := &OperationResult{Action: DeleteWord, Word: word}

	nodes, count := d.words.NodeCount(), d.words.Len()
	if err := d.words.Delete(word); err != nil {
		result.Err = err
		d.logger.Warn().Err(err).Str("word", word).Msg("delete rejected")
		return result, err
	}
	result.NodesPruned = nodes - d.words.NodeCount()
	result.Changed = d.words.Len() != count

	d.logger.Debug().
		Str("word", word).
		Bool("changed", result.Changed).
		Int("nodes_pruned", result.NodesPruned).
		Msg("delete")
	return result, nil
}

// Exists reports whether word is stored.
func (d *Dictionary) Exists(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.words.Exists(d.normalize(word))
}

// List returns every stored word in ascending order.
func (d *Dictionary) List() trie.WordSet {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.words.ListAll()
}

// Complete returns the stored words starting with prefix. ok is false when there is
// no such prefix.
func (d *Dictionary) Complete(prefix string) (words trie.WordSet, ok bool, err error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.words.Autocomplete(d.normalize(prefix))
}

// Len returns the number of stored words.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.words.Len()
}

// NodeCount returns the number of live trie nodes, root excluded.
func (d *Dictionary) NodeCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.words.NodeCount()
}

// Reset drops every stored word.
func (d *Dictionary) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.words.Free()
	d.logger.Debug().Msg("reset")
}

// Verify checks the structural invariants of the underlying trie.
func (d *Dictionary) Verify() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.words.Verify()
}

func (d *Dictionary) normalize(word string) string {
	if !d.lowercase {
		return word
	}
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, word)
}
