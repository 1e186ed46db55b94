package trie

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTrie verifies that a new trie is empty but owns a root.
func TestNewTrie(t *testing.T) {
	words := New()
	require.NotNil(t, words.Root(), "root should exist upon creation")
	assert.False(t, words.Root().HasChildren(), "root of a new trie should have no children")
	assert.Equal(t, 0, words.Len())
	assert.Equal(t, 0, words.NodeCount())
	assert.NoError(t, words.Verify())
}

// TestInsertBuildsLetterPath mirrors the layout of a single word letter by letter.
func TestInsertBuildsLetterPath(t *testing.T) {
	words := New()
	require.NoError(t, words.Insert("praline"))

	current := words.Root()
	for i := 0; i < len("praline"); i++ {
		next, err := current.Child("praline"[i])
		require.NoError(t, err)
		require.NotNil(t, next, "missing node for %q", "praline"[:i+1])
		assert.Equal(t, "praline"[i], next.Letter())
		current = next
	}
	assert.True(t, current.IsTerminal(), "last node should be terminal")
	assert.False(t, current.HasChildren())
	assert.Equal(t, 7, words.NodeCount())
	assert.NoError(t, words.Verify())
}

// TestInsertIsIdempotent checks that inserting twice is the same as inserting once.
func TestInsertIsIdempotent(t *testing.T) {
	once := New()
	twice := New()
	for _, word := range []string{"pro", "propane", "p"} {
		require.NoError(t, once.Insert(word))
		require.NoError(t, twice.Insert(word))
		require.NoError(t, twice.Insert(word))
	}

	assert.Equal(t, once.ListAll(), twice.ListAll())
	assert.Equal(t, once.Len(), twice.Len())
	assert.Equal(t, once.NodeCount(), twice.NodeCount())
}

// TestEmptyWordIsNoOp covers insert, delete and exists of the empty word.
func TestEmptyWordIsNoOp(t *testing.T) {
	words := New()
	assert.NoError(t, words.Insert(""))
	assert.Equal(t, 0, words.Len())
	assert.False(t, words.Exists(""), "the empty word is never stored")

	require.NoError(t, words.Insert("a"))
	assert.NoError(t, words.Delete(""))
	assert.Equal(t, WordSet{"a"}, words.ListAll())
	assert.NoError(t, words.Verify())
}

// TestExists checks membership, including prefixes that are not words themselves.
func TestExists(t *testing.T) {
	words := New()
	for _, word := range []string{"firstinlastout", "p", "praline", "propane", "pro"} {
		require.NoError(t, words.Insert(word))
	}

	for _, word := range []string{"p", "praline", "propane", "pro", "firstinlastout"} {
		assert.True(t, words.Exists(word), "%q should exist", word)
	}
	for _, word := range []string{"yolo", "skata", "pr", "prop", "first", "propanes", "Pro", "pro-"} {
		assert.False(t, words.Exists(word), "%q should not exist", word)
	}
}

// TestContainsRejectsInvalidSymbols reports invalid input instead of false.
func TestContainsRejectsInvalidSymbols(t *testing.T) {
	words := New()
	require.NoError(t, words.Insert("yolo"))

	ok, err := words.Contains("yolo")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = words.Contains("yoLo")
	assert.False(t, ok)
	var symbolErr *SymbolError
	require.ErrorAs(t, err, &symbolErr)
	assert.Equal(t, 2, symbolErr.Pos)
	assert.Equal(t, byte('L'), symbolErr.Symbol)
}

// TestInvalidSymbolsNeverMutate checks that rejected words leave the trie untouched.
func TestInvalidSymbolsNeverMutate(t *testing.T) {
	testCases := []string{"Praline", "pr aline", "pral1ne", "caf\xc3\xa9", "{", "`", "pro\x00"}

	for _, word := range testCases {
		words := New()
		require.NoError(t, words.Insert("pro"))

		assert.ErrorIs(t, words.Insert(word), ErrInvalidSymbol, "insert %q", word)
		assert.ErrorIs(t, words.Delete(word), ErrInvalidSymbol, "delete %q", word)
		_, ok, err := words.Autocomplete(word)
		assert.ErrorIs(t, err, ErrInvalidSymbol, "autocomplete %q", word)
		assert.False(t, ok)

		assert.Equal(t, WordSet{"pro"}, words.ListAll())
		assert.Equal(t, 3, words.NodeCount())
		assert.NoError(t, words.Verify())
	}
}

// TestListAllScenario follows the insert/delete sequence of the reference scenario.
func TestListAllScenario(t *testing.T) {
	words := New()
	for _, word := range []string{"p", "praline", "pro", "propane"} {
		require.NoError(t, words.Insert(word))
	}
	assert.Equal(t, WordSet{"p", "praline", "pro", "propane"}, words.ListAll())

	require.NoError(t, words.Delete("praline"))
	assert.Equal(t, WordSet{"p", "pro", "propane"}, words.ListAll())

	require.NoError(t, words.Delete("pro"))
	assert.False(t, words.Exists("pro"))
	assert.True(t, words.Exists("propane"))

	completions, ok, err := words.Autocomplete("pr")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, WordSet{"propane"}, completions)

	completions, ok, err = words.Autocomplete("prol")
	require.NoError(t, err)
	assert.False(t, ok, "prol has no path in the trie")
	assert.Nil(t, completions)
	assert.NoError(t, words.Verify())
}

// TestEmptyTrieScenario covers queries against a trie that holds nothing.
func TestEmptyTrieScenario(t *testing.T) {
	words := New()

	completions, ok, err := words.Autocomplete("yolo")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, completions)

	all := words.ListAll()
	assert.NotNil(t, all, "an empty listing is still a result")
	assert.Empty(t, all)

	completions, ok, err = words.Autocomplete("")
	require.NoError(t, err)
	assert.True(t, ok, "the empty prefix always resolves")
	assert.Empty(t, completions)
}

// TestAutocomplete checks the completions for prefixes at every depth.
func TestAutocomplete(t *testing.T) {
	words := New()
	for _, word := range []string{"firstinlastout", "p", "praline", "propane", "pro"} {
		require.NoError(t, words.Insert(word))
	}

	testCases := []struct {
		prefix   string
		expected WordSet
	}{
		{"", WordSet{"firstinlastout", "p", "praline", "pro", "propane"}},
		{"p", WordSet{"p", "praline", "pro", "propane"}},
		{"pr", WordSet{"praline", "pro", "propane"}},
		{"pro", WordSet{"pro", "propane"}},
		{"propane", WordSet{"propane"}},
		{"f", WordSet{"firstinlastout"}},
	}

	for _, tc := range testCases {
		completions, ok, err := words.Autocomplete(tc.prefix)
		require.NoError(t, err)
		assert.True(t, ok, "prefix %q should resolve", tc.prefix)
		assert.Equal(t, tc.expected, completions, "prefix %q", tc.prefix)
	}

	for _, prefix := range []string{"prol", "propanes", "q", "yolo"} {
		_, ok, err := words.Autocomplete(prefix)
		require.NoError(t, err)
		assert.False(t, ok, "prefix %q should not resolve", prefix)
	}
}

// TestDeletePrunesDeadBranches checks node counts as branches are pruned.
func TestDeletePrunesDeadBranches(t *testing.T) {
	words := New()
	for _, word := range []string{"p", "praline", "pro", "propane"} {
		require.NoError(t, words.Insert(word))
	}
	// p r a l i n e o p a n e
	assert.Equal(t, 12, words.NodeCount())

	require.NoError(t, words.Delete("praline"))
	assert.Equal(t, 7, words.NodeCount(), "a l i n e should be pruned")

	require.NoError(t, words.Delete("pro"))
	assert.Equal(t, 7, words.NodeCount(), "pro is still the path to propane")

	require.NoError(t, words.Delete("propane"))
	assert.Equal(t, 1, words.NodeCount(), "only p should remain")

	require.NoError(t, words.Delete("p"))
	assert.Equal(t, 0, words.NodeCount(), "first level nodes are pruned too")
	assert.False(t, words.Root().HasChildren())
	assert.NoError(t, words.Verify())
}

// TestDeleteMissingIsNoOp checks that deleting absent words changes nothing.
func TestDeleteMissingIsNoOp(t *testing.T) {
	words := New()
	for _, word := range []string{"p", "pro", "propane"} {
		require.NoError(t, words.Insert(word))
	}
	nodes := words.NodeCount()

	for _, word := range []string{"yolo", "prolo", "pr", "prop", "propanes", "skata"} {
		require.NoError(t, words.Delete(word), "delete %q", word)
		assert.Equal(t, nodes, words.NodeCount(), "delete %q should not prune", word)
	}
	assert.Equal(t, WordSet{"p", "pro", "propane"}, words.ListAll())

	require.NoError(t, words.Delete("pro"))
	require.NoError(t, words.Delete("pro"), "second delete is a no-op")
	assert.Equal(t, WordSet{"p", "propane"}, words.ListAll())
}

// TestReinsertAfterDelete checks that a removed word can be stored again.
func TestReinsertAfterDelete(t *testing.T) {
	words := New()
	require.NoError(t, words.Insert("yolo"))
	require.NoError(t, words.Delete("yolo"))
	assert.False(t, words.Exists("yolo"))
	require.NoError(t, words.Insert("yolo"))
	assert.True(t, words.Exists("yolo"))
	assert.Equal(t, 4, words.NodeCount())
}

// TestMaxNodes checks that a failed insert leaves the trie as it was.
func TestMaxNodes(t *testing.T) {
	words := New(WithMaxNodes(5))
	require.NoError(t, words.Insert("pro"))

	err := words.Insert("propane")
	require.ErrorIs(t, err, ErrAllocation)
	assert.False(t, words.Exists("propane"))
	assert.Equal(t, 3, words.NodeCount(), "no node of the failed insert is kept")
	assert.NoError(t, words.Verify())

	// fits exactly
	require.NoError(t, words.Insert("prone"))
	assert.Equal(t, 5, words.NodeCount())

	// no new nodes needed
	require.NoError(t, words.Insert("pr"))
	assert.Equal(t, WordSet{"pr", "pro", "prone"}, words.ListAll())

	require.NoError(t, words.Delete("prone"))
	require.NoError(t, words.Insert("prop"), "pruning gives nodes back")
}

// TestWalk checks early stopping and restarting of the lazy walk.
func TestWalk(t *testing.T) {
	words := New()
	for _, word := range []string{"a", "ab", "abc", "abd", "b"} {
		require.NoError(t, words.Insert(word))
	}

	var seen []string
	found, err := words.Walk("a", func(word string) bool {
		seen = append(seen, word)
		return len(seen) < 2
	})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "ab"}, seen)

	seen = nil
	found, err = words.Walk("a", func(word string) bool {
		seen = append(seen, word)
		return true
	})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "ab", "abc", "abd"}, seen)

	found, err = words.Walk("c", func(string) bool { return true })
	require.NoError(t, err)
	assert.False(t, found)
}

// TestFree checks that teardown leaves an empty, reusable trie.
func TestFree(t *testing.T) {
	words := New()
	for _, word := range []string{"firstinlastout", "p", "praline", "propane", strings.Repeat("z", 10000)} {
		require.NoError(t, words.Insert(word))
	}
	words.Free()

	assert.Equal(t, 0, words.Len())
	assert.Equal(t, 0, words.NodeCount())
	assert.Empty(t, words.ListAll())
	assert.NoError(t, words.Verify())

	require.NoError(t, words.Insert("yolo"))
	assert.Equal(t, WordSet{"yolo"}, words.ListAll())
}

// TestDeepWords checks that very long words do not depend on call depth.
func TestDeepWords(t *testing.T) {
	words := New()
	long := strings.Repeat("ab", 50000)
	require.NoError(t, words.Insert(long))
	require.NoError(t, words.Insert(long[:10]))

	assert.Equal(t, WordSet{long[:10], long}, words.ListAll())
	require.NoError(t, words.Delete(long))
	assert.Equal(t, 10, words.NodeCount())
	assert.NoError(t, words.Verify())
}

// TestWordSetFree checks that releasing a result set drops its storage.
func TestWordSetFree(t *testing.T) {
	words := New()
	require.NoError(t, words.Insert("pro"))
	set := words.ListAll()
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, []string{"pro"}, set.Strings())

	set.Free()
	assert.Nil(t, set)
	assert.Equal(t, 0, set.Len())
}

// TestRandomOperations compares the trie with a map after every mutation.
func TestRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	words := New()
	expected := map[string]bool{}
	pool := generateRandomWords(rnd, 300, 1, 6, 4)

	for step := 0; step < 5000; step++ {
		word := pool[rnd.Intn(len(pool))]
		if rnd.Intn(3) == 0 {
			require.NoError(t, words.Delete(word))
			delete(expected, word)
		} else {
			require.NoError(t, words.Insert(word))
			expected[word] = true
		}
		require.NoError(t, words.Verify(), "step %d", step)
	}

	want := make([]string, 0, len(expected))
	for word := range expected {
		want = append(want, word)
	}
	sort.Strings(want)

	got := words.ListAll()
	assert.Equal(t, want, got.Strings())
	assert.True(t, sort.StringsAreSorted(got), "listing should be sorted")
	for _, word := range pool {
		assert.Equal(t, expected[word], words.Exists(word), "exists %q", word)
	}

	for _, prefix := range []string{"a", "b", "ab", "dc", "ddd"} {
		var wantCompletions []string
		for _, word := range want {
			if strings.HasPrefix(word, prefix) {
				wantCompletions = append(wantCompletions, word)
			}
		}
		completions, ok, err := words.Autocomplete(prefix)
		require.NoError(t, err)
		assert.Equal(t, len(wantCompletions) > 0, ok, "prefix %q", prefix)
		assert.Equal(t, wantCompletions, completions.Strings(), "prefix %q", prefix)
	}
}

// TestNodeChildRejectsInvalidLetter checks the validated child lookup.
func TestNodeChildRejectsInvalidLetter(t *testing.T) {
	words := New()
	child, err := words.Root().Child('A')
	assert.Nil(t, child)
	assert.True(t, errors.Is(err, ErrInvalidSymbol))
}

// TestForEachChildOrder checks that children are visited in alphabet order.
func TestForEachChildOrder(t *testing.T) {
	words := New()
	for _, word := range []string{"z", "m", "a", "q"} {
		require.NoError(t, words.Insert(word))
	}

	var letters []byte
	words.Root().ForEachChild(func(child *Node) {
		letters = append(letters, child.Letter())
	})
	assert.Equal(t, []byte("amqz"), letters)
}

func BenchmarkInsert(b *testing.B) {
	words := generateRandomWords(rand.New(rand.NewSource(1)), b.N, 3, 12, AlphabetSize)
	root := New()
	b.ResetTimer()

	for _, word := range words {
		_ = root.Insert(word)
	}
}

func BenchmarkExists(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	words := generateRandomWords(rnd, 100000, 3, 12, AlphabetSize)
	root := New()
	for _, word := range words {
		_ = root.Insert(word)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root.Exists(words[rnd.Intn(len(words))])
	}
}

func BenchmarkListAll(b *testing.B) {
	words := generateRandomWords(rand.New(rand.NewSource(1)), 100000, 3, 12, AlphabetSize)
	root := New()
	for _, word := range words {
		_ = root.Insert(word)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root.ListAll()
	}
}

// generateRandomWords returns total words of minLen..maxLen letters drawn from the
// first letters letters of the alphabet.
func generateRandomWords(rnd *rand.Rand, total, minLen, maxLen, letters int) []string {
	words := make([]string, 0, total)
	for i := 0; i < total; i++ {
		word := make([]byte, minLen+rnd.Intn(maxLen-minLen+1))
		for j := range word {
			word[j] = byte('a' + rnd.Intn(letters))
		}
		words = append(words, string(word))
	}
	return words
}
