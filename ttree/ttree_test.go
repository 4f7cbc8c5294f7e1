package ttree_test

import (
	"cmp"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/halstead/ttree/mapset"
	"github.com/halstead/ttree/ttree"
	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func allKeys[T any](tree *ttree.Tree[T]) []T {
	got := make([]T, 0, tree.Len())
	tree.Inorder(func(v T) bool { got = append(got, v); return true })
	return got
}

func sortedUnique(ws []string, drop mapset.Set[string]) []string {
	out := mapset.New(ws...).RemoveAll(drop).Slice()
	sort.Strings(out)
	return out
}

func TestNew(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		tree := ttree.New(100, cmp.Compare[string])
		if n := tree.Len(); n != 0 {
			t.Errorf("Len of empty tree: got %v, want 0", n)
		}
		if !tree.IsEmpty() {
			t.Error("IsEmpty should be true for an empty tree")
		}
	})
	t.Run("NonEmpty", func(t *testing.T) {
		tree := ttree.New(4, cmp.Compare[string], "please", "fetch", "your", "slippers")
		got := allKeys(tree)
		want := []string{"fetch", "please", "slippers", "your"}
		if diff := gocmp.Diff(got, want); diff != "" {
			t.Errorf("New: unexpected contents (-got, +want)\n%s", diff)
		}
		if n := tree.Len(); n != len(want) {
			t.Errorf("Len: got %d, want %d", n, len(want))
		}
	})
	t.Run("Duplicates", func(t *testing.T) {
		tree := ttree.New(4, cmp.Compare[string], "we", "can", "dance", "we", "can", "dance")
		got := allKeys(tree)
		want := []string{"can", "dance", "we"}
		if diff := gocmp.Diff(got, want); diff != "" {
			t.Errorf("New: unexpected contents (-got, +want)\n%s", diff)
		}
		if n := tree.Len(); n != len(want) {
			t.Errorf("Len: got %d, want %d", n, len(want))
		}
	})
}

func TestRemoval(t *testing.T) {
	words := strings.Fields(`a foolish consistency is the hobgoblin of little minds`)
	tree := ttree.New(4, cmp.Compare[string], words...)

	got := allKeys(tree)
	want := sortedUnique(words, nil)
	if diff := gocmp.Diff(want, got); diff != "" {
		t.Errorf("Initial contents differ from expected (-want, +got)\n%s", diff)
	}

	drop := mapset.New("a", "is", "of", "the")
	for w := range drop {
		if err := tree.Delete(w); err != nil {
			t.Errorf("Delete(%q): %v", w, err)
		}
	}

	got = allKeys(tree)
	want = sortedUnique(words, drop)
	if diff := gocmp.Diff(want, got); diff != "" {
		t.Errorf("Contents after removal are incorrect (-want, +got)\n%s", diff)
	}

	if err := tree.Delete("nonesuch"); err != ttree.ErrNotFound {
		t.Errorf("Delete(nonesuch): got %v, want ErrNotFound", err)
	}
}

func TestInsertion(t *testing.T) {
	type kv = ttree.KV[string, int]

	tree := ttree.New(4, kv{}.Compare(cmp.Compare))
	checkValue := func(key string, want int) {
		t.Helper()
		got, ok := tree.Lookup(kv{Key: key})
		if !ok {
			t.Errorf("Key %q not found", key)
		} else if got.Value != want {
			t.Errorf("Key %q: got %v, want %v", key, got.Value, want)
		}
	}

	if err := tree.Insert(kv{"x", 2}); err != nil {
		t.Fatalf("Insert(x, 2): %v", err)
	}
	checkValue("x", 2)

	if err := tree.Insert(kv{"x", 3}); err != ttree.ErrDuplicate {
		t.Errorf("Insert(x, 3) again: got %v, want ErrDuplicate", err)
	}
	checkValue("x", 2)

	if isNew := tree.Replace(kv{"x", 5}); isNew {
		t.Error("Replace(x, 5): got new, want existing")
	}
	checkValue("x", 5)

	if isNew := tree.Replace(kv{"y", 7}); !isNew {
		t.Error("Replace(y, 7): got existing, want new")
	}
	checkValue("y", 7)

	if err := tree.Delete(kv{Key: "z"}); err != ttree.ErrNotFound {
		t.Errorf("Delete(z): got %v, want ErrNotFound", err)
	}
}

func TestInorderAfter(t *testing.T) {
	keys := []string{"8", "6", "7", "5", "3", "0", "9"}
	tree := ttree.New(4, cmp.Compare[string], keys...)
	tests := []struct {
		key  string
		want string
	}{
		{"A", ""},
		{"9", "9"},
		{"8", "8 9"},
		{"7", "7 8 9"},
		{"6", "6 7 8 9"},
		{"5", "5 6 7 8 9"},
		{"4", "5 6 7 8 9"},
		{"3", "3 5 6 7 8 9"},
		{"2", "3 5 6 7 8 9"},
		{"1", "3 5 6 7 8 9"},
		{"0", "0 3 5 6 7 8 9"},
		{"", "0 3 5 6 7 8 9"},
	}
	for _, test := range tests {
		want := strings.Fields(test.want)
		var got []string
		tree.InorderAfter(test.key, func(k string) bool { got = append(got, k); return true })
		if diff := gocmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("InorderAfter(%v) result differed from expected\n%s", test.key, diff)
		}
	}
}

func TestKV(t *testing.T) {
	type kv = ttree.KV[string, int]
	compare := kv{}.Compare(cmp.Compare)

	tree := ttree.New(4, compare, []kv{
		{"hello", 1}, {"is", 2}, {"there", 3},
		{"anybody", 4}, {"in", 5}, {"here", 6},
	}...)

	var gotk []string
	var gotv []int
	tree.Inorder(func(kv kv) bool {
		gotk = append(gotk, kv.Key)
		gotv = append(gotv, kv.Value)
		return true
	})

	if diff := gocmp.Diff(gotk, []string{"anybody", "hello", "here", "in", "is", "there"}); diff != "" {
		t.Errorf("Keys (-got, +want):\n%s", diff)
	}
	if diff := gocmp.Diff(gotv, []int{4, 1, 6, 5, 2, 3}); diff != "" {
		t.Errorf("Values (-got, +want):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	orig := ttree.New(4, cmp.Compare[string], "a", "b", "c", "d", "e")
	cp := orig.Clone()
	orig.Clear()
	cp.Insert("q")

	if orig.Len() != 0 {
		t.Errorf("Original: length = %d, want 0", orig.Len())
	}

	got := allKeys(cp)
	if diff := gocmp.Diff(got, []string{"a", "b", "c", "d", "e", "q"}); diff != "" {
		t.Errorf("Clone content (-got, +want):\n%s", diff)
	}
}

func TestMinMax(t *testing.T) {
	tree := ttree.New(4, cmp.Compare[int])
	if got := tree.Min(); got != 0 {
		t.Errorf("Min of empty tree: got %d, want 0", got)
	}
	if got := tree.Max(); got != 0 {
		t.Errorf("Max of empty tree: got %d, want 0", got)
	}
	for _, v := range []int{5, 3, 8, 1, 9, 4} {
		tree.Insert(v)
	}
	if got := tree.Min(); got != 1 {
		t.Errorf("Min: got %d, want 1", got)
	}
	if got := tree.Max(); got != 9 {
		t.Errorf("Max: got %d, want 9", got)
	}
}

// TestScenarioAscending is spec scenario 1: insert keys 1..10 in order at
// K=4; the tree must stay shallow, and its extremes and in-order sequence
// must match the input exactly.
func TestScenarioAscending(t *testing.T) {
	tree := ttree.New(4, cmp.Compare[int])
	for i := 1; i <= 10; i++ {
		tree.Insert(i)
	}
	if h := tree.Height(); h > 3 {
		t.Errorf("Height: got %d, want <= 3", h)
	}
	if got := tree.Min(); got != 1 {
		t.Errorf("Min: got %d, want 1", got)
	}
	if got := tree.Max(); got != 10 {
		t.Errorf("Max: got %d, want 10", got)
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if diff := gocmp.Diff(allKeys(tree), want); diff != "" {
		t.Errorf("Inorder (-got, +want):\n%s", diff)
	}
}

// TestScenarioDeleteMiddle is spec scenario 2.
func TestScenarioDeleteMiddle(t *testing.T) {
	tree := ttree.New(4, cmp.Compare[int])
	for i := 1; i <= 10; i++ {
		tree.Insert(i)
	}
	if err := tree.Delete(5); err != nil {
		t.Fatalf("Delete(5): %v", err)
	}
	if _, ok := tree.Lookup(5); ok {
		t.Error("Lookup(5) after delete reported found")
	}
	want := []int{1, 2, 3, 4, 6, 7, 8, 9, 10}
	if diff := gocmp.Diff(allKeys(tree), want); diff != "" {
		t.Errorf("Inorder after delete (-got, +want):\n%s", diff)
	}
}

// TestScenarioDescending is spec scenario 3: inserting in reverse order
// must still yield the keys in ascending order. AVL balance under
// descending inserts is checked by TestInvariantsInsertReverse.
func TestScenarioDescending(t *testing.T) {
	tree := ttree.New(4, cmp.Compare[int])
	for i := 10; i >= 1; i-- {
		tree.Insert(i)
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if diff := gocmp.Diff(allKeys(tree), want); diff != "" {
		t.Errorf("Inorder (-got, +want):\n%s", diff)
	}
}

// TestScenarioMixedInsertOrder is spec scenario 4.
func TestScenarioMixedInsertOrder(t *testing.T) {
	tree := ttree.New(4, cmp.Compare[int])
	for _, v := range []int{7, 3, 11, 1, 5, 9, 13, 2, 4, 6, 8} {
		tree.Insert(v)
	}
	c := tree.LookupCursor(5)
	if !c.Valid() || c.Key() != 5 {
		t.Fatalf("LookupCursor(5): got valid=%v key=%v, want valid=true key=5", c.Valid(), c.Key())
	}
	if c.Next(); c.Key() != 6 {
		t.Errorf("Next after 5: got %d, want 6", c.Key())
	}
	if c.Next(); c.Key() != 7 {
		t.Errorf("Next after 6: got %d, want 7", c.Key())
	}
}

// TestScenarioOverflowLeft is spec scenario 5: filling a single node at
// K=8 and then inserting a new minimum forces overflow into a new left
// leaf, whose successor must be the node it split from.
func TestScenarioOverflowLeft(t *testing.T) {
	tree := ttree.New(8, cmp.Compare[int])
	for i := 1; i <= 8; i++ {
		tree.Insert(i)
	}
	if h := tree.Height(); h != 1 {
		t.Fatalf("Height before overflow: got %d, want 1 (single full node)", h)
	}
	if err := tree.Insert(0); err != nil {
		t.Fatalf("Insert(0): %v", err)
	}
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	if diff := gocmp.Diff(allKeys(tree), want); diff != "" {
		t.Errorf("Inorder after overflow (-got, +want):\n%s", diff)
	}
}

// TestScenarioRandomDrainViaCursor is spec scenario 6: insert a random
// permutation, then drain it entirely by repeatedly taking the first
// cursor and placefully deleting through it, and checking that every key
// was drained.
func TestScenarioRandomDrainViaCursor(t *testing.T) {
	rng := rand.New(rand.NewSource(20260731))
	tree := ttree.New(4, cmp.Compare[int])
	for _, v := range rng.Perm(100) {
		tree.Insert(v)
	}
	count := 0
	for tree.Len() > 0 {
		c := tree.FirstCursor()
		if !c.Valid() {
			t.Fatalf("FirstCursor invalid with Len=%d", tree.Len())
		}
		if err := tree.DeletePlaceful(c); err != nil {
			t.Fatalf("DeletePlaceful: %v", err)
		}
		count++
	}
	if count != 100 {
		t.Errorf("drained %d keys, want 100", count)
	}
}

func TestDumpDiff(t *testing.T) {
	tree := ttree.New(4, cmp.Compare[int], 1, 2, 3)
	before := tree.Dump()
	tree.Insert(4)
	after := tree.Dump()

	if before == after {
		t.Fatal("Dump unchanged after Insert")
	}
	diff := ttree.DumpDiff(before, after)
	if diff == "" {
		t.Error("DumpDiff of differing dumps returned empty string")
	}
	if same := ttree.DumpDiff(after, after); same != "" {
		t.Errorf("DumpDiff of identical dumps: got %q, want empty", same)
	}
}

func TestHeightAndDump(t *testing.T) {
	tree := ttree.New(4, cmp.Compare[int])
	for i := 1; i <= 20; i++ {
		tree.Insert(i)
	}
	if h := tree.Height(); h <= 0 {
		t.Errorf("Height: got %d, want > 0", h)
	}
	if s := tree.Dump(); s == "" {
		t.Error("Dump of non-empty tree returned empty string")
	}
	empty := ttree.New(4, cmp.Compare[int])
	if h := empty.Height(); h != 0 {
		t.Errorf("Height of empty tree: got %d, want 0", h)
	}
}
