package ttree

import (
	"fmt"

	"github.com/halstead/ttree/slice"
)

// checkInvariants walks the tree verifying the structural invariants every
// operation is supposed to maintain: AVL balance, the ⌈K/2⌉ minimum
// occupancy of internal nodes, dense per-node key windows, and a successor
// thread that visits every key exactly once in ascending order. It is
// intended for use in tests, not on any hot path.
func (t *Tree[T]) checkInvariants() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("ttree: root has a parent")
	}
	if _, err := t.checkSubtree(t.root); err != nil {
		return err
	}
	return t.checkSuccessorThread()
}

// checkSubtree validates n and its descendants, returning n's height.
func (t *Tree[T]) checkSubtree(n *node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.bf < -1 || n.bf > 1 {
		return 0, fmt.Errorf("ttree: node bf %d out of AVL range", n.bf)
	}
	if err := t.checkDenseWindow(n); err != nil {
		return 0, err
	}
	minOcc, maxOcc := ceilHalf(t.keysPerNode), t.keysPerNode
	if n.count() < 1 || n.count() > maxOcc {
		return 0, fmt.Errorf("ttree: node count %d out of [1,%d]", n.count(), maxOcc)
	}
	if n.isInternal() && n.count() < minOcc {
		return 0, fmt.Errorf("ttree: internal node count %d below minimum %d", n.count(), minOcc)
	}
	lh, err := t.checkSubtree(n.children[Left])
	if err != nil {
		return 0, err
	}
	rh, err := t.checkSubtree(n.children[Right])
	if err != nil {
		return 0, err
	}
	if got, want := n.bf, int8(rh-lh); got != want {
		return 0, fmt.Errorf("ttree: node bf %d does not match height(right)-height(left) %d", got, want)
	}
	if n.children[Left] != nil && n.children[Left].parent != n {
		return 0, fmt.Errorf("ttree: left child's parent pointer is wrong")
	}
	if n.children[Right] != nil && n.children[Right].parent != n {
		return 0, fmt.Errorf("ttree: right child's parent pointer is wrong")
	}
	return max(lh, rh) + 1, nil
}

// checkDenseWindow confirms that exactly the slots in [minIdx,maxIdx] are
// the node's live keys, using slice.Partition to separate "in window" index
// markers from "out of window" ones and checking the kept count matches the
// node's reported occupancy.
func (t *Tree[T]) checkDenseWindow(n *node[T]) error {
	idxs := make([]int, len(n.keys))
	for i := range idxs {
		idxs[i] = i
	}
	kept := slice.Partition(idxs, func(i int) bool { return i >= n.minIdx && i <= n.maxIdx })
	if len(kept) != n.count() {
		return fmt.Errorf("ttree: dense window count %d does not match partitioned count %d", n.count(), len(kept))
	}
	if n.minIdx < 0 || n.maxIdx >= len(n.keys) || n.minIdx > n.maxIdx+1 {
		return fmt.Errorf("ttree: node window [%d,%d] invalid for capacity %d", n.minIdx, n.maxIdx, len(n.keys))
	}
	return nil
}

// checkSuccessorThread walks the successor chain from the leftmost node and
// confirms it visits every key exactly once, in the same order as a
// recursive in-order traversal, and that the total matches t.size.
func (t *Tree[T]) checkSuccessorThread() error {
	var want []T
	var walk func(*node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.children[Left])
		for i := n.minIdx; i <= n.maxIdx; i++ {
			want = append(want, n.keys[i])
		}
		walk(n.children[Right])
	}
	walk(t.root)

	var got []T
	if t.root != nil {
		for n := leftmost(t.root); n != nil; n = n.successor {
			for i := n.minIdx; i <= n.maxIdx; i++ {
				got = append(got, n.keys[i])
			}
		}
	}
	if len(got) != len(want) {
		return fmt.Errorf("ttree: successor thread visited %d keys, recursive traversal visited %d", len(got), len(want))
	}
	for i := range want {
		if t.cmp(got[i], want[i]) != 0 {
			return fmt.Errorf("ttree: successor thread order diverges from in-order traversal at position %d", i)
		}
	}
	if len(want) != t.size {
		return fmt.Errorf("ttree: traversal found %d keys, tree.size reports %d", len(want), t.size)
	}
	return nil
}
