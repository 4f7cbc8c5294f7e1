package ttree

import "github.com/halstead/ttree/stack"

// An allocator hands out node values for a tree, reusing nodes freed by
// deletion instead of always allocating fresh ones. A zero allocator is
// ready for use.
type allocator[T any] struct {
	free stack.Stack[*node[T]]
}

// allocNode returns a node with capacity for k keys, initialized to hold
// key as its sole element. It reuses a freed node's backing array when one
// of the right capacity is available.
func (a *allocator[T]) allocNode(k int, key T) *node[T] {
	if n, ok := a.free.Pop(); ok && len(n.keys) == k {
		*n = node[T]{keys: n.keys}
		n.keys[0] = key
		n.minIdx, n.maxIdx = 0, 0
		n.side = Root
		return n
	}
	return newNode[T](k, key)
}

// freeNode returns n to the allocator's freelist for reuse. n must already
// be fully detached from the tree (no parent, no children, no successor).
func (a *allocator[T]) freeNode(n *node[T]) {
	var zero T
	for i := range n.keys {
		n.keys[i] = zero
	}
	n.parent, n.children[Left], n.children[Right], n.successor = nil, nil, nil, nil
	n.minIdx, n.maxIdx, n.bf = 0, -1, 0
	a.free.Push(n)
}
