package ttree

import (
	"fmt"
	"strings"

	"github.com/halstead/ttree/mdiff"
	"github.com/halstead/ttree/mstr"
	"github.com/halstead/ttree/queue"
)

// Dump renders a level-order view of the tree's node structure, one line
// per node, for debugging and tests. Long key representations are
// truncated to keep the output readable.
func (t *Tree[T]) Dump() string {
	if t.root == nil {
		return "(empty)\n"
	}
	var sb strings.Builder
	q := queue.New[*node[T]]()
	q.Add(t.root)
	for !q.IsEmpty() {
		n, _ := q.Pop()
		fmt.Fprintf(&sb, "%s [%s,%s] bf=%d side=%s count=%d\n",
			nodeLabel(n),
			mstr.Trunc(fmt.Sprint(n.min()), 32),
			mstr.Trunc(fmt.Sprint(n.max()), 32),
			n.bf, n.side, n.count())
		if n.children[Left] != nil {
			q.Add(n.children[Left])
		}
		if n.children[Right] != nil {
			q.Add(n.children[Right])
		}
	}
	return sb.String()
}

func nodeLabel[T any](n *node[T]) string {
	return fmt.Sprintf("node(%p)", n)
}

// DumpDiff renders a unified diff between two Dump outputs, for comparing a
// tree's shape before and after an operation under test.
func DumpDiff(before, after string) string {
	d := mdiff.New(strings.Split(before, "\n"), strings.Split(after, "\n")).AddContext(1).Unify()
	if len(d.Chunks) == 0 {
		return ""
	}
	var sb strings.Builder
	mdiff.Unified(&sb, d.Chunks, &mdiff.FileInfo{Left: "before", Right: "after"})
	return sb.String()
}
