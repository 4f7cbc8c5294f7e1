package ttree_test

import (
	"cmp"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/halstead/ttree/ttree"
)

const benchSeed = 1471808909908695897

// Trial values of K (keys per node) for load-testing tree operations.
var nodeSizes = []int{2, 4, 8, 16, 32, 64, 128}

func randomTree(b *testing.B, k int) (*ttree.Tree[int], []int) {
	rng := rand.New(rand.NewSource(benchSeed))
	values := make([]int, b.N)
	for i := range values {
		values[i] = rng.Intn(math.MaxInt32)
	}
	return ttree.New(k, cmp.Compare[int], values...), values
}

func BenchmarkNew(b *testing.B) {
	for _, k := range nodeSizes {
		b.Run(fmt.Sprintf("K=%d", k), func(b *testing.B) {
			randomTree(b, k)
		})
	}
}

func BenchmarkInsertRandom(b *testing.B) {
	for _, k := range nodeSizes {
		b.Run(fmt.Sprintf("K=%d", k), func(b *testing.B) {
			_, values := randomTree(b, k)
			b.ResetTimer()
			tree := ttree.New[int](k, cmp.Compare[int])
			for _, v := range values {
				tree.Insert(v)
			}
		})
	}
}

func BenchmarkInsertOrdered(b *testing.B) {
	for _, k := range nodeSizes {
		b.Run(fmt.Sprintf("K=%d", k), func(b *testing.B) {
			tree := ttree.New[int](k, cmp.Compare[int])
			for i := 1; i <= b.N; i++ {
				tree.Insert(i)
			}
		})
	}
}

func BenchmarkDeleteRandom(b *testing.B) {
	for _, k := range nodeSizes {
		b.Run(fmt.Sprintf("K=%d", k), func(b *testing.B) {
			tree, values := randomTree(b, k)
			b.ResetTimer()
			for _, v := range values {
				tree.Delete(v)
			}
		})
	}
}

func BenchmarkDeleteOrdered(b *testing.B) {
	for _, k := range nodeSizes {
		b.Run(fmt.Sprintf("K=%d", k), func(b *testing.B) {
			tree, values := randomTree(b, k)
			sort.Ints(values)
			b.ResetTimer()
			for _, v := range values {
				tree.Delete(v)
			}
		})
	}
}

func BenchmarkLookup(b *testing.B) {
	for _, k := range nodeSizes {
		b.Run(fmt.Sprintf("K=%d", k), func(b *testing.B) {
			tree, values := randomTree(b, k)
			b.ResetTimer()
			for _, v := range values {
				tree.Lookup(v)
			}
		})
	}
}

func BenchmarkInorder(b *testing.B) {
	for _, k := range nodeSizes {
		b.Run(fmt.Sprintf("K=%d", k), func(b *testing.B) {
			tree, _ := randomTree(b, k)
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				tree.Inorder(func(int) bool { return true })
			}
		})
	}
}

func BenchmarkCursorWalk(b *testing.B) {
	for _, k := range nodeSizes {
		b.Run(fmt.Sprintf("K=%d", k), func(b *testing.B) {
			tree, _ := randomTree(b, k)
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				for c := tree.FirstCursor(); c.Valid(); c.Next() {
				}
			}
		})
	}
}
