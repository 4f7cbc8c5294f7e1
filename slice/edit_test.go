package slice_test

import (
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/halstead/ttree/slice"
)

func TestLCS(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"", "", ""},

		{"a", "", ""},
		{"", "b", ""},

		{"a b c", "", ""},
		{"", "d e f", ""},

		{"a", "a b c", "a"},
		{"b", "a b c", "b"},
		{"c", "a b c", "c"},
		{"d", "a b c", ""},

		{"a b c", "a b c", "a b c"},
		{"a b c", "a b", "a b"},
		{"b c", "a b c", "b c"},

		{"you will be lucky to get this to work at all",
			"will we be so lucky as to get this to work in the end",
			"will be lucky to get this to work"},

		{"a foolish consistency is the hobgoblin of little minds",
			"four foolish fat hens ate the hobgoblin who is little and minds not",
			"foolish the hobgoblin little minds"},
	}
	for _, tc := range tests {
		as, bs := strings.Fields(tc.a), strings.Fields(tc.b)
		want := strings.Fields(tc.want)
		got := slice.LCS(as, bs)
		if !slices.Equal(got, want) {
			t.Errorf("LCS(%s, %s):\ngot:  %v\nwant: %v", tc.a, tc.b, got, want)
		}
	}
}

func TestLCSRandom(t *testing.T) {
	// Append n randomly generated letters from alpha to *ss.
	pad := func(ss *[]string, n int, alpha string) {
		for i := 0; i < n; i++ {
			j := rand.Intn(len(alpha))
			*ss = append(*ss, alpha[j:j+1])
		}
	}

	// Append 0-4 randomly generated letters from alpha before and after each
	// word in want, and return the resulting sequence.
	input := func(want []string, alpha string) []string {
		var out []string
		for _, w := range want {
			pad(&out, rand.Intn(4), alpha)
			out = append(out, w)
		}
		pad(&out, rand.Intn(4), alpha)
		return out
	}

	// Generate a longest common subsequence of length i, and inputs constructed
	// to have that as their LCS, and verify that they do.
	for i := 0; i < 200; i += 20 {
		var want []string
		pad(&want, i, "abcdefghijklmonpqrstuvwxyz")

		// N.B. The alphabets used by the probe string must not overlap with the
		// inputs, nor the inputs with each other.
		//
		// Probe string: lower-case
		// LHS: digits
		// RHS: upper-case

		lhs := input(want, "0123456789")
		rhs := input(want, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
		got := slice.LCS(lhs, rhs)
		if !slices.Equal(got, want) {
			t.Errorf("LCS(%q, %q):\ngot:  %q\nwant: %q", lhs, rhs, got, want)
		}
	}
}

func TestEditScript(t *testing.T) {
	tests := []struct {
		a, b string
		want string // edit script in the notation parsed by pedit
	}{
		{"", "", ""},

		{"a", "", "-1"},
		{"", "b", "+1:0"},

		{"a b c", "", "-3"},
		{"", "d e f", "+3:0"},

		{"a", "a b c", "=1 +2:1"},
		{"b", "a b c", "+1:0 =1 +1:2"},
		{"c", "a b c", "+2:0 =1"},
		{"d", "a b c", "x1:0:3"},

		{"a b c", "a b c", ""},
		{"a b c", "a x c", "=1 x1:1:1 =1"},
		{"a b c", "a b", "=2 -1"},
		{"b c", "a b c", "+1:0 =2"},

		{"a x b x c", "1 x b x 2", "x1:0:1 =3 x1:4:1"},
		{"fly you fools", "to fly you must not be fools", "+1:0 =2 +3:3 =1"},

		{"have the best time it is possible to have under the circumstances",
			"I hope you have the time of your life in the forest",
			"+3:0 =2 -1 =1 x6:6:4 =1 x1:11:1",
		},
	}
	for _, tc := range tests {
		as, bs := strings.Fields(tc.a), strings.Fields(tc.b)
		want := pedit(t, as, bs, tc.want)
		got := slice.EditScript(as, bs)
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("EditScript(%q, %q):\ngot:  %v\nwant: %v", tc.a, tc.b, got, want)
		}
		checkApply(t, as, bs, got)
	}
}

// checkApply verifies that applying the specified edit script to lhs produces rhs.
func checkApply[T comparable, Slice ~[]T](t *testing.T, lhs, rhs Slice, edit []slice.Edit[T]) {
	t.Helper()

	var out Slice
	i := 0
	for _, e := range edit {
		switch e.Op {
		case slice.OpDrop:
			i += len(e.X)
		case slice.OpEmit:
			out = append(out, lhs[i:i+len(e.X)]...)
			i += len(e.X)
		case slice.OpCopy:
			out = append(out, e.Y...)
		case slice.OpReplace:
			out = append(out, e.Y...)
			i += len(e.X)
		default:
			t.Fatalf("Unexpected edit operation: %v", e)
		}
	}
	out = append(out, lhs[i:]...)
	if !slices.Equal(out, rhs) {
		t.Errorf("Apply %v:\ngot:  %v\nwant: %v", edit, out, rhs)
	} else {
		t.Logf("Apply L %v E %v OK: %v", lhs, edit, out)
	}
}

// pedit parses a string of space-separated edits into an edit script over lhs
// and rhs. "-N" drops and "=N" emits the next N elements of lhs; "+N:X" copies
// the N elements of rhs starting at offset X; "xN:X:M" replaces the next N
// elements of lhs with the M elements of rhs starting at offset X.
func pedit(t *testing.T, lhs, rhs []string, ss string) (out []slice.Edit[string]) {
	t.Helper()
	i := 0 // offset of the next unclaimed element of lhs
	for _, s := range strings.Fields(ss) {
		var next slice.Edit[string]
		switch s[0] {
		case '-':
			next.Op = slice.OpDrop
		case '=':
			next.Op = slice.OpEmit
		case '+':
			next.Op = slice.OpCopy
		case 'x':
			next.Op = slice.OpReplace
		default:
			t.Fatalf("Invalid edit op: %c", s[0])
		}
		var nums []int
		for _, f := range strings.Split(s[1:], ":") {
			v, err := strconv.Atoi(f)
			if err != nil {
				t.Fatalf("Invalid count in %q: %v", s, err)
			}
			nums = append(nums, v)
		}
		switch {
		case (next.Op == slice.OpDrop || next.Op == slice.OpEmit) && len(nums) == 1:
			next.X = lhs[i : i+nums[0]]
			i += nums[0]
		case next.Op == slice.OpCopy && len(nums) == 2:
			next.Y = rhs[nums[1] : nums[1]+nums[0]]
		case next.Op == slice.OpReplace && len(nums) == 3:
			next.X = lhs[i : i+nums[0]]
			next.Y = rhs[nums[1] : nums[1]+nums[2]]
			i += nums[0]
		default:
			t.Fatalf("Invalid edit %q", s)
		}
		out = append(out, next)
	}
	return
}
