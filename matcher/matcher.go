// Package matcher implements the round-two scan that walks a module's
// linearized instruction stream against a frozen hashtree.HashTree,
// discovering every contiguous slice whose hash sequence is a member of the
// trie. This is the Go analogue of the teacher pack's traversal helpers
// (immutable/traverse.go's explicit-loop path walk) generalized from a
// single-path descent to an incremental multi-path "active set" advance, per
// spec.md §4.3.
package matcher

import (
	"context"

	"github.com/plotfi/stablehashtree/common"
	"github.com/plotfi/stablehashtree/hashtree"
	"github.com/plotfi/stablehashtree/stablehash"
)

// InstructionStream is a module's linearized instruction list, given as two
// parallel slices of equal length: Instructions[i] is a handle to the i-th
// machine instruction, and InvalidMask[i] marks position i invalid (not
// outlinable) when its value is >= N, exactly as spec.md §4.3 describes.
type InstructionStream struct {
	Instructions []stablehash.Instruction
	InvalidMask  []int
}

// MatchedEntry references a contiguous slice [StartIndex, StartIndex+Length)
// of the instruction stream whose hash sequence is a member of the trie.
type MatchedEntry struct {
	StartIndex int
	Length     int
}

// Matcher scans an InstructionStream against a read-only HashTree. A Matcher
// is stateless across calls and holds no mutable state of its own; it is
// safe to share one Matcher across goroutines scanning different modules
// concurrently against the same frozen trie (spec.md §5).
type Matcher struct {
	tree   *hashtree.HashTree
	hasher stablehash.Hasher
}

// New returns a Matcher over tree using hasher to fingerprint each
// instruction. tree must not be mutated for the lifetime of any Match call
// in flight (spec.md §5: the matcher assumes the trie is frozen while it
// runs).
func New(tree *hashtree.HashTree, hasher stablehash.Hasher) *Matcher {
	return &Matcher{tree: tree, hasher: hasher}
}

type trackedEntry struct {
	startIndex int
	length     int
	node       *hashtree.HashNode
}

// Match runs the incremental active-set scan described in spec.md §4.3: it
// maintains the set of all in-progress trie descents started at earlier
// positions, advancing every one of them (plus a fresh descent starting at
// the current position) by one hash per step, and emits a MatchedEntry every
// time an advance lands on a terminal node. A single position may emit
// several entries when more than one active descent reaches a terminal in
// the same step (spec.md §4.3's "multiple overlapping emissions"); resolving
// overlaps is left to the caller, matching OutlinerIntegration's use of this
// result.
//
// ctx is consulted only once, before scanning begins: the algorithm itself
// has no suspension points (spec.md §5), so there is nothing useful to check
// mid-scan, and a long-running Match over a pathologically large module
// should still be abortable by the caller before it starts rather than not
// at all.
func (m *Matcher) Match(ctx context.Context, stream InstructionStream) []MatchedEntry {
	if err := ctx.Err(); err != nil {
		return nil
	}

	n := len(stream.Instructions)
	if n == 0 || m.tree.Root().NumSuccessors() == 0 {
		return nil
	}
	common.Assert(len(stream.InvalidMask) == n, "InvalidMask must have the same length as Instructions")

	var tracked []trackedEntry
	var matches []MatchedEntry

	for idx := 0; idx < n; idx++ {
		if stream.InvalidMask[idx] >= n {
			tracked = nil
			continue
		}

		h := m.hasher.Hash(stream.Instructions[idx])
		if h == stablehash.NoHash {
			tracked = nil
			continue
		}

		next := make([]trackedEntry, 0, len(tracked)+1)
		add := func(e trackedEntry) {
			next = append(next, e)
			if e.node.IsTerminal() {
				matches = append(matches, MatchedEntry{StartIndex: e.startIndex, Length: e.length})
			}
		}

		if root, ok := followFromRoot(m.tree, h); ok {
			add(trackedEntry{startIndex: idx, length: 1, node: root})
		}
		for _, e := range tracked {
			if child, ok := e.node.Successor(h); ok {
				add(trackedEntry{startIndex: e.startIndex, length: e.length + 1, node: child})
			}
		}

		tracked = next
	}

	return matches
}

func followFromRoot(tree *hashtree.HashTree, h stablehash.StableHash) (*hashtree.HashNode, bool) {
	return tree.Root().Successor(h)
}
