package hashtree

import (
	"fmt"
	"io"

	"github.com/plotfi/stablehashtree/stablehash"
)

// Dump writes a human-readable edge listing to w, in the same spirit as the
// teacher's StableHashTree::print debug helper: not the persisted format
// (see package triecodec for that), just a diagnostic. debugSource, when
// non-nil, is consulted per-hash to print a free-form label (e.g. a
// disassembly string) alongside each node, exactly like the teacher's
// DebugMap parameter.
func (t *HashTree) Dump(w io.Writer, debugSource map[stablehash.StableHash]string) {
	fmt.Fprintf(w, "hashtree: size=%d terminals=%d depth=%d\n", t.Size(false), t.Size(true), t.Depth())
	t.Walk(func(parent, child *HashNode) {
		label := ""
		if debugSource != nil {
			if s, ok := debugSource[child.hash]; ok {
				label = " ; " + s
			}
		}
		fmt.Fprintf(w, "  %x -> %x (terminal=%v)%s\n", parent.hash, child.hash, child.isTerminal, label)
	}, nil)
}
