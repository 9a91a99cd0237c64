// Package triecodec serializes and deserializes a hashtree.HashTree to and
// from the self-describing textual record format specified in spec.md §4.2:
// a mapping from decimal string node-IDs to records carrying a hex hash, a
// quoted terminal flag, an optional ignorable debug source, and a list of
// child IDs. The format is declared opaque and versionable — readers must
// tolerate unknown fields — which is why this package marshals through
// encoding/json's default struct-tag behavior rather than a bespoke scanner.
package triecodec

import (
	"encoding/json"
	"strconv"

	"github.com/plotfi/stablehashtree/common"
	"github.com/plotfi/stablehashtree/hashtree"
	"github.com/plotfi/stablehashtree/stablehash"
)

// DebugSource optionally labels a hash with a free-form debug annotation
// (e.g. a disassembly string) to be emitted as each matching node's "source"
// field. Writers may emit it; readers must ignore it (spec.md §4.2).
type DebugSource map[stablehash.StableHash]string

type pendingEncode struct {
	id   int
	node *hashtree.HashNode
}

// Encode serializes tree into the textual record format. IDs are assigned by
// a depth-first traversal using an explicit stack (spec.md §9's deliberate
// choice to keep peak stack usage bounded and the codec robust against
// pathological tries); the root is always assigned ID 0, resolving spec.md
// §9's open question about root identification in favor of a mandated
// sentinel rather than an extra "root" field, matching the convention the
// teacher pack's own StableHashTree::readFromBuffer hard-codes.
func Encode(tree *hashtree.HashTree, debugSource DebugSource) ([]byte, error) {
	records := make(map[string]record)
	nodeIDs := make(map[*hashtree.HashNode]int)

	nextID := 0
	assignID := func(n *hashtree.HashNode) int {
		id, ok := nodeIDs[n]
		if ok {
			return id
		}
		id = nextID
		nextID++
		nodeIDs[n] = id
		return id
	}

	root := tree.Root()
	rootID := assignID(root)
	common.Assert(rootID == 0, "root must be assigned id 0")

	stack := []pendingEncode{{id: rootID, node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := top.node.SortedSuccessors()
		neighbors := make([]string, 0, len(children))
		for _, child := range children {
			childID := assignID(child)
			neighbors = append(neighbors, strconv.Itoa(childID))
			stack = append(stack, pendingEncode{id: childID, node: child})
		}

		rec := record{
			Hash:       strconv.FormatUint(uint64(top.node.Hash()), 16),
			IsTerminal: strconv.FormatBool(top.node.IsTerminal()),
			Neighbors:  neighbors,
		}
		if debugSource != nil {
			if s, ok := debugSource[top.node.Hash()]; ok {
				rec.Source = s
			}
		}
		records[strconv.Itoa(top.id)] = rec
	}

	return json.Marshal(records)
}
