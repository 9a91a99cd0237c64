// Package hashtree implements the stable hash trie: an in-memory, owned-tree
// index of hash sequences, used to exchange "this instruction sequence was
// outlined somewhere" knowledge between the two ThinLTO codegen rounds. It is
// not a suffix tree; it only ever represents the set of inserted sequences
// and is built for efficient prefix walking, not substring search.
package hashtree

import (
	"sort"

	"github.com/plotfi/stablehashtree/stablehash"
)

// HashTree owns a single root HashNode (hash == 0, never terminal). It grows
// monotonically via Insert/InsertMany, may be serialized and deserialized any
// number of times (see package triecodec), is read-only during matching, and
// is torn down as a whole — there is no node-removal API, matching spec.md
// §4.1's invariants.
//
// A HashTree is not safe for concurrent mutation; see package outliner for
// the mutex-guarded singleton used when multiple compilation threads insert
// concurrently during round one.
type HashTree struct {
	root *HashNode
}

// New returns an empty HashTree.
func New() *HashTree {
	return &HashTree{root: newHashNode(0)}
}

// Root returns the tree's root node, mainly for callers that want to drive
// their own traversal (e.g. the codec).
func (t *HashTree) Root() *HashNode { return t.root }

// Insert descends from the root following sequence's hashes, attaching a
// fresh owned child for each missing edge, and marks the node reached after
// the last hash as terminal. Inserting an empty sequence is a no-op: it must
// never mark the root terminal. Inserting a prefix of an already-inserted
// sequence only flips isTerminal on an internal node and never removes any
// subtree; inserting a super-sequence of one already present leaves the
// earlier terminal flag set. Infallible, O(len(sequence)).
func (t *HashTree) Insert(sequence stablehash.Sequence) {
	if len(sequence) == 0 {
		return
	}
	current := t.root
	for _, h := range sequence {
		current = current.getOrAddSuccessor(h)
	}
	current.isTerminal = true
}

// InsertMany applies Insert to each sequence in turn. Semantically equivalent
// to a sequential loop; atomicity across sequences is not required (matches
// spec.md §4.1).
func (t *HashTree) InsertMany(sequences []stablehash.Sequence) {
	for _, s := range sequences {
		t.Insert(s)
	}
}

// Find descends from the root following sequence's hashes and reports
// present iff every edge exists AND the final node reached is terminal. A
// sequence that is only a strict prefix of some inserted sequence is not a
// member. Infallible, O(len(sequence)).
func (t *HashTree) Find(sequence stablehash.Sequence) bool {
	current := t.root
	for _, h := range sequence {
		next, ok := current.successor(h)
		if !ok {
			return false
		}
		current = next
	}
	return current.isTerminal
}

// EdgeCallback is invoked once per traversed edge with (parent, child).
type EdgeCallback func(parent, child *HashNode)

// NodeCallback is invoked once per visited node.
type NodeCallback func(node *HashNode)

// Walk performs a depth-first traversal from the root, calling nodeCB for
// every visited node and edgeCB for every traversed edge. Traversal order
// across siblings is unspecified by spec.md §4.1 but must be stable within a
// single walk; this implementation additionally sorts siblings by hash value
// so that two structurally-equal trees produce byte-identical walks
// regardless of insertion order, which is what the round-trip property in
// spec.md §8 actually depends on.
func (t *HashTree) Walk(edgeCB EdgeCallback, nodeCB NodeCallback) {
	walkNode(t.root, edgeCB, nodeCB)
}

func walkNode(n *HashNode, edgeCB EdgeCallback, nodeCB NodeCallback) {
	if nodeCB != nil {
		nodeCB(n)
	}
	for _, child := range sortedChildren(n) {
		if edgeCB != nil {
			edgeCB(n, child)
		}
		walkNode(child, edgeCB, nodeCB)
	}
}

func sortedChildren(n *HashNode) []*HashNode {
	children := make([]*HashNode, 0, len(n.successors))
	for _, c := range n.successors {
		children = append(children, c)
	}
	sort.Slice(children, func(i, j int) bool { return children[i].hash < children[j].hash })
	return children
}

// Size counts reachable nodes; when terminalsOnly is true, only those with
// IsTerminal() == true. The root is excluded from the terminals-only count
// (the root is never terminal) and is always included in the full count.
func (t *HashTree) Size(terminalsOnly bool) int {
	count := 0
	t.Walk(nil, func(n *HashNode) {
		if !terminalsOnly || n.isTerminal {
			count++
		}
	})
	return count
}

// Depth returns the length of the longest root-to-node path. An empty tree
// (root with no successors) has depth 0.
func (t *HashTree) Depth() int {
	return depthOf(t.root)
}

func depthOf(n *HashNode) int {
	best := 0
	for _, child := range n.successors {
		if d := 1 + depthOf(child); d > best {
			best = d
		}
	}
	return best
}
