package hashtree

import (
	"github.com/plotfi/stablehashtree/stablehash"
)

// HashNode is a single entry in a HashTree. hash is the edge label from its
// parent (the root's hash is always 0); isTerminal is true iff at least one
// inserted sequence ends exactly at this node; successors exclusively owns
// its children — a HashNode's subtree has exactly one owner, mirroring the
// teacher's owned-subtree NodeData/Successors shape (common/nodedata.go),
// generalized from byte-keyed children to StableHash-keyed ones.
type HashNode struct {
	hash       stablehash.StableHash
	isTerminal bool
	successors map[stablehash.StableHash]*HashNode
}

func newHashNode(hash stablehash.StableHash) *HashNode {
	return &HashNode{hash: hash}
}

// Hash returns the StableHash labelling the edge from this node's parent.
func (n *HashNode) Hash() stablehash.StableHash { return n.hash }

// IsTerminal reports whether some inserted sequence ends exactly at this node.
func (n *HashNode) IsTerminal() bool { return n.isTerminal }

// NumSuccessors reports how many distinct outgoing edges this node has.
func (n *HashNode) NumSuccessors() int { return len(n.successors) }

func (n *HashNode) successor(h stablehash.StableHash) (*HashNode, bool) {
	child, ok := n.successors[h]
	return child, ok
}

// Successor returns the child reached by following edge h, if any. O(1) map
// lookup — the method the matcher's active-set scan relies on to stay linear
// in the instruction count times trie depth, independent of branching
// factor (spec.md §4.1's complexity note).
func (n *HashNode) Successor(h stablehash.StableHash) (*HashNode, bool) {
	return n.successor(h)
}

// SortedSuccessors returns this node's children ordered by hash value, for
// callers (the codec) that need their own explicit-stack traversal
// instead of Walk's recursive one.
func (n *HashNode) SortedSuccessors() []*HashNode {
	return sortedChildren(n)
}

func (n *HashNode) getOrAddSuccessor(h stablehash.StableHash) *HashNode {
	if n.successors == nil {
		n.successors = make(map[stablehash.StableHash]*HashNode)
	}
	child, ok := n.successors[h]
	if !ok {
		child = newHashNode(h)
		n.successors[h] = child
	}
	return child
}
