package hashtree

import "github.com/plotfi/stablehashtree/stablehash"

// The functions below exist solely for package triecodec's decoder, which
// must reconstruct an arbitrary tree shape (and per-node terminal flags)
// exactly as persisted, rather than re-deriving it by replaying Insert over
// a set of sequences. They are deliberately narrow: nothing outside a codec
// should need to hand-assemble a HashNode graph.

// NewRawNode creates a detached HashNode with the given edge label and
// terminal flag, for a decoder to attach into a tree it is rebuilding.
func NewRawNode(hash stablehash.StableHash, isTerminal bool) *HashNode {
	return &HashNode{hash: hash, isTerminal: isTerminal}
}

// AttachSuccessor wires child under n at key child.Hash(). It is the
// decoder's analogue of Insert's internal edge-creation step.
func (n *HashNode) AttachSuccessor(child *HashNode) {
	if n.successors == nil {
		n.successors = make(map[stablehash.StableHash]*HashNode)
	}
	n.successors[child.hash] = child
}

// FromRoot wraps an already-assembled root HashNode (hash 0) as a HashTree.
func FromRoot(root *HashNode) *HashTree {
	return &HashTree{root: root}
}
