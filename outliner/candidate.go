package outliner

import (
	"github.com/plotfi/stablehashtree/stablehash"
)

// Candidate is the outliner's per-match record: a reference to one
// contiguous slice of a module's instruction stream considered for
// outlining, extended with the two cross-module flags this module exists to
// compute (spec.md §3).
type Candidate struct {
	StartIndex int
	Length     int

	// NoResidualCodeCost is true when this sequence is known to be outlined
	// elsewhere already, so the marginal cost of outlining here excludes the
	// residual stub cost.
	NoResidualCodeCost bool
	// Singleton is true when this candidate exists exactly once in the
	// current module but matches the global trie.
	Singleton bool
	// BlockFlag carries whatever per-basic-block bookkeeping the
	// target-independent outliner tracked at this candidate's start
	// position (see BlockFlags), threaded through for the cost model to
	// consult.
	BlockFlag uint32
}

// OutlinedFunction is the cost model's verdict for a candidate set: an empty
// Candidates slice means the target rejected the candidate set outright
// (spec.md §4.4, §6).
type OutlinedFunction struct {
	Candidates []Candidate
	// NoResidualCodeCostOverride permits outlining despite the standard
	// local-occurrence threshold, set when a repeated-but-rare sequence is
	// already known to be outlined cross-module (spec.md §4.4).
	NoResidualCodeCostOverride bool
	// StableHashSequence is attached for provenance / reinsertion: the
	// stable-hash sequence computed over the matched slice.
	StableHashSequence stablehash.Sequence
}

// CostModel is the external, target-specific cost-model callback (spec.md
// §6): it inspects a candidate set and decides whether/how to outline it. A
// rejected candidate set comes back with an empty Candidates slice.
type CostModel interface {
	OutliningCandidateInfo(candidates []Candidate) OutlinedFunction
}
